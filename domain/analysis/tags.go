package analysis

import (
	"sort"
	"strings"
)

// MaxTags bounds the number of tags produced for a document.
const MaxTags = 5

// minTags is the threshold below which backfill sources are consulted.
const minTags = 3

// tagRule associates a tag with the vocabulary keywords that score it.
type tagRule struct {
	name     string
	keywords []string
}

// tagRules is the tag vocabulary. Declaration order breaks score ties, so
// the table order is part of the contract.
var tagRules = []tagRule{
	{"health", []string{"health", "exercise", "fitness", "diet", "nutrition", "workout", "gym"}},
	{"sleep", []string{"sleep", "rest", "tired", "insomnia", "nap", "dream", "bed", "night"}},
	{"productivity", []string{"productivity", "focus", "work", "task", "project", "deadline", "goal"}},
	{"video editing", []string{"video", "edit", "editing", "film", "movie", "footage", "camera"}},
	{"learning", []string{"learn", "study", "book", "read", "course", "skill", "knowledge"}},
	{"startup", []string{"startup", "business", "company", "entrepreneur", "launch", "product"}},
	{"fatigue", []string{"fatigue", "tired", "exhausted", "energy", "burnout", "stress"}},
	{"motivation", []string{"motivation", "inspired", "drive", "passion", "excited", "enthusiasm"}},
	{"technology", []string{"tech", "technology", "computer", "software", "digital", "online"}},
	{"creativity", []string{"creative", "idea", "design", "art", "write", "draw", "paint", "music"}},
	{"procrastination", []string{"procrastinate", "delay", "putting off", "avoid", "later"}},
	{"time management", []string{"time", "schedule", "calendar", "organize", "planning", "efficiency"}},
	{"career", []string{"career", "job", "work", "professional", "employment", "office"}},
	{"mindfulness", []string{"mindful", "meditate", "present", "awareness", "calm", "peace"}},
	{"relationships", []string{"relationship", "friend", "partner", "family", "social", "connection"}},
	{"finance", []string{"money", "finance", "budget", "invest", "saving", "expense"}},
	{"cooking", []string{"cook", "recipe", "food", "meal", "kitchen", "ingredient"}},
	{"travel", []string{"travel", "trip", "vacation", "journey", "destination", "tourism"}},
	{"writing", []string{"write", "writing", "blog", "book", "story", "content"}},
	{"programming", []string{"code", "programming", "developer", "software", "app", "web"}},
}

// GenerateTags scores the tag vocabulary against the text and returns up to
// MaxTags tags ranked by match count. When fewer than three tags score, the
// result is backfilled first from matched topics and then from a single
// length-based tag.
func GenerateTags(text string) []string {
	lower := strings.ToLower(text)

	type scored struct {
		name  string
		score int
	}

	matches := make([]scored, 0)
	for _, rule := range tagRules {
		score := 0
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				score++
			}
		}
		if score > 0 {
			matches = append(matches, scored{rule.name, score})
		}
	}

	// Stable sort keeps table order for equal scores.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	tags := make([]string, 0, MaxTags)
	for _, m := range matches {
		if len(tags) == MaxTags {
			break
		}
		tags = append(tags, m.name)
	}

	if len(tags) < minTags {
		for _, topic := range MatchTopics(text) {
			if len(tags) == MaxTags {
				break
			}
			if !containsTag(tags, topic) {
				tags = append(tags, topic)
			}
		}
	}

	if len(tags) < minTags {
		lengthTag := "reflection"
		switch {
		case len(text) < 100:
			lengthTag = "notes"
		case len(text) < 300:
			lengthTag = "thoughts"
		}
		if !containsTag(tags, lengthTag) {
			tags = append(tags, lengthTag)
		}
	}

	return tags
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
