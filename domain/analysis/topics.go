package analysis

import "strings"

// topicRule associates a flat topic with its indicator keywords.
type topicRule struct {
	name       string
	indicators []string
}

// topicRules is evaluated in declaration order; MatchTopics output order
// follows this table, not match strength.
var topicRules = []topicRule{
	{"relationship", []string{"relationship", "partner", "marriage", "dating", "love", "romantic"}},
	{"travel", []string{"travel", "trip", "vacation", "journey", "destination", "tourism"}},
	{"finance", []string{"money", "finance", "budget", "invest", "saving", "expense"}},
	{"technology", []string{"tech", "technology", "device", "gadget", "digital", "computer"}},
	{"cooking", []string{"cook", "recipe", "food", "meal", "kitchen", "ingredient"}},
	{"mindfulness", []string{"mindful", "meditate", "meditation", "calm", "peace", "present"}},
	{"home improvement", []string{"home", "house", "renovation", "decor", "furniture", "interior"}},
	{"parenting", []string{"parent", "child", "kid", "baby", "family", "raising"}},
	{"hobby", []string{"hobby", "interest", "pastime", "leisure", "collection", "craft"}},
	{"social", []string{"social", "friend", "community", "network", "gathering", "connection"}},
}

// MatchTopics returns the topics whose indicator keywords appear in the text,
// in table order. It is the fallback signal for both classification and tag
// generation.
func MatchTopics(text string) []string {
	lower := strings.ToLower(text)

	topics := make([]string, 0)
	for _, rule := range topicRules {
		if containsAny(lower, rule.indicators) {
			topics = append(topics, rule.name)
		}
	}
	return topics
}
