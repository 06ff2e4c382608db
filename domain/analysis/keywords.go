// Package analysis implements the deterministic text analysis engine:
// keyword extraction, topic matching, hierarchical category classification,
// tag generation, and text refinement. Everything in this package is a pure
// function of its input so results are reproducible across runs.
package analysis

import (
	"regexp"
	"strings"
)

var nonWordPattern = regexp.MustCompile(`[^\w\s]`)

// stopWords are common words excluded from keyword extraction.
var stopWords = map[string]bool{
	"the": true, "and": true, "a": true, "an": true, "in": true,
	"on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "is": true, "are": true, "was": true, "were": true,
}

// ExtractKeywords tokenizes text into a normalized keyword sequence.
// Input is lowercased, punctuation is stripped, and tokens of length two or
// less as well as stop words are discarded. Token order is preserved and
// duplicates are kept; callers that score keywords treat the result as a
// sequence, not a set.
func ExtractKeywords(text string) []string {
	cleaned := nonWordPattern.ReplaceAllString(strings.ToLower(text), "")

	keywords := make([]string, 0)
	for _, word := range strings.Fields(cleaned) {
		if len(word) > 2 && !stopWords[word] {
			keywords = append(keywords, word)
		}
	}
	return keywords
}

// containsAny reports whether the text contains any of the keywords as a
// substring. Matching is deliberately not word-boundary aware; the rule
// tables were tuned against substring containment.
func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
