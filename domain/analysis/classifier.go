package analysis

import (
	"fmt"
	"strings"
)

// Classify runs the ordered domain rule tables over the text and returns the
// hierarchical classifications that fired, in table order. It always returns
// at least one result for any input: if no domain triggered, the first
// matched topic is synthesized into a result, and failing that the generic
// reflection result is returned.
func Classify(text string) []Result {
	lower := strings.ToLower(text)

	results := make([]Result, 0)
	for _, domain := range domainRules {
		if !containsAny(lower, domain.triggers) {
			continue
		}

		for _, group := range domain.groups {
			if len(group.gate) > 0 && !containsAny(lower, group.gate) {
				continue
			}
			for _, branch := range group.branches {
				if len(branch.keywords) == 0 || containsAny(lower, branch.keywords) {
					results = append(results, branch.result)
					break
				}
			}
		}

		if domain.guardPrefix != "" && !hasResultWithPrefix(results, domain.guardPrefix) {
			results = append(results, domain.guard)
		}
	}

	if len(results) == 0 {
		if topics := MatchTopics(text); len(topics) > 0 {
			results = append(results, topicResult(topics[0]))
		} else {
			results = append(results, reflectionResult)
		}
	}

	return results
}

// hasResultWithPrefix reports whether any collected result id carries the
// given domain prefix.
func hasResultWithPrefix(results []Result, prefix string) bool {
	for _, r := range results {
		if strings.HasPrefix(r.ID, prefix) {
			return true
		}
	}
	return false
}

// topicResult synthesizes a classification from a fallback topic.
func topicResult(topic string) Result {
	id := "specific-" + strings.ToLower(strings.Join(strings.Fields(topic), "-"))
	return Result{
		ID:      id,
		Path:    []string{"Specific Topics", capitalize(topic), "Analysis", "Development"},
		Summary: fmt.Sprintf("Your notes focus on %s and related considerations.", topic),
		Icon:    IconFileText,
		Todos: []string{
			fmt.Sprintf("Research more about %s", topic),
			"Develop specific goals related to this topic",
			"Find resources for further learning",
		},
	}
}

// capitalize upper-cases the first character only.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
