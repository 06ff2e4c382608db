package analysis

import "regexp"

var (
	sentenceBoundary  = regexp.MustCompile(`([a-z])\s+([A-Z])`)
	trailingSentence  = regexp.MustCompile(`[.!?]$`)
	whitespaceRun     = regexp.MustCompile(`\s+`)
	spaceBeforePunct  = regexp.MustCompile(`\s+([.,!?])`)
	punctBeforeLetter = regexp.MustCompile(`([.,!?])([a-zA-Z])`)
)

// Refine applies the deterministic text cleanup pass: heuristic sentence
// boundaries, a trailing period, and whitespace/punctuation normalization.
// The order of operations matters; boundary insertion must run before
// whitespace collapsing. Running Refine on already refined text never
// appends a second trailing period.
func Refine(text string) string {
	// A lowercase letter followed by whitespace and an uppercase letter is
	// treated as a missing sentence boundary.
	refined := sentenceBoundary.ReplaceAllString(text, "$1. $2")

	if !trailingSentence.MatchString(refined) {
		refined += "."
	}

	refined = whitespaceRun.ReplaceAllString(refined, " ")
	refined = spaceBeforePunct.ReplaceAllString(refined, "$1")
	refined = punctBeforeLetter.ReplaceAllString(refined, "$1 $2")

	return refined
}
