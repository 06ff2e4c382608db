package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRefine(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "inserts sentence boundary before capital",
			in:   "i went home Then i slept",
			want: "i went home. Then i slept.",
		},
		{
			name: "appends trailing period",
			in:   "a quiet evening",
			want: "a quiet evening.",
		},
		{
			name: "keeps existing terminal punctuation",
			in:   "was it worth it?",
			want: "was it worth it?",
		},
		{
			name: "collapses whitespace runs",
			in:   "too    many   spaces.",
			want: "too many spaces.",
		},
		{
			name: "removes space before punctuation",
			in:   "wait , what ?",
			want: "wait, what?",
		},
		{
			name: "adds space after punctuation",
			in:   "first,second.third",
			want: "first, second. third.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Refine(tt.in))
		})
	}
}

func TestRefine_NoDoubleTrailingPeriod(t *testing.T) {
	inputs := []string{
		"plain text",
		"already terminated.",
		"shouting!",
		"i went home Then I slept",
	}

	for _, in := range inputs {
		refined := Refine(in)
		again := Refine(refined)

		assert.False(t, strings.HasSuffix(again, ".."), "Refine(Refine(%q)) = %q", in, again)
	}
}

func TestRefine_Deterministic(t *testing.T) {
	in := "some messy  draft text With stray  capitals ,and commas"

	assert.Equal(t, Refine(in), Refine(in))
}
