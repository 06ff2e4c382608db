package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "lowercases and strips punctuation",
			in:   "Sleep, Schedule! Workout?",
			want: []string{"sleep", "schedule", "workout"},
		},
		{
			name: "drops stop words and short tokens",
			in:   "the cat is on a mat",
			want: []string{"cat", "mat"},
		},
		{
			name: "keeps order and duplicates",
			in:   "sleep more sleep better",
			want: []string{"sleep", "more", "sleep", "better"},
		},
		{
			name: "empty input",
			in:   "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractKeywords(tt.in))
		})
	}
}
