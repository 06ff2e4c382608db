package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTags_ProgrammingAndLearning(t *testing.T) {
	tags := GenerateTags("I want to start learning to code and build software")

	assert.Contains(t, tags, "programming")
	assert.Contains(t, tags, "learning")
	assert.LessOrEqual(t, len(tags), MaxTags)
	assertNoDuplicates(t, tags)
}

func TestGenerateTags_RankedByScore(t *testing.T) {
	// "sleep", "tired", "bed" and "night" all score the sleep tag; "health"
	// scores health once. The higher scoring tag must come first.
	tags := GenerateTags("so tired, in bed at night but can't sleep, bad for my health")

	require.NotEmpty(t, tags)
	assert.Equal(t, "sleep", tags[0])
}

func TestGenerateTags_TieBreakIsTableOrder(t *testing.T) {
	// "health" and "sleep" each match exactly one keyword; health is
	// declared first in the vocabulary.
	tags := GenerateTags("health sleep")

	require.True(t, len(tags) >= 2)
	assert.Equal(t, "health", tags[0])
	assert.Equal(t, "sleep", tags[1])
}

func TestGenerateTags_Bounds(t *testing.T) {
	texts := []string{
		"",
		"x",
		"sleep work code write travel food money meditate friend tech art",
		strings.Repeat("health exercise fitness diet workout gym ", 20),
	}

	for _, text := range texts {
		tags := GenerateTags(text)
		assert.LessOrEqual(t, len(tags), MaxTags, "GenerateTags(%q)", text)
		assertNoDuplicates(t, tags)
	}
}

func TestGenerateTags_Deterministic(t *testing.T) {
	text := "thinking about my career and how to stay motivated at work"

	first := GenerateTags(text)
	second := GenerateTags(text)

	assert.Equal(t, first, second)
}

func TestGenerateTags_TopicBackfill(t *testing.T) {
	// "partner" scores only the relationships tag in the vocabulary but also
	// matches the relationship topic; the topic backfills the short result.
	tags := GenerateTags("my partner")

	assert.Contains(t, tags, "relationships")
	assert.Contains(t, tags, "relationship")
}

func TestGenerateTags_LengthBackfill(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"short text", "zzz", "notes"},
		{"medium text", strings.Repeat("zzz ", 30), "thoughts"},
		{"long text", strings.Repeat("zzz ", 100), "reflection"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags := GenerateTags(tt.text)
			assert.Contains(t, tags, tt.want)
		})
	}
}

func assertNoDuplicates(t *testing.T, tags []string) {
	t.Helper()
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		assert.False(t, seen[tag], "duplicate tag %q in %v", tag, tags)
		seen[tag] = true
	}
}
