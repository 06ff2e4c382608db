package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_SleepDisorderBranch(t *testing.T) {
	results := Classify("I keep struggling to fall asleep and it's affecting my workouts")

	require.NotEmpty(t, results)

	var sleepResult *Result
	for i := range results {
		if len(results[i].Path) >= 2 && results[i].Path[0] == "Health" && results[i].Path[1] == "Sleep" {
			sleepResult = &results[i]
			break
		}
	}
	require.NotNil(t, sleepResult, "expected a Health > Sleep classification")
	assert.NotEmpty(t, sleepResult.Summary)
	assert.NotEmpty(t, sleepResult.Todos)
}

func TestClassify_Deterministic(t *testing.T) {
	texts := []string{
		"I want to start a workout routine",
		"thinking about my startup and career goals",
		"learning to code a web app",
		"just some random musings about nothing in particular",
	}

	for _, text := range texts {
		first := Classify(text)
		second := Classify(text)
		assert.Equal(t, first, second, "classification must be deterministic for %q", text)
	}
}

func TestClassify_NeverEmpty(t *testing.T) {
	texts := []string{
		"",
		"zzz qqq xxx",
		"I love my partner very much",
		"health and sleep and work and art and books and my job",
	}

	for _, text := range texts {
		results := Classify(text)
		assert.NotEmpty(t, results, "Classify(%q) must return at least one result", text)
	}
}

func TestClassify_DomainGuard(t *testing.T) {
	// "health" triggers the Health domain but none of its sub-rule groups.
	results := Classify("health")

	require.Len(t, results, 1)
	assert.Equal(t, "health-general-wellness", results[0].ID)
	assert.Equal(t, []string{"Health", "General Wellness", "Lifestyle", "Improvement"}, results[0].Path)
}

func TestClassify_MultipleResultsPerDomain(t *testing.T) {
	// Sleep and exercise groups both fire within the Health domain.
	results := Classify("my sleep schedule is hurting my gym workout plan")

	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.ID)
	}

	assert.Contains(t, ids, "health-sleep-routine")
	assert.Contains(t, ids, "health-exercise-starting")
}

func TestClassify_SubRuleBranchesAreExclusive(t *testing.T) {
	// Both "schedule" (routine branch) and "problem" (disorder branch) are
	// present; only the first branch in declaration order fires.
	results := Classify("my sleep schedule is a real problem, gym tomorrow")

	sleepCount := 0
	for _, r := range results {
		if len(r.Path) >= 2 && r.Path[0] == "Health" && r.Path[1] == "Sleep" {
			sleepCount++
			assert.Equal(t, "health-sleep-routine", r.ID)
		}
	}
	assert.Equal(t, 1, sleepCount)
}

func TestClassify_TopicFallback(t *testing.T) {
	results := Classify("we are planning a vacation to a beautiful destination")

	require.Len(t, results, 1)
	assert.Equal(t, "specific-travel", results[0].ID)
	assert.Equal(t, []string{"Specific Topics", "Travel", "Analysis", "Development"}, results[0].Path)
	assert.Equal(t, IconFileText, results[0].Icon)
}

func TestClassify_TopicFallbackMultiWordTopic(t *testing.T) {
	results := Classify("the house needs renovation this spring")

	require.Len(t, results, 1)
	assert.Equal(t, "specific-home-improvement", results[0].ID)
	assert.Equal(t, "Home improvement", results[0].Path[1])
}

func TestClassify_ReflectionFallback(t *testing.T) {
	results := Classify("hmm")

	require.Len(t, results, 1)
	assert.Equal(t, "thoughtful-reflection", results[0].ID)
	assert.Equal(t, []string{"Reflective Thinking", "Personal Insights", "Thought Development", "Analysis"}, results[0].Path)
}

func TestClassify_DomainOrderStable(t *testing.T) {
	// Health precedes Business in the tables regardless of word order.
	results := Classify("my business depends on my health and gym habits")

	require.True(t, len(results) >= 2)
	assert.Equal(t, "Health", results[0].Path[0])
}

func TestClassify_SubstringContainment(t *testing.T) {
	// Matching is substring based: "coworker" contains "work" and triggers
	// the productivity domain. This imprecision is intentional.
	results := Classify("my coworker is nice")

	require.NotEmpty(t, results)
	assert.Equal(t, "Personal Development", results[0].Path[0])
}
