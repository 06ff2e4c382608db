package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument(t *testing.T) {
	categories := []CategoryRef{
		{ID: "health-sleep-routine", Title: "Sleep Schedule Optimization", Path: []string{"Health", "Sleep", "Routine"}},
	}

	document, err := NewDocument("some free writing", "Morning pages", categories, []string{"sleep", "health"})

	require.NoError(t, err)
	assert.NotEmpty(t, document.ID)
	assert.Equal(t, "Morning pages", document.Title)
	assert.Equal(t, "some free writing", document.Content)
	assert.Equal(t, "some free writing", document.OriginalContent)
	assert.Equal(t, "health-sleep-routine", document.PrimaryCategoryID)
	assert.Equal(t, "Sleep Schedule Optimization", document.PrimaryCategoryName)
	assert.Equal(t, document.CreatedAt, document.UpdatedAt)
}

func TestNewDocument_DefaultsToGeneralCategory(t *testing.T) {
	document, err := NewDocument("content without classification", "", nil, nil)

	require.NoError(t, err)
	assert.Equal(t, "general", document.PrimaryCategoryID)
	assert.Equal(t, "General", document.PrimaryCategoryName)
	assert.NotNil(t, document.Categories)
	assert.NotNil(t, document.Tags)
}

func TestNewDocument_DropsRepeatedTags(t *testing.T) {
	document, err := NewDocument("some content", "title", nil, []string{"sleep", "sleep", "health"})

	require.NoError(t, err)
	assert.Equal(t, []string{"sleep", "health"}, document.Tags)
}

func TestDocumentApply_DropsRepeatedTags(t *testing.T) {
	document, err := NewDocument("some content", "title", nil, nil)
	require.NoError(t, err)

	document.Apply(DocumentPatch{Tags: []string{"health", "sleep", "health"}})

	assert.Equal(t, []string{"health", "sleep"}, document.Tags)
}

func TestNewDocument_RejectsBlankContent(t *testing.T) {
	_, err := NewDocument("   ", "title", nil, nil)

	assert.Error(t, err)
}

func TestDocumentApply(t *testing.T) {
	document, err := NewDocument("original text", "Draft", nil, nil)
	require.NoError(t, err)

	createdAt := document.CreatedAt
	time.Sleep(time.Millisecond)

	refined := "original text."
	title := "Final"
	document.Apply(DocumentPatch{
		Title:          &title,
		RefinedContent: &refined,
		Tags:           []string{"notes"},
	})

	assert.Equal(t, "Final", document.Title)
	assert.Equal(t, "original text.", document.RefinedContent)
	assert.Equal(t, "original text", document.Content, "content untouched by partial patch")
	assert.Equal(t, "original text", document.OriginalContent)
	assert.Equal(t, []string{"notes"}, document.Tags)
	assert.Equal(t, createdAt, document.CreatedAt)
	assert.True(t, document.UpdatedAt.After(createdAt))
}

func TestDocumentMatchesCategory(t *testing.T) {
	document := &Document{
		PrimaryCategoryID: "health-sleep-routine",
		Categories: []CategoryRef{
			{ID: "health-sleep-routine"},
			{ID: "productivity-general"},
		},
	}

	assert.True(t, document.MatchesCategory("health-sleep-routine"))
	assert.True(t, document.MatchesCategory("productivity-general"))
	assert.False(t, document.MatchesCategory("creative-general"))
}

func TestDocumentHasTag(t *testing.T) {
	document := &Document{Tags: []string{"sleep", "health"}}

	assert.True(t, document.HasTag("sleep"))
	assert.False(t, document.HasTag("slee"))
	assert.False(t, document.HasTag("Sleep"), "tag matching is exact, not case-folded")
}

func TestDocumentLabel(t *testing.T) {
	assert.Equal(t, "Notes", (&Document{Title: "Notes"}).Label())
	assert.Equal(t, "Untitled", (&Document{}).Label())
}
