package entities

import (
	"strings"
	"time"

	"mindflow-backend/domain/core/valueobjects"
	pkgerrors "mindflow-backend/pkg/errors"
)

// untitledLabel is the display label for documents saved without a title.
const untitledLabel = "Untitled"

// CategoryRef is a category assignment carried by a document. Path is the
// taxonomy hierarchy from broadest to most specific level.
type CategoryRef struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Path  []string `json:"path"`
}

// Document is a saved piece of free writing together with the analysis
// output the user accepted for it. Documents serialize directly to the
// persisted collection format, so field names are part of the storage
// contract.
type Document struct {
	ID                  string        `json:"id"`
	Title               string        `json:"title"`
	Content             string        `json:"content"`
	RefinedContent      string        `json:"refinedContent,omitempty"`
	OriginalContent     string        `json:"originalContent,omitempty"`
	PrimaryCategoryID   string        `json:"primaryCategoryId"`
	PrimaryCategoryName string        `json:"primaryCategoryName"`
	Categories          []CategoryRef `json:"categories"`
	Tags                []string      `json:"tags"`
	CreatedAt           time.Time     `json:"createdAt"`
	UpdatedAt           time.Time     `json:"updatedAt"`
}

// DocumentPatch describes a partial document update. Nil fields are left
// unchanged. CreatedAt and OriginalContent are never patchable.
type DocumentPatch struct {
	Title               *string
	Content             *string
	RefinedContent      *string
	PrimaryCategoryID   *string
	PrimaryCategoryName *string
	Categories          []CategoryRef
	Tags                []string
}

// NewDocument creates a document from raw content and the accepted
// classification. The primary category comes from the first classification
// result, falling back to the general category when none were produced.
func NewDocument(content, title string, categories []CategoryRef, tags []string) (*Document, error) {
	if strings.TrimSpace(content) == "" {
		return nil, pkgerrors.NewValidationError("document content cannot be empty")
	}

	primaryID := "general"
	primaryName := "General"
	if len(categories) > 0 {
		primaryID = categories[0].ID
		primaryName = categories[0].Title
	}

	if categories == nil {
		categories = []CategoryRef{}
	}
	tags = dedupeTags(tags)

	now := time.Now()
	return &Document{
		ID:                  valueobjects.NewDocumentID().String(),
		Title:               strings.TrimSpace(title),
		Content:             content,
		OriginalContent:     content,
		PrimaryCategoryID:   primaryID,
		PrimaryCategoryName: primaryName,
		Categories:          categories,
		Tags:                tags,
		CreatedAt:           now,
		UpdatedAt:           now,
	}, nil
}

// Apply merges a patch into the document and bumps UpdatedAt.
func (d *Document) Apply(patch DocumentPatch) {
	if patch.Title != nil {
		d.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Content != nil {
		d.Content = *patch.Content
	}
	if patch.RefinedContent != nil {
		d.RefinedContent = *patch.RefinedContent
	}
	if patch.PrimaryCategoryID != nil {
		d.PrimaryCategoryID = *patch.PrimaryCategoryID
	}
	if patch.PrimaryCategoryName != nil {
		d.PrimaryCategoryName = *patch.PrimaryCategoryName
	}
	if patch.Categories != nil {
		d.Categories = patch.Categories
	}
	if patch.Tags != nil {
		d.Tags = dedupeTags(patch.Tags)
	}

	d.UpdatedAt = time.Now()
}

// dedupeTags drops repeated tags, keeping first occurrences in order.
func dedupeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}

// Label returns the display label used for graph nodes.
func (d *Document) Label() string {
	if d.Title == "" {
		return untitledLabel
	}
	return d.Title
}

// MatchesCategory reports whether the document belongs to the category,
// either as its primary category or through any of its category refs.
func (d *Document) MatchesCategory(categoryID string) bool {
	if d.PrimaryCategoryID == categoryID {
		return true
	}
	for _, ref := range d.Categories {
		if ref.ID == categoryID {
			return true
		}
	}
	return false
}

// HasTag reports whether the tag is an exact member of the document's tags.
func (d *Document) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
