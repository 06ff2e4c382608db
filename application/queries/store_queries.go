package queries

import (
	pkgerrors "mindflow-backend/pkg/errors"
)

// GetDocumentQuery fetches one document by id.
type GetDocumentQuery struct {
	ID string
}

// Validate implements bus.Query.
func (q *GetDocumentQuery) Validate() error {
	if q.ID == "" {
		return pkgerrors.NewValidationError("document id is required")
	}
	return nil
}

// ListDocumentsQuery lists documents, optionally filtered by category or
// exact tag. Both filters empty means the full collection.
type ListDocumentsQuery struct {
	CategoryID string
	Tag        string
}

// Validate implements bus.Query.
func (q *ListDocumentsQuery) Validate() error {
	if q.CategoryID != "" && q.Tag != "" {
		return pkgerrors.NewValidationError("filter by category or tag, not both")
	}
	return nil
}

// ListTasksQuery lists tasks, optionally restricted to a category.
type ListTasksQuery struct {
	CategoryID string
}

// Validate implements bus.Query.
func (q *ListTasksQuery) Validate() error { return nil }

// ListCategoriesQuery lists the accumulated sidebar categories.
type ListCategoriesQuery struct{}

// Validate implements bus.Query.
func (q *ListCategoriesQuery) Validate() error { return nil }

// GetGraphQuery derives the knowledge graph from the current documents.
// Checksum optionally carries a consumer-held snapshot checksum; when it
// still matches, the handler reports NotModified instead of a payload.
type GetGraphQuery struct {
	Checksum string
}

// Validate implements bus.Query.
func (q *GetGraphQuery) Validate() error { return nil }
