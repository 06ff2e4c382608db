package commands

import (
	"strings"

	"mindflow-backend/domain/analysis"
	"mindflow-backend/domain/core/entities"
	pkgerrors "mindflow-backend/pkg/errors"
)

// CreateDocumentCommand saves a new document. The handler writes the
// created document into Created.
type CreateDocumentCommand struct {
	Content        string
	Title          string
	Classification []analysis.Result
	Tags           []string

	Created *entities.Document
}

// Validate implements bus.Command.
func (cmd *CreateDocumentCommand) Validate() error {
	if strings.TrimSpace(cmd.Content) == "" {
		return pkgerrors.NewValidationError("content is required")
	}
	return nil
}

// UpdateDocumentCommand applies a partial update to a document. The handler
// writes the updated document into Updated.
type UpdateDocumentCommand struct {
	ID    string
	Patch entities.DocumentPatch

	Updated *entities.Document
}

// Validate implements bus.Command.
func (cmd *UpdateDocumentCommand) Validate() error {
	if cmd.ID == "" {
		return pkgerrors.NewValidationError("document id is required")
	}
	return nil
}

// DeleteDocumentCommand removes a document; absent ids are a no-op.
type DeleteDocumentCommand struct {
	ID string
}

// Validate implements bus.Command.
func (cmd *DeleteDocumentCommand) Validate() error {
	if cmd.ID == "" {
		return pkgerrors.NewValidationError("document id is required")
	}
	return nil
}

// MergeCategoriesCommand unions new categories into the sidebar list. The
// handler writes the updated list into Merged.
type MergeCategoriesCommand struct {
	Incoming []entities.Category

	Merged []entities.Category
}

// Validate implements bus.Command.
func (cmd *MergeCategoriesCommand) Validate() error {
	for _, c := range cmd.Incoming {
		if c.ID == "" {
			return pkgerrors.NewValidationError("category id is required")
		}
	}
	return nil
}
