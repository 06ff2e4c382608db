package validators

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"mindflow-backend/domain/config"
	"mindflow-backend/domain/core/entities"
	pkgerrors "mindflow-backend/pkg/errors"
)

// DocumentValidator validates document-related domain rules.
type DocumentValidator struct {
	cfg *config.DomainConfig
}

// NewDocumentValidator creates a validator with the given configuration.
func NewDocumentValidator(cfg *config.DomainConfig) *DocumentValidator {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	return &DocumentValidator{cfg: cfg}
}

// ValidateNewDocument checks the fields of a document about to be created.
func (v *DocumentValidator) ValidateNewDocument(content, title string) error {
	if !v.cfg.AllowEmptyDocuments && strings.TrimSpace(content) == "" {
		return pkgerrors.NewValidationError("document content cannot be empty")
	}

	if utf8.RuneCountInString(content) > v.cfg.MaxContentLength {
		return pkgerrors.NewValidationError(
			fmt.Sprintf("document content exceeds maximum length of %d characters", v.cfg.MaxContentLength))
	}

	if utf8.RuneCountInString(title) > v.cfg.MaxTitleLength {
		return pkgerrors.NewValidationError(
			fmt.Sprintf("document title exceeds maximum length of %d characters", v.cfg.MaxTitleLength))
	}

	return nil
}

// ValidateDocument checks invariants on a stored document, used before
// persisting an update.
func (v *DocumentValidator) ValidateDocument(doc *entities.Document) error {
	if doc == nil {
		return pkgerrors.NewValidationError("document cannot be nil")
	}
	if doc.ID == "" {
		return pkgerrors.NewValidationError("document id cannot be empty")
	}
	if err := v.ValidateNewDocument(doc.Content, doc.Title); err != nil {
		return err
	}
	if len(doc.Tags) > v.cfg.MaxTagsPerDocument {
		return pkgerrors.NewValidationError(
			fmt.Sprintf("document carries more than %d tags", v.cfg.MaxTagsPerDocument))
	}
	if len(doc.Categories) > v.cfg.MaxCategoriesPerDocument {
		return pkgerrors.NewValidationError(
			fmt.Sprintf("document carries more than %d categories", v.cfg.MaxCategoriesPerDocument))
	}
	return nil
}

// ValidateTaskTitle reports whether a task title is acceptable. A blank
// title is declined, matching the silent no-op policy for task creation.
func (v *DocumentValidator) ValidateTaskTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return pkgerrors.NewValidationError("task title cannot be blank")
	}
	return nil
}
