package commands

import (
	"mindflow-backend/domain/core/entities"
	pkgerrors "mindflow-backend/pkg/errors"
)

// CreateTaskCommand adds a task under a category. A blank title is accepted
// by validation and resolves to a silent no-op in the handler: Created
// stays nil and no error surfaces.
type CreateTaskCommand struct {
	CategoryID   string
	CategoryName string
	Title        string

	Created *entities.Task
}

// Validate implements bus.Command.
func (cmd *CreateTaskCommand) Validate() error {
	if cmd.CategoryID == "" {
		return pkgerrors.NewValidationError("category id is required")
	}
	return nil
}

// ToggleTaskCommand flips a task's completed flag; absent ids are a no-op.
type ToggleTaskCommand struct {
	ID string

	Toggled *entities.Task
}

// Validate implements bus.Command.
func (cmd *ToggleTaskCommand) Validate() error {
	if cmd.ID == "" {
		return pkgerrors.NewValidationError("task id is required")
	}
	return nil
}

// DeleteTaskCommand removes a task; absent ids are a no-op.
type DeleteTaskCommand struct {
	ID string
}

// Validate implements bus.Command.
func (cmd *DeleteTaskCommand) Validate() error {
	if cmd.ID == "" {
		return pkgerrors.NewValidationError("task id is required")
	}
	return nil
}
