package entities

import (
	"strings"
	"time"

	"mindflow-backend/domain/core/valueobjects"
	pkgerrors "mindflow-backend/pkg/errors"
)

// Task is an action item attached to a category. Tasks are immutable after
// creation except for the completed flag and deletion.
type Task struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Completed    bool      `json:"completed"`
	CategoryID   string    `json:"categoryId"`
	CategoryName string    `json:"categoryName"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewTask creates a task under a category. A blank or whitespace-only title
// is a validation failure; callers that want silent-decline semantics check
// for it before surfacing anything.
func NewTask(categoryID, categoryName, title string) (*Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, pkgerrors.NewValidationError("task title cannot be blank")
	}

	return &Task{
		ID:           valueobjects.NewTaskID().String(),
		Title:        title,
		Completed:    false,
		CategoryID:   categoryID,
		CategoryName: categoryName,
		CreatedAt:    time.Now(),
	}, nil
}

// Toggle flips the completed flag.
func (t *Task) Toggle() {
	t.Completed = !t.Completed
}
