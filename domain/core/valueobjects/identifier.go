package valueobjects

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DocumentID is a value object representing a unique document identifier.
// Identifiers are time-ordered so that listing by id roughly follows
// creation order.
type DocumentID struct {
	value string
}

// NewDocumentID creates a new time-ordered DocumentID.
func NewDocumentID() DocumentID {
	return DocumentID{value: newTimeOrderedID("doc")}
}

// NewDocumentIDFromString creates a DocumentID from an existing string.
func NewDocumentIDFromString(id string) (DocumentID, error) {
	if id == "" {
		return DocumentID{}, errors.New("document ID cannot be empty")
	}
	return DocumentID{value: id}, nil
}

// String returns the string representation of the DocumentID.
func (id DocumentID) String() string {
	return id.value
}

// Equals checks if two DocumentIDs are equal.
func (id DocumentID) Equals(other DocumentID) bool {
	return id.value == other.value
}

// IsZero checks if the DocumentID is the zero value.
func (id DocumentID) IsZero() bool {
	return id.value == ""
}

// TaskID is a value object representing a unique task identifier.
type TaskID struct {
	value string
}

// NewTaskID creates a new time-ordered TaskID.
func NewTaskID() TaskID {
	return TaskID{value: newTimeOrderedID("task")}
}

// NewTaskIDFromString creates a TaskID from an existing string.
func NewTaskIDFromString(id string) (TaskID, error) {
	if id == "" {
		return TaskID{}, errors.New("task ID cannot be empty")
	}
	return TaskID{value: id}, nil
}

// String returns the string representation of the TaskID.
func (id TaskID) String() string {
	return id.value
}

// Equals checks if two TaskIDs are equal.
func (id TaskID) Equals(other TaskID) bool {
	return id.value == other.value
}

// IsZero checks if the TaskID is the zero value.
func (id TaskID) IsZero() bool {
	return id.value == ""
}

// NewEventID returns a random identifier for a domain event.
func NewEventID() string {
	return uuid.New().String()
}

// newTimeOrderedID combines a millisecond timestamp with a random suffix.
// The timestamp keeps ids sortable by creation time; the suffix keeps them
// unique when several are generated within the same millisecond.
func newTimeOrderedID(prefix string) string {
	suffix := strings.Split(uuid.New().String(), "-")[0]
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), suffix)
}
