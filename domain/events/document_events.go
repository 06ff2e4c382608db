package events

import "time"

// DocumentCreated is raised when a document is saved for the first time.
type DocumentCreated struct {
	BaseEvent
	DocumentID        string   `json:"document_id"`
	Title             string   `json:"title"`
	PrimaryCategoryID string   `json:"primary_category_id"`
	Tags              []string `json:"tags"`
}

// NewDocumentCreated creates a DocumentCreated event.
func NewDocumentCreated(documentID, title, primaryCategoryID string, tags []string, timestamp time.Time) DocumentCreated {
	return DocumentCreated{
		BaseEvent:         newBaseEvent(documentID, "document.created", timestamp),
		DocumentID:        documentID,
		Title:             title,
		PrimaryCategoryID: primaryCategoryID,
		Tags:              tags,
	}
}

// DocumentUpdated is raised when an existing document is patched.
type DocumentUpdated struct {
	BaseEvent
	DocumentID string   `json:"document_id"`
	Tags       []string `json:"tags"`
}

// NewDocumentUpdated creates a DocumentUpdated event.
func NewDocumentUpdated(documentID string, tags []string, timestamp time.Time) DocumentUpdated {
	return DocumentUpdated{
		BaseEvent:  newBaseEvent(documentID, "document.updated", timestamp),
		DocumentID: documentID,
		Tags:       tags,
	}
}

// DocumentDeleted is raised when a document is removed.
type DocumentDeleted struct {
	BaseEvent
	DocumentID string `json:"document_id"`
}

// NewDocumentDeleted creates a DocumentDeleted event.
func NewDocumentDeleted(documentID string, timestamp time.Time) DocumentDeleted {
	return DocumentDeleted{
		BaseEvent:  newBaseEvent(documentID, "document.deleted", timestamp),
		DocumentID: documentID,
	}
}

// TaskCreated is raised when a task is added under a category.
type TaskCreated struct {
	BaseEvent
	TaskID     string `json:"task_id"`
	CategoryID string `json:"category_id"`
	Title      string `json:"title"`
}

// NewTaskCreated creates a TaskCreated event.
func NewTaskCreated(taskID, categoryID, title string, timestamp time.Time) TaskCreated {
	return TaskCreated{
		BaseEvent:  newBaseEvent(taskID, "task.created", timestamp),
		TaskID:     taskID,
		CategoryID: categoryID,
		Title:      title,
	}
}

// TaskCompleted is raised when a task's completed flag flips to true.
type TaskCompleted struct {
	BaseEvent
	TaskID string `json:"task_id"`
}

// NewTaskCompleted creates a TaskCompleted event.
func NewTaskCompleted(taskID string, timestamp time.Time) TaskCompleted {
	return TaskCompleted{
		BaseEvent: newBaseEvent(taskID, "task.completed", timestamp),
		TaskID:    taskID,
	}
}
