package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	task, err := NewTask("general", "General", "Review sleep log")

	require.NoError(t, err)
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "Review sleep log", task.Title)
	assert.Equal(t, "general", task.CategoryID)
	assert.Equal(t, "General", task.CategoryName)
	assert.False(t, task.Completed)
}

func TestNewTask_RejectsBlankTitle(t *testing.T) {
	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := NewTask("general", "General", title)
		assert.Error(t, err, "title %q", title)
	}
}

func TestTaskToggle(t *testing.T) {
	task, err := NewTask("general", "General", "stretch")
	require.NoError(t, err)

	task.Toggle()
	assert.True(t, task.Completed)

	task.Toggle()
	assert.False(t, task.Completed)
}
