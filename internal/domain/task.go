package domain

import "fmt"

// Task represents a task in the domain model.
// This is a pure domain model without database-specific concerns.
type Task struct {
	ID        int64
	Title     string
	Completed bool
}

// NewTask creates a new Task with the given title.
// A new task always starts out not completed.
func NewTask(title string) Task {
	return Task{
		Title: title,
	}
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.Title != ""
}

// DoneMarker returns the completion marker used when listing tasks.
func (t Task) DoneMarker() string {
	if t.Completed {
		return "✅"
	}
	return "❌"
}

// String returns the task in its display form.
func (t Task) String() string {
	return fmt.Sprintf("%d: %s - %s", t.ID, t.Title, t.DoneMarker())
}
