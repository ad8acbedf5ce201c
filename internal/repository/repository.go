// Package repository defines the storage contract for tasks and the
// helpers shared by the concrete database backends.
package repository

import "context"

// Task represents a task row as persisted by a backend.
type Task struct {
	ID        int64
	Title     string
	Completed bool
}

// TaskRepository defines the interface for database operations on tasks.
// The backend assigns IDs on create; every mutating call is durably
// committed before it returns.
type TaskRepository interface {
	// CreateTask inserts the task and sets its backend-assigned ID.
	CreateTask(ctx context.Context, task *Task) error

	// GetTask retrieves a task by ID.
	GetTask(ctx context.Context, id int64) (*Task, error)

	// ListTasks retrieves all tasks in a stable order.
	ListTasks(ctx context.Context) ([]*Task, error)

	// UpdateTask replaces the stored title and completed flag for task.ID.
	UpdateTask(ctx context.Context, task *Task) error

	// DeleteTask removes a task by ID.
	DeleteTask(ctx context.Context, id int64) error

	// Close releases the backend's connection pool.
	Close() error
}
