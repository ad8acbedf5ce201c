package services

import (
	"context"

	"tasktrackr/internal/domain"
)

// TaskService owns the CRUD lifecycle of Task records. Validation runs
// before any storage access; persistence is delegated to the injected
// repository.
type TaskService interface {
	// Create stores a new task and returns it with its assigned ID.
	// Any caller-supplied ID is ignored; the backend assigns one.
	Create(ctx context.Context, title string, completed bool) (*domain.Task, error)

	// List returns all stored tasks in a stable order.
	List(ctx context.Context) ([]*domain.Task, error)

	// Get returns the task with the given ID.
	Get(ctx context.Context, id int64) (*domain.Task, error)

	// Update wholly replaces the task's title and completed flag.
	// This is a full replace, not a partial patch: fields the caller
	// leaves at their defaults overwrite whatever was stored.
	Update(ctx context.Context, id int64, title string, completed bool) (*domain.Task, error)

	// Delete permanently removes the task with the given ID.
	Delete(ctx context.Context, id int64) error
}
