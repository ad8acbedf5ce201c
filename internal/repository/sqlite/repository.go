// Package sqlite implements the task repository on an embedded
// file-backed (or in-memory) SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"tasktrackr/internal/errors"
	"tasktrackr/internal/repository"
	"tasktrackr/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// SQLiteRepository implements the repository.TaskRepository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance.
// dbPath is a file path or ":memory:".
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateTask creates a new task and sets its assigned ID
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *repository.Task) error {
	query := `INSERT INTO tasks (title, completed) VALUES (?, ?)`
	id, err := repository.ExecuteWithLastInsertID(ctx, r.db, query, task.Title, task.Completed)
	if err != nil {
		return err
	}
	task.ID = id
	return nil
}

// GetTask retrieves a task by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (*repository.Task, error) {
	query := `SELECT id, title, completed FROM tasks WHERE id = ?`
	return repository.QuerySingle(ctx, r.db, query, repository.ScanTask, "task", fmt.Sprintf("%d", id), id)
}

// ListTasks retrieves all tasks ordered by ID
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*repository.Task, error) {
	query := `SELECT id, title, completed FROM tasks ORDER BY id ASC`
	return repository.QueryMultiple(ctx, r.db, query, repository.ScanTasks, "tasks")
}

// UpdateTask replaces the stored title and completed flag for an existing task
func (r *SQLiteRepository) UpdateTask(ctx context.Context, task *repository.Task) error {
	query := `UPDATE tasks SET title = ?, completed = ? WHERE id = ?`
	return repository.ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", task.ID), task.Title, task.Completed, task.ID)
}

// DeleteTask deletes a task by ID
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64) error {
	query := `DELETE FROM tasks WHERE id = ?`
	return repository.ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", id), id)
}
