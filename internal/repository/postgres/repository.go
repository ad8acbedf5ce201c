// Package postgres implements the task repository on a networked
// PostgreSQL database, used in deployed environments.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"tasktrackr/internal/errors"
	"tasktrackr/internal/repository"

	_ "github.com/lib/pq"
)

// createTableQuery ensures the tasks table exists. The schema matches
// the SQLite backend; id assignment is left to the database.
const createTableQuery = `
CREATE TABLE IF NOT EXISTS tasks (
	id SERIAL PRIMARY KEY,
	title TEXT NOT NULL,
	completed BOOLEAN NOT NULL DEFAULT FALSE
)`

// PostgresRepository implements the repository.TaskRepository interface
type PostgresRepository struct {
	db *sql.DB
}

// New creates a new PostgreSQL repository instance.
// dsn is a connection URL or keyword/value string accepted by lib/pq.
func New(dsn string) (*PostgresRepository, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("ping database", err)
	}

	if _, err := db.Exec(createTableQuery); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("create tasks table", err)
	}

	return &PostgresRepository{db: db}, nil
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// CreateTask creates a new task and sets its assigned ID.
// lib/pq does not support LastInsertId, so the ID comes back via RETURNING.
func (r *PostgresRepository) CreateTask(ctx context.Context, task *repository.Task) error {
	query := `INSERT INTO tasks (title, completed) VALUES ($1, $2) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, task.Title, task.Completed).Scan(&task.ID)
	if err != nil {
		return repository.HandleDatabaseError("insert task", err)
	}
	return nil
}

// GetTask retrieves a task by ID
func (r *PostgresRepository) GetTask(ctx context.Context, id int64) (*repository.Task, error) {
	query := `SELECT id, title, completed FROM tasks WHERE id = $1`
	return repository.QuerySingle(ctx, r.db, query, repository.ScanTask, "task", fmt.Sprintf("%d", id), id)
}

// ListTasks retrieves all tasks ordered by ID
func (r *PostgresRepository) ListTasks(ctx context.Context) ([]*repository.Task, error) {
	query := `SELECT id, title, completed FROM tasks ORDER BY id ASC`
	return repository.QueryMultiple(ctx, r.db, query, repository.ScanTasks, "tasks")
}

// UpdateTask replaces the stored title and completed flag for an existing task
func (r *PostgresRepository) UpdateTask(ctx context.Context, task *repository.Task) error {
	query := `UPDATE tasks SET title = $1, completed = $2 WHERE id = $3`
	return repository.ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", task.ID), task.Title, task.Completed, task.ID)
}

// DeleteTask deletes a task by ID
func (r *PostgresRepository) DeleteTask(ctx context.Context, id int64) error {
	query := `DELETE FROM tasks WHERE id = $1`
	return repository.ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", id), id)
}
