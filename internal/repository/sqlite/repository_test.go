package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasktrackr/internal/errors"
	"tasktrackr/internal/repository"
)

func setupTestDB(t *testing.T) *SQLiteRepository {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "tasks.db")
	repo, err := New(dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		repo.Close()
	})

	return repo
}

func TestCreateTask(t *testing.T) {
	repo := setupTestDB(t)

	task := &repository.Task{Title: "Buy milk"}
	err := repo.CreateTask(context.Background(), task)
	require.NoError(t, err)
	assert.Greater(t, task.ID, int64(0))

	// Verify the task is immediately readable
	retrieved, err := repo.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, retrieved.ID)
	assert.Equal(t, "Buy milk", retrieved.Title)
	assert.False(t, retrieved.Completed)
}

func TestCreateTask_AssignsSequentialIDs(t *testing.T) {
	repo := setupTestDB(t)

	first := &repository.Task{Title: "First"}
	second := &repository.Task{Title: "Second"}
	require.NoError(t, repo.CreateTask(context.Background(), first))
	require.NoError(t, repo.CreateTask(context.Background(), second))

	assert.Greater(t, second.ID, first.ID)
}

func TestCreateTask_AllowsDuplicateTitles(t *testing.T) {
	repo := setupTestDB(t)

	first := &repository.Task{Title: "Same"}
	second := &repository.Task{Title: "Same"}
	require.NoError(t, repo.CreateTask(context.Background(), first))
	require.NoError(t, repo.CreateTask(context.Background(), second))

	tasks, err := repo.ListTasks(context.Background())
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
}

func TestGetTask_NotFound(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.GetTask(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestListTasks_Empty(t *testing.T) {
	repo := setupTestDB(t)

	tasks, err := repo.ListTasks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestListTasks_OrderedByID(t *testing.T) {
	repo := setupTestDB(t)

	titles := []string{"First", "Second", "Third"}
	for _, title := range titles {
		err := repo.CreateTask(context.Background(), &repository.Task{Title: title})
		require.NoError(t, err)
	}

	tasks, err := repo.ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	for i, task := range tasks {
		assert.Equal(t, titles[i], task.Title)
		if i > 0 {
			assert.Greater(t, task.ID, tasks[i-1].ID)
		}
	}
}

func TestUpdateTask(t *testing.T) {
	repo := setupTestDB(t)

	task := &repository.Task{Title: "A"}
	require.NoError(t, repo.CreateTask(context.Background(), task))

	// Full replace: title and completed are overwritten
	task.Title = "B"
	task.Completed = true
	require.NoError(t, repo.UpdateTask(context.Background(), task))

	retrieved, err := repo.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, "B", retrieved.Title)
	assert.True(t, retrieved.Completed)
}

func TestUpdateTask_OverwritesWithDefaults(t *testing.T) {
	repo := setupTestDB(t)

	task := &repository.Task{Title: "A", Completed: true}
	require.NoError(t, repo.CreateTask(context.Background(), task))

	// An update that leaves completed at its default clears the flag
	replacement := &repository.Task{ID: task.ID, Title: "A"}
	require.NoError(t, repo.UpdateTask(context.Background(), replacement))

	retrieved, err := repo.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.False(t, retrieved.Completed)
}

func TestUpdateTask_NotFound(t *testing.T) {
	repo := setupTestDB(t)

	err := repo.UpdateTask(context.Background(), &repository.Task{ID: 999, Title: "Ghost"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

	// No write happened
	tasks, err := repo.ListTasks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestDeleteTask(t *testing.T) {
	repo := setupTestDB(t)

	task := &repository.Task{Title: "Ephemeral"}
	require.NoError(t, repo.CreateTask(context.Background(), task))

	require.NoError(t, repo.DeleteTask(context.Background(), task.ID))

	_, err := repo.GetTask(context.Background(), task.ID)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

	// Deleting again reports not found
	err = repo.DeleteTask(context.Background(), task.ID)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestTaskLifecycle(t *testing.T) {
	repo := setupTestDB(t)

	task := &repository.Task{Title: "Buy milk"}
	require.NoError(t, repo.CreateTask(context.Background(), task))
	assert.Greater(t, task.ID, int64(0))
	assert.False(t, task.Completed)

	tasks, err := repo.ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, task.ID, tasks[0].ID)
	assert.Equal(t, "Buy milk", tasks[0].Title)

	require.NoError(t, repo.DeleteTask(context.Background(), task.ID))

	tasks, err = repo.ListTasks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestPersistenceAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "tasks.db")

	repo, err := New(dbPath)
	require.NoError(t, err)

	task := &repository.Task{Title: "Durable"}
	require.NoError(t, repo.CreateTask(context.Background(), task))
	require.NoError(t, repo.Close())

	reopened, err := New(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	retrieved, err := reopened.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Durable", retrieved.Title)
}
