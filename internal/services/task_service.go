package services

import (
	"context"

	"tasktrackr/internal/domain"
	"tasktrackr/internal/errors"
	"tasktrackr/internal/repository"
	"tasktrackr/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo          repository.TaskRepository
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
}

// NewTaskService creates a new TaskService instance
func NewTaskService(repo repository.TaskRepository) TaskService {
	return &taskServiceImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidator(),
	}
}

// validateAndTrimTitle validates and trims a task title
func (t *taskServiceImpl) validateAndTrimTitle(title string) (string, error) {
	trimmedTitle, err := t.taskValidator.GetValidTitle(title)
	if err != nil {
		return "", errors.NewValidationError("invalid task title", err)
	}
	return trimmedTitle, nil
}

// validateTaskID validates a task ID
func (t *taskServiceImpl) validateTaskID(id int64) error {
	if err := t.taskValidator.ValidateTaskID(id); err != nil {
		return errors.NewValidationError("invalid task ID", err)
	}
	return nil
}

// Create stores a new task and returns it with its assigned ID
func (t *taskServiceImpl) Create(ctx context.Context, title string, completed bool) (*domain.Task, error) {
	trimmedTitle, err := t.validateAndTrimTitle(title)
	if err != nil {
		return nil, err
	}

	dbTask := &repository.Task{
		Title:     trimmedTitle,
		Completed: completed,
	}

	if err := t.repo.CreateTask(ctx, dbTask); err != nil {
		return nil, err
	}

	domainTask := t.mapper.Task.FromDatabase(*dbTask)
	return &domainTask, nil
}

// List returns all stored tasks
func (t *taskServiceImpl) List(ctx context.Context) ([]*domain.Task, error) {
	dbTasks, err := t.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return t.mapper.Task.FromDatabaseSlice(dbTasks), nil
}

// Get returns the task with the given ID
func (t *taskServiceImpl) Get(ctx context.Context, id int64) (*domain.Task, error) {
	if err := t.validateTaskID(id); err != nil {
		return nil, err
	}

	dbTask, err := t.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	domainTask := t.mapper.Task.FromDatabase(*dbTask)
	return &domainTask, nil
}

// Update wholly replaces the task's title and completed flag.
// A single UPDATE performs the existence check: zero affected rows
// surfaces as a not-found error without any write having happened.
func (t *taskServiceImpl) Update(ctx context.Context, id int64, title string, completed bool) (*domain.Task, error) {
	if err := t.validateTaskID(id); err != nil {
		return nil, err
	}

	trimmedTitle, err := t.validateAndTrimTitle(title)
	if err != nil {
		return nil, err
	}

	dbTask := &repository.Task{
		ID:        id,
		Title:     trimmedTitle,
		Completed: completed,
	}

	if err := t.repo.UpdateTask(ctx, dbTask); err != nil {
		return nil, err
	}

	domainTask := t.mapper.Task.FromDatabase(*dbTask)
	return &domainTask, nil
}

// Delete permanently removes the task with the given ID
func (t *taskServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := t.validateTaskID(id); err != nil {
		return err
	}

	return t.repo.DeleteTask(ctx, id)
}
