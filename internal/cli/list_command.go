package cli

import (
	"context"
	"fmt"
	"io"

	"tasktrackr/internal/services"
)

// ListCommand prints every stored task, one per line.
type ListCommand struct {
	tasks        services.TaskService
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewListCommand creates a new list command handler
func NewListCommand(tasks services.TaskService, out io.Writer) *ListCommand {
	return &ListCommand{
		tasks:        tasks,
		out:          out,
		errorHandler: NewErrorHandler(),
	}
}

// Execute lists all tasks as "{id}: {title} - {marker}"
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	tasks, err := c.tasks.List(ctx)
	if err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}

	for _, task := range tasks {
		fmt.Fprintln(c.out, task.String())
	}
	return nil
}
