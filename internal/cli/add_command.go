package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"tasktrackr/internal/services"
)

// AddCommand creates a task from the command line, bypassing HTTP.
type AddCommand struct {
	tasks        services.TaskService
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(tasks services.TaskService, out io.Writer) *AddCommand {
	return &AddCommand{
		tasks:        tasks,
		out:          out,
		errorHandler: NewErrorHandler(),
	}
}

// Execute creates a task with the given title and prints its assigned ID
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	title := strings.Join(args, " ")

	task, err := c.tasks.Create(ctx, title, false)
	if err != nil {
		return c.errorHandler.Handle("create task", err)
	}

	fmt.Fprintf(c.out, "✅ Created task: %s (ID: %d)\n", task.Title, task.ID)
	return nil
}
