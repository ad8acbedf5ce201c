package cli

import (
	"context"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tasktrackr/internal/api"
	"tasktrackr/internal/config"
	"tasktrackr/internal/services"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd   *cobra.Command
	tasks services.TaskService
	cfg   *config.Config
}

// NewRootCommand creates the root cobra command with all subcommands
func NewRootCommand(tasks services.TaskService, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		tasks: tasks,
		cfg:   cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "tasktrackr",
		Short: "A task tracking HTTP API with an admin CLI",
		Long: `TaskTrackr serves a small task-tracking HTTP API and ships an
administrative command line for operational use.

EXAMPLES:
  tasktrackr serve                 # Run the HTTP server
  tasktrackr add "Buy milk"        # Create a task directly
  tasktrackr list                  # List all tasks

CONFIGURATION:
  Configuration is read from defaults, then a .env file, then the
  process environment.

    TASKTRACKR_APP_NAME              Application name (default: TaskTrackr)
    TASKTRACKR_DEBUG                 Enable debug output (default: false)
    TASKTRACKR_DATABASE_URL          Storage address (default: sqlite://./tasks.db)
                                     Use postgres://... for a networked database.
    TASKTRACKR_HTTP_ADDR             HTTP listen address (default: :8000)
    TASKTRACKR_HTTP_SHUTDOWN_TIMEOUT Graceful shutdown timeout (default: 10s)
    TASKTRACKR_DB_QUERY_TIMEOUT      Per-operation query timeout (default: 10s)`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Long:  "Serve the task API over HTTP until interrupted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			server := api.NewServer(r.cfg, r.tasks)
			return server.Run(ctx)
		},
	}

	addCmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Create a new task",
		Long:  "Create a task directly against the store, bypassing HTTP.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.cfg.Database.QueryTimeout)
			defer cancel()

			addHandler := NewAddCommand(r.tasks, cmd.OutOrStdout())
			return addHandler.Execute(ctx, args)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all tasks",
		Long:  "Print every stored task with its ID and completion marker.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.cfg.Database.QueryTimeout)
			defer cancel()

			listHandler := NewListCommand(r.tasks, cmd.OutOrStdout())
			return listHandler.Execute(ctx, args)
		},
	}

	r.cmd.AddCommand(
		serveCmd,
		addCmd,
		listCmd,
	)
}

// SetArgs overrides command line arguments, exposed for tests
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// SetOut overrides the output writer, exposed for tests
func (r *RootCommand) SetOut(w io.Writer) {
	r.cmd.SetOut(w)
}
