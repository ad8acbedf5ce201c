package main

import (
	"fmt"
	"os"

	"tasktrackr/internal/cli"
	"tasktrackr/internal/config"
	"tasktrackr/internal/services"
)

func main() {
	// Load configuration: defaults, then .env, then environment
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Create repository for the configured storage address
	repo, err := config.CreateRepository(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating repository: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	// Create the task service with the injected repository
	tasks := services.NewTaskService(repo)

	// Create CLI app and dispatch
	app := cli.NewRootCommand(tasks, cfg)
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
