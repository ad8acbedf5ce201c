package config

import (
	"fmt"

	"tasktrackr/internal/repository"
	"tasktrackr/internal/repository/postgres"
	"tasktrackr/internal/repository/sqlite"
)

// CreateRepository creates the repository instance selected by the
// configured storage address.
func CreateRepository(config *Config) (repository.TaskRepository, error) {
	kind, dsn, err := ParseDatabaseURL(config.Database.URL)
	if err != nil {
		return nil, err
	}

	switch kind {
	case BackendSQLite:
		repo, err := sqlite.New(dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize sqlite database: %w", err)
		}
		return repo, nil
	case BackendPostgres:
		repo, err := postgres.New(dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize postgres database: %w", err)
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("unknown database backend: %q", kind)
	}
}

// CreateTestRepository creates an in-memory repository for testing
func CreateTestRepository() (repository.TaskRepository, error) {
	repo, err := sqlite.New(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}
	return repo, nil
}
