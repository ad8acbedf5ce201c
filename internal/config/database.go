package config

import (
	"fmt"
	"strings"
)

// BackendKind identifies which storage backend a database URL selects
type BackendKind string

const (
	BackendSQLite   BackendKind = "sqlite"
	BackendPostgres BackendKind = "postgres"
)

// ParseDatabaseURL splits a storage address into a backend kind and the
// DSN that backend's driver accepts.
//
// Accepted forms:
//
//	sqlite://./tasks.db        embedded file, relative path
//	sqlite:///var/db/tasks.db  embedded file, absolute path
//	:memory:                   embedded, in-memory
//	./tasks.db                 bare path, treated as sqlite
//	postgres://user:pw@host/db networked backend
func ParseDatabaseURL(rawURL string) (BackendKind, string, error) {
	switch {
	case strings.HasPrefix(rawURL, "sqlite://"):
		path := strings.TrimPrefix(rawURL, "sqlite://")
		// sqlite:///./tasks.db keeps a leading slash in front of a
		// relative path; drop it.
		if strings.HasPrefix(path, "/.") {
			path = path[1:]
		}
		if path == "" {
			return "", "", fmt.Errorf("sqlite URL has no path: %q", rawURL)
		}
		return BackendSQLite, path, nil

	case strings.HasPrefix(rawURL, "postgres://"), strings.HasPrefix(rawURL, "postgresql://"):
		return BackendPostgres, rawURL, nil

	case strings.Contains(rawURL, "://"):
		scheme := rawURL[:strings.Index(rawURL, "://")]
		return "", "", fmt.Errorf("unsupported database scheme: %q", scheme)

	case rawURL == "":
		return "", "", fmt.Errorf("database URL is empty")

	default:
		// Bare file paths and ":memory:" select the embedded backend.
		return BackendSQLite, rawURL, nil
	}
}
