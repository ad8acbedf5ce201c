package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration options for the TaskTrackr application
type Config struct {
	Application ApplicationConfig
	Server      ServerConfig
	Database    DatabaseConfig
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Name  string `env:"TASKTRACKR_APP_NAME"`
	Debug bool   `env:"TASKTRACKR_DEBUG"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr            string        `env:"TASKTRACKR_HTTP_ADDR"`
	ShutdownTimeout time.Duration `env:"TASKTRACKR_HTTP_SHUTDOWN_TIMEOUT"`
}

// DatabaseConfig holds database-related configuration.
// URL is the storage address: a sqlite:// file path for local use or a
// postgres:// endpoint for deployed use.
type DatabaseConfig struct {
	URL          string        `env:"TASKTRACKR_DATABASE_URL"`
	QueryTimeout time.Duration `env:"TASKTRACKR_DB_QUERY_TIMEOUT"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Application: ApplicationConfig{
			Name:  "TaskTrackr",
			Debug: false,
		},
		Server: ServerConfig{
			Addr:            ":8000",
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			URL:          "sqlite://./tasks.db",
			QueryTimeout: 10 * time.Second,
		},
	}
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Database.QueryTimeout
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Application configuration
	if name := os.Getenv("TASKTRACKR_APP_NAME"); name != "" {
		c.Application.Name = name
	}
	if debug := os.Getenv("TASKTRACKR_DEBUG"); debug != "" {
		if b, err := strconv.ParseBool(debug); err == nil {
			c.Application.Debug = b
		}
	}

	// Server configuration
	if addr := os.Getenv("TASKTRACKR_HTTP_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if timeout := os.Getenv("TASKTRACKR_HTTP_SHUTDOWN_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Server.ShutdownTimeout = d
		}
	}

	// Database configuration
	if url := os.Getenv("TASKTRACKR_DATABASE_URL"); url != "" {
		c.Database.URL = url
	}
	if timeout := os.Getenv("TASKTRACKR_DB_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.QueryTimeout = d
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Application.Name == "" {
		return &ConfigError{Field: "application.name", Message: "application name cannot be empty"}
	}

	if c.Server.Addr == "" {
		return &ConfigError{Field: "server.addr", Message: "server address cannot be empty"}
	}
	if c.Server.ShutdownTimeout <= 0 {
		return &ConfigError{Field: "server.shutdown_timeout", Message: "shutdown timeout must be positive"}
	}

	if c.Database.URL == "" {
		return &ConfigError{Field: "database.url", Message: "database URL cannot be empty"}
	}
	if _, _, err := ParseDatabaseURL(c.Database.URL); err != nil {
		return &ConfigError{Field: "database.url", Message: err.Error()}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
