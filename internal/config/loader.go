package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Apply a .env file, if one exists in the working directory
// 3. Override with process environment variables
func (l *Loader) Load() (*Config, error) {
	return l.LoadWithEnvFile(".env")
}

// LoadWithEnvFile loads configuration, reading the given dotenv file.
// A missing file is not an error; variables already set in the process
// environment are never overridden by the file.
func (l *Loader) LoadWithEnvFile(envFile string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}
