package config

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Allowed range for the threads setting.
const (
	MinThreads = 1
	MaxThreads = 20
)

// Config holds the settings the demo application runs with.
type Config struct {
	Name    string `yaml:"name"`
	Workdir string `yaml:"workdir"`
	Threads int    `yaml:"threads"`
}

// Load reads, parses, and validates the configuration file at path.
// It returns an error if the file cannot be read, is not valid YAML, or
// fails validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Config{Workdir: "."}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("cannot parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Debug().Str("path", path).Str("name", cfg.Name).Msg("Configuration loaded")
	return &cfg, nil
}

// Validate checks that all required settings are present and within range.
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if c.Threads < MinThreads || c.Threads > MaxThreads {
		return fmt.Errorf("threads must be between %d and %d, got %d", MinThreads, MaxThreads, c.Threads)
	}
	return nil
}
