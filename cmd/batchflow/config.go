package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the YAML configuration for the run command.
type Config struct {
	// ChunkSize bounds how many items run concurrently. 0 = unbounded.
	ChunkSize int `yaml:"chunk_size"`

	// FailFast aborts the whole run on the first item failure.
	FailFast bool `yaml:"fail_fast"`

	Rate struct {
		// Limit is the items-per-window budget. 0 disables pacing.
		Limit int `yaml:"limit"`
		// Interval is the window length (default one minute).
		Interval time.Duration `yaml:"interval"`
	} `yaml:"rate"`
}

// loadConfig reads the YAML config at path. A missing path yields the
// zero config (unbounded, no pacing).
func loadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
