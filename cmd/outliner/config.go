package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the batch tool configuration.
type Config struct {
	// InputDir is scanned (non-recursively) for supported documents.
	InputDir string `yaml:"input_dir"`

	// OutputDir receives one <stem>.json per input document.
	OutputDir string `yaml:"output_dir"`

	// Workers is the number of documents processed concurrently.
	Workers int `yaml:"workers"`

	// TimeoutSeconds bounds processing of a single document; a document
	// exceeding it is reported as failed without aborting the batch.
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// MaxPages limits pages processed per document; 0 means all.
	MaxPages int `yaml:"max_pages"`

	// SkipEntities disables entity and key phrase extraction.
	SkipEntities bool `yaml:"skip_entities"`
}

// DefaultConfig returns sane defaults.
func DefaultConfig() *Config {
	return &Config{
		InputDir:       "input",
		OutputDir:      "output",
		Workers:        4,
		TimeoutSeconds: 60,
	}
}

// LoadConfig reads and parses a YAML config file, merged over defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks that required fields are present and values are sane.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("input_dir is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1")
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout_seconds must not be negative")
	}
	return nil
}
