// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or come from
// CLI flags after merging.
type Config struct {
	// Paths
	Resume string `json:"resume,omitempty" validate:"omitempty,filepath"` // Path to resume markdown file
	Job    string `json:"job,omitempty" validate:"omitempty,filepath"`    // Path to job posting text file
	OutDir string `json:"out_dir,omitempty"`                              // Output directory for artifacts

	// Behavior
	Verbose        bool `json:"verbose,omitempty"`         // Print detailed parse summaries
	ValidateSchema bool `json:"validate_schema,omitempty"` // Validate emitted JSON against embedded schemas
	Strict         bool `json:"strict,omitempty"`          // Treat validation findings as fatal
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration with struct tags plus file existence
// checks for the input paths.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}

	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// Merge overlays non-zero flag values onto the config. Flags win over the
// config file.
func (c *Config) Merge(other *Config) {
	if other.Resume != "" {
		c.Resume = other.Resume
	}
	if other.Job != "" {
		c.Job = other.Job
	}
	if other.OutDir != "" {
		c.OutDir = other.OutDir
	}
	if other.Verbose {
		c.Verbose = true
	}
	if other.ValidateSchema {
		c.ValidateSchema = true
	}
	if other.Strict {
		c.Strict = true
	}
}
