// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Resume string `json:"resume,omitempty"` // Path to resume snapshot JSON file
	Job    string `json:"job,omitempty"`    // Path to job description text file
	Output string `json:"output,omitempty"` // Path to write optimization output JSON

	// Strategy toggles (nil means enabled)
	RewriteBullets         *bool `json:"rewrite_bullets,omitempty"`
	InjectKeywords         *bool `json:"inject_keywords,omitempty"`
	SuggestQuantifications *bool `json:"suggest_quantifications,omitempty"`
	StandardizeFormatting  *bool `json:"standardize_formatting,omitempty"`
	MaxKeywords            int   `json:"max_keywords,omitempty"`

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.MaxKeywords < 0 {
		return fmt.Errorf("max_keywords must not be negative, got %d", c.MaxKeywords)
	}
	return nil
}
