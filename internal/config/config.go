// Package config loads the YAML configuration for the property inspector
// CLI: which packages to load, which types to inspect and output options.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultMaxSuggestions = 3

// File is the root of an inspector configuration file.
type File struct {
	// Packages are the Go package patterns to load (as for go build).
	Packages []string `yaml:"packages"`
	// Types restricts inspection to the named types. Empty means all
	// exported struct types of the loaded packages.
	Types []string `yaml:"types,omitempty"`
	// MaxSuggestions caps the did-you-mean list on property lookup
	// failures.
	MaxSuggestions int `yaml:"max_suggestions,omitempty"`
	// Verbose enables debug logging and full table dumps.
	Verbose bool `yaml:"verbose,omitempty"`
}

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.MaxSuggestions <= 0 {
		f.MaxSuggestions = defaultMaxSuggestions
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}
