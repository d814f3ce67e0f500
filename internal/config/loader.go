package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".sitemanifest"

// XDGConfigFile is the configuration file name inside XDGConfigDir.
const XDGConfigFile = "config.yaml"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .sitemanifest configuration file.
// Unset keys leave the corresponding Config value untouched.
type File struct {
	// OutputDir is the directory artifacts are written to.
	OutputDir string `yaml:"outputDir,omitempty"`

	// InventoryFile overrides the CSV inventory file name.
	InventoryFile string `yaml:"inventoryFile,omitempty"`

	// DeliveryFile overrides the delivery summary file name.
	DeliveryFile string `yaml:"deliveryFile,omitempty"`

	// Markdown enables the Markdown inventory export.
	Markdown *bool `yaml:"markdown,omitempty"`

	// JSON enables the JSON catalog export.
	JSON *bool `yaml:"json,omitempty"`

	// History enables recording runs in the history database.
	History *bool `yaml:"history,omitempty"`
}

// Apply copies the values set in the file onto cfg.
func (cf *File) Apply(cfg *Config) {
	if cf.OutputDir != "" {
		cfg.OutputDir = cf.OutputDir
	}
	if cf.InventoryFile != "" {
		cfg.InventoryFile = cf.InventoryFile
	}
	if cf.DeliveryFile != "" {
		cfg.DeliveryFile = cf.DeliveryFile
	}
	if cf.Markdown != nil {
		cfg.MarkdownReport = *cf.Markdown
	}
	if cf.JSON != nil {
		cfg.JSONReport = *cf.JSON
	}
	if cf.History != nil {
		cfg.SaveHistory = *cf.History
	}
}

// LoadConfigFile loads the configuration from a YAML file.
// Unknown keys are rejected so that typos do not go unnoticed.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers should handle this error appropriately based on whether
// the config file path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if len(bytes.TrimSpace(data)) == 0 {
		return &cf, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cf); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .sitemanifest in the current directory
// 3. Look for .sitemanifest in the user's home directory
// 4. Look for config.yaml in the XDG config directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	// If explicit path is provided, use it
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	return firstExisting(configCandidates())
}

// configCandidates returns the default configuration file locations in
// search order.
func configCandidates() []string {
	var candidates []string

	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, DefaultConfigFile))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, DefaultConfigFile))
	}

	return append(candidates, filepath.Join(XDGConfigDir(), XDGConfigFile))
}

// firstExisting returns the first path that exists, or "".
func firstExisting(paths []string) string {
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
