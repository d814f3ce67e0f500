package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "sitemanifest"

	// DefaultOutputDir writes artifacts into the working directory.
	DefaultOutputDir = "."

	// DefaultInventoryFile is the file name of the CSV inventory.
	DefaultInventoryFile = "website_files_inventory.csv"

	// DefaultDeliveryFile is the file name of the delivery summary.
	DefaultDeliveryFile = "DELIVERY_SUMMARY.txt"

	// DefaultMarkdownFile is the file name of the Markdown inventory export.
	DefaultMarkdownFile = "website_files_inventory.md"

	// DefaultJSONFile is the file name of the JSON catalog export.
	DefaultJSONFile = "site_catalog.json"
)

// Config holds all configuration options for sitemanifest.
// It is populated from the configuration file and CLI flags and passed
// through the application rather than kept in global state.
type Config struct {
	// OutputDir is the directory artifacts are written to.
	// It must exist; it is never created.
	OutputDir string

	// InventoryFile is the file name of the CSV inventory.
	InventoryFile string

	// DeliveryFile is the file name of the delivery summary.
	DeliveryFile string

	// MarkdownFile is the file name of the Markdown export.
	MarkdownFile string

	// JSONFile is the file name of the JSON export.
	JSONFile string

	// MarkdownReport enables the Markdown inventory export.
	MarkdownReport bool

	// JSONReport enables the JSON catalog export.
	JSONReport bool

	// SaveHistory records each run and the digests of its artifacts in
	// the history database.
	SaveHistory bool

	// DBDir is the directory of the history database.
	// Defaults to XDG data directory (~/.local/share/sitemanifest on Linux).
	DBDir string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .sitemanifest in the current directory
	// and then in the user's home directory.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
// With the defaults a run writes exactly the inventory and the delivery
// summary into the working directory.
func NewConfig() *Config {
	return &Config{
		OutputDir:     DefaultOutputDir,
		InventoryFile: DefaultInventoryFile,
		DeliveryFile:  DefaultDeliveryFile,
		MarkdownFile:  DefaultMarkdownFile,
		JSONFile:      DefaultJSONFile,
		SaveHistory:   true,
		DBDir:         XDGDataDir(),
	}
}

// XDGDataDir returns the XDG data directory for sitemanifest.
// On Linux: ~/.local/share/sitemanifest
// On macOS: ~/Library/Application Support/sitemanifest
// On Windows: %LOCALAPPDATA%\sitemanifest
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for sitemanifest.
// On Linux: ~/.config/sitemanifest
// On macOS: ~/Library/Application Support/sitemanifest
// On Windows: %APPDATA%\sitemanifest
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// ArtifactFiles returns the file names of the artifacts a run writes,
// in generation order.
func (c *Config) ArtifactFiles() []string {
	files := []string{c.InventoryFile, c.DeliveryFile}
	if c.MarkdownReport {
		files = append(files, c.MarkdownFile)
	}
	if c.JSONReport {
		files = append(files, c.JSONFile)
	}
	return files
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return ErrEmptyOutputDir
	}

	seen := make(map[string]bool)
	for _, name := range c.ArtifactFiles() {
		if !validFileName(name) {
			return fmt.Errorf("%w: %q", ErrInvalidFileName, name)
		}
		if seen[name] {
			return fmt.Errorf("%w: %s", ErrDuplicateFileName, name)
		}
		seen[name] = true
	}

	if c.SaveHistory && c.DBDir == "" {
		return ErrEmptyDBDir
	}

	return nil
}

// validFileName reports whether name is a plain file name without any
// directory component.
func validFileName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}
