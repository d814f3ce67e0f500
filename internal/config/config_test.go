package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestNewConfig verifies that NewConfig returns a Config with all expected default values.
// Changes to defaults must be intentional: the defaults produce exactly
// the two documented artifacts in the working directory.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default OutputDir is the working directory", func(t *testing.T) {
		t.Parallel()
		if cfg.OutputDir != "." {
			t.Errorf("expected OutputDir to be '.', got '%s'", cfg.OutputDir)
		}
	})

	t.Run("default file names", func(t *testing.T) {
		t.Parallel()
		if cfg.InventoryFile != "website_files_inventory.csv" {
			t.Errorf("unexpected InventoryFile %q", cfg.InventoryFile)
		}
		if cfg.DeliveryFile != "DELIVERY_SUMMARY.txt" {
			t.Errorf("unexpected DeliveryFile %q", cfg.DeliveryFile)
		}
	})

	t.Run("exports are disabled", func(t *testing.T) {
		t.Parallel()
		if cfg.MarkdownReport || cfg.JSONReport {
			t.Error("expected exports to be disabled by default")
		}
		if got := cfg.ArtifactFiles(); len(got) != 2 {
			t.Errorf("expected 2 artifacts, got %v", got)
		}
	})

	t.Run("history is saved in the XDG data dir", func(t *testing.T) {
		t.Parallel()
		if !cfg.SaveHistory {
			t.Error("expected SaveHistory to be true")
		}
		if cfg.DBDir != XDGDataDir() {
			t.Errorf("expected DBDir %q, got %q", XDGDataDir(), cfg.DBDir)
		}
	})

	t.Run("defaults are valid", func(t *testing.T) {
		t.Parallel()
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})
}

// TestConfigValidate tests the configuration validation rules.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{
			name:   "exports enabled is valid",
			modify: func(c *Config) { c.MarkdownReport, c.JSONReport = true, true },
		},
		{
			name:    "empty output dir",
			modify:  func(c *Config) { c.OutputDir = "" },
			wantErr: ErrEmptyOutputDir,
		},
		{
			name:    "empty inventory file",
			modify:  func(c *Config) { c.InventoryFile = "" },
			wantErr: ErrInvalidFileName,
		},
		{
			name:    "file name with directory",
			modify:  func(c *Config) { c.DeliveryFile = "out/summary.txt" },
			wantErr: ErrInvalidFileName,
		},
		{
			name:    "parent directory as file name",
			modify:  func(c *Config) { c.DeliveryFile = ".." },
			wantErr: ErrInvalidFileName,
		},
		{
			name:    "same name for two artifacts",
			modify:  func(c *Config) { c.DeliveryFile = c.InventoryFile },
			wantErr: ErrDuplicateFileName,
		},
		{
			name: "disabled export may share a name",
			modify: func(c *Config) {
				c.MarkdownFile = c.InventoryFile
			},
		},
		{
			name: "enabled export may not share a name",
			modify: func(c *Config) {
				c.JSONReport = true
				c.JSONFile = c.DeliveryFile
			},
			wantErr: ErrDuplicateFileName,
		},
		{
			name:    "history without database dir",
			modify:  func(c *Config) { c.DBDir = "" },
			wantErr: ErrEmptyDBDir,
		},
		{
			name: "no history without database dir",
			modify: func(c *Config) {
				c.SaveHistory = false
				c.DBDir = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

// TestFileApply tests that configuration file values override defaults.
func TestFileApply(t *testing.T) {
	t.Parallel()

	t.Run("empty file changes nothing", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		(&File{}).Apply(cfg)

		if *cfg != *NewConfig() {
			t.Errorf("expected defaults, got %+v", cfg)
		}
	})

	t.Run("set values override", func(t *testing.T) {
		t.Parallel()

		yes, no := true, false
		cfg := NewConfig()
		(&File{
			OutputDir:     "dist",
			InventoryFile: "files.csv",
			DeliveryFile:  "summary.txt",
			Markdown:      &yes,
			JSON:          &yes,
			History:       &no,
		}).Apply(cfg)

		if cfg.OutputDir != "dist" {
			t.Errorf("expected OutputDir 'dist', got %q", cfg.OutputDir)
		}
		if cfg.InventoryFile != "files.csv" || cfg.DeliveryFile != "summary.txt" {
			t.Errorf("unexpected file names %q, %q", cfg.InventoryFile, cfg.DeliveryFile)
		}
		if !cfg.MarkdownReport || !cfg.JSONReport {
			t.Error("expected exports to be enabled")
		}
		if cfg.SaveHistory {
			t.Error("expected history to be disabled")
		}
	})
}

// TestLoadConfigFile tests loading the YAML configuration file.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("returns ErrConfigNotFound for non-existent file", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfigFile("/nonexistent/path/.sitemanifest")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("expected ErrConfigNotFound, got: %v", err)
		}
		if cfg != nil {
			t.Error("expected nil config when file not found")
		}
	})

	t.Run("loads valid YAML config", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), DefaultConfigFile)
		content := `outputDir: dist
inventoryFile: files.csv
markdown: true
history: false
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		cf, err := LoadConfigFile(configPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cf.OutputDir != "dist" {
			t.Errorf("expected outputDir 'dist', got %q", cf.OutputDir)
		}
		if cf.InventoryFile != "files.csv" {
			t.Errorf("expected inventoryFile 'files.csv', got %q", cf.InventoryFile)
		}
		if cf.Markdown == nil || !*cf.Markdown {
			t.Error("expected markdown to be true")
		}
		if cf.JSON != nil {
			t.Error("expected json to be unset")
		}
		if cf.History == nil || *cf.History {
			t.Error("expected history to be false")
		}
	})

	t.Run("empty file is valid", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(configPath, []byte("\n"), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		cf, err := LoadConfigFile(configPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cf.OutputDir != "" {
			t.Error("expected zero value file")
		}
	})

	t.Run("returns error for invalid YAML", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(configPath, []byte(`invalid: yaml: content: [}`), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if _, err := LoadConfigFile(configPath); err == nil {
			t.Error("expected error for invalid YAML")
		}
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(configPath, []byte("outputdir: dist\n"), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		_, err := LoadConfigFile(configPath)
		if err == nil || !strings.Contains(err.Error(), "outputdir") {
			t.Errorf("expected unknown key error, got %v", err)
		}
	})
}

// TestFindConfigFile tests the FindConfigFile function.
func TestFindConfigFile(t *testing.T) {
	t.Run("returns explicit path if exists", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "custom.yaml")

		if err := os.WriteFile(configPath, []byte("outputDir: ."), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		result := FindConfigFile(configPath)
		if result != configPath {
			t.Errorf("expected %q, got %q", configPath, result)
		}
	})

	t.Run("returns empty for non-existent explicit path", func(t *testing.T) {
		result := FindConfigFile("/nonexistent/path/config.yaml")
		if result != "" {
			t.Errorf("expected empty string, got %q", result)
		}
	})

	t.Run("finds file in current directory", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, DefaultConfigFile)
		if err := os.WriteFile(configPath, []byte("outputDir: ."), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}
		t.Chdir(dir)

		result := FindConfigFile("")
		if filepath.Base(result) != DefaultConfigFile {
			t.Errorf("expected %s to be found, got %q", DefaultConfigFile, result)
		}
	})
}

// TestXDGDirs tests XDG directory functions.
func TestXDGDirs(t *testing.T) {
	t.Parallel()

	t.Run("XDGDataDir ends with app name", func(t *testing.T) {
		t.Parallel()

		if dir := XDGDataDir(); filepath.Base(dir) != AppName {
			t.Errorf("expected %s data dir, got %q", AppName, dir)
		}
	})

	t.Run("XDGConfigDir ends with app name", func(t *testing.T) {
		t.Parallel()

		if dir := XDGConfigDir(); filepath.Base(dir) != AppName {
			t.Errorf("expected %s config dir, got %q", AppName, dir)
		}
	})
}

func TestConfigCandidates(t *testing.T) {
	t.Parallel()

	t.Run("XDG config file is searched last", func(t *testing.T) {
		t.Parallel()

		candidates := configCandidates()
		if len(candidates) == 0 {
			t.Fatal("expected candidates")
		}
		want := filepath.Join(XDGConfigDir(), XDGConfigFile)
		if got := candidates[len(candidates)-1]; got != want {
			t.Errorf("expected last candidate %q, got %q", want, got)
		}
		for _, c := range candidates[:len(candidates)-1] {
			if filepath.Base(c) != DefaultConfigFile {
				t.Errorf("expected %s, got %q", DefaultConfigFile, c)
			}
		}
	})

	t.Run("first existing path wins", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		missing := filepath.Join(dir, "missing.yaml")
		second := filepath.Join(dir, "second.yaml")
		third := filepath.Join(dir, "third.yaml")
		for _, path := range []string{second, third} {
			if err := os.WriteFile(path, nil, 0600); err != nil {
				t.Fatalf("failed to write %s: %v", path, err)
			}
		}

		if got := firstExisting([]string{missing, second, third}); got != second {
			t.Errorf("expected %q, got %q", second, got)
		}
		if got := firstExisting([]string{missing}); got != "" {
			t.Errorf("expected no match, got %q", got)
		}
	})
}
