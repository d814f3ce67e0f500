package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nao1215/sitemanifest/internal/config"
	"github.com/nao1215/sitemanifest/internal/database"
	"github.com/nao1215/sitemanifest/internal/model"
)

func TestHistoryCmd(t *testing.T) {
	t.Parallel()

	t.Run("empty history", func(t *testing.T) {
		t.Parallel()

		dbDir := filepath.Join(t.TempDir(), "db")
		output, err := executeCommand(t, "history", "--db-dir", dbDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(output, "No runs recorded yet.") {
			t.Errorf("unexpected output: %q", output)
		}
		if _, err := os.Stat(dbDir); !os.IsNotExist(err) {
			t.Error("expected history not to create the database")
		}
	})

	t.Run("lists and verifies a recorded run", func(t *testing.T) {
		t.Parallel()

		outDir := t.TempDir()
		dbDir := t.TempDir()

		if _, err := executeCommand(t, "generate", "-o", outDir, "--db-dir", dbDir); err != nil {
			t.Fatalf("generate failed: %v", err)
		}

		output, err := executeCommand(t, "history", "--db-dir", dbDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(output, "Recorded runs (1):") {
			t.Errorf("expected one recorded run, got %q", output)
		}
		if !strings.Contains(output, outDir) {
			t.Errorf("expected output dir in listing, got %q", output)
		}

		output, err = executeCommand(t, "history", "--db-dir", dbDir, "--verify")
		if err != nil {
			t.Fatalf("expected documents to verify: %v\n%s", err, output)
		}
		if !strings.Contains(output, "All documents match the recorded run.") {
			t.Errorf("unexpected verify output: %q", output)
		}

		inventory := filepath.Join(outDir, config.DefaultInventoryFile)
		if err := os.WriteFile(inventory, []byte("edited"), 0o644); err != nil {
			t.Fatalf("failed to modify inventory: %v", err)
		}

		output, err = executeCommand(t, "history", "--db-dir", dbDir, "--verify")
		if !errors.Is(err, errDrift) {
			t.Errorf("expected errDrift, got %v", err)
		}
		if !strings.Contains(output, string(statusModified)) {
			t.Errorf("expected modified status, got %q", output)
		}
	})

	t.Run("unknown run", func(t *testing.T) {
		t.Parallel()

		outDir := t.TempDir()
		dbDir := t.TempDir()
		if _, err := executeCommand(t, "delivery", "-o", outDir, "--db-dir", dbDir); err != nil {
			t.Fatalf("delivery failed: %v", err)
		}

		if _, err := executeCommand(t, "history", "--db-dir", dbDir, "--run", "no-such-run"); err == nil {
			t.Error("expected error for unknown run")
		}
	})
}

// recordedRuns returns the runs in dbDir, newest first.
func recordedRuns(t *testing.T, dbDir string) []database.RunSummary {
	t.Helper()

	db, err := database.Open(dbDir, database.DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open history: %v", err)
	}
	defer db.Close()

	runs, err := db.ListRuns(context.Background(), 0)
	if err != nil {
		t.Fatalf("failed to list runs: %v", err)
	}
	return runs
}

func TestHistoryRunDetails(t *testing.T) {
	t.Parallel()

	outDir := t.TempDir()
	dbDir := t.TempDir()

	if _, err := executeCommand(t, "inventory", "-o", outDir, "--db-dir", dbDir); err != nil {
		t.Fatalf("inventory failed: %v", err)
	}
	if _, err := executeCommand(t, "generate", "-o", outDir, "--db-dir", dbDir); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	runs := recordedRuns(t, dbDir)
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	newest, oldest := runs[0], runs[1]

	t.Run("prints a run as JSON", func(t *testing.T) {
		t.Parallel()

		output, err := executeCommand(t, "history", "--db-dir", dbDir, "--run", newest.ID, "--json")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var run model.Run
		if err := json.Unmarshal([]byte(output), &run); err != nil {
			t.Fatalf("failed to decode run: %v\n%s", err, output)
		}
		if run.ID != newest.ID {
			t.Errorf("expected run %s, got %s", newest.ID, run.ID)
		}
		if len(run.Artifacts) != 2 {
			t.Fatalf("expected 2 artifacts, got %d", len(run.Artifacts))
		}
		if want := filepath.Join(outDir, config.DefaultInventoryFile); run.Artifacts[0].Path != want {
			t.Errorf("expected path %s, got %s", want, run.Artifacts[0].Path)
		}
	})

	t.Run("JSON needs a run", func(t *testing.T) {
		t.Parallel()

		if _, err := executeCommand(t, "history", "--db-dir", dbDir, "--json"); err == nil {
			t.Error("expected error for --json without --run")
		}
	})

	t.Run("verifies against a given run", func(t *testing.T) {
		t.Parallel()

		output, err := executeCommand(t, "history", "--db-dir", dbDir, "--verify", "--run", oldest.ID)
		if !errors.Is(err, errDrift) {
			t.Errorf("expected errDrift, got %v", err)
		}
		if !strings.Contains(output, string(statusNotRecorded)) {
			t.Errorf("expected the delivery summary to be unrecorded in the older run, got %q", output)
		}

		if _, err := executeCommand(t, "history", "--db-dir", dbDir, "--verify", "--run", newest.ID); err != nil {
			t.Errorf("expected newest run to verify: %v", err)
		}
	})
}

// TestHistoryRelativeOutputDir changes the working directory, so it must not
// run in parallel.
func TestHistoryRelativeOutputDir(t *testing.T) {
	genDir := t.TempDir()
	otherDir := t.TempDir()
	dbDir := t.TempDir()

	t.Chdir(genDir)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}

	if _, err := executeCommand(t, "generate", "--db-dir", dbDir); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	runs := recordedRuns(t, dbDir)
	if len(runs) != 1 || runs[0].OutputDir != wd {
		t.Fatalf("expected one run recorded with output dir %s, got %+v", wd, runs)
	}

	t.Chdir(otherDir)
	output, err := executeCommand(t, "history", "--db-dir", dbDir, "--verify")
	if err != nil {
		t.Fatalf("expected documents to verify from another directory: %v\n%s", err, output)
	}
	if !strings.Contains(output, "All documents match the recorded run.") {
		t.Errorf("unexpected verify output: %q", output)
	}
}

func TestVerifyDocument(t *testing.T) {
	t.Parallel()

	content := []byte("document")
	dir := t.TempDir()

	write := func(t *testing.T, name string, data []byte) string {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
		return path
	}

	tests := []struct {
		name     string
		recorded model.Artifact
		found    bool
		want     verifyStatus
	}{
		{
			name:  "not recorded",
			found: false,
			want:  statusNotRecorded,
		},
		{
			name:     "drift",
			recorded: model.NewArtifact("a", write(t, "drift", []byte("old")), []byte("old")),
			found:    true,
			want:     statusDrift,
		},
		{
			name:     "missing",
			recorded: model.NewArtifact("a", filepath.Join(dir, "gone"), content),
			found:    true,
			want:     statusMissing,
		},
		{
			name: "modified",
			recorded: model.Artifact{
				Name:   "a",
				Path:   write(t, "modified", []byte("edited")),
				Digest: model.Digest(content),
			},
			found: true,
			want:  statusModified,
		},
		{
			name:     "ok",
			recorded: model.NewArtifact("a", write(t, "ok", content), content),
			found:    true,
			want:     statusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := verifyDocument(content, tt.recorded, tt.found); got != tt.want {
				t.Errorf("verifyDocument() = %q, want %q", got, tt.want)
			}
		})
	}
}
