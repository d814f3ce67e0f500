package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/nao1215/sitemanifest/internal/catalog"
	"github.com/nao1215/sitemanifest/internal/config"
	"github.com/nao1215/sitemanifest/internal/database"
	"github.com/nao1215/sitemanifest/internal/model"
	"github.com/nao1215/sitemanifest/internal/report"
)

// errDrift is returned by history --verify when a document no longer
// matches what was last recorded.
var errDrift = errors.New("generated documents differ from the recorded run")

// historyDateLayout is how run start times are listed.
const historyDateLayout = "2006-01-02 15:04:05"

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded runs or verify the written documents",
		Long: `History lists the generation runs recorded in the history database.

With --run it shows the files written by one run, as JSON with --json.
With --verify it renders every document in memory and compares it with the
digest recorded by the latest run that wrote it (or by the run given with
--run), and checks the file on disk as well.

Examples:
  # List the 10 most recent runs
  sitemanifest history

  # Show the files of one run
  sitemanifest history --run 1b4e28ba-2fa1-11d2-883f-0016d3cca427

  # Check the documents for drift
  sitemanifest history --verify

  # Check the documents against one run
  sitemanifest history --verify --run 1b4e28ba-2fa1-11d2-883f-0016d3cca427`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("limit", "n", 10, "Maximum number of runs to list (0 for all)")
	cmd.Flags().String("run", "", "Show the artifacts of the run with this ID")
	cmd.Flags().Bool("verify", false, "Compare freshly rendered documents with the latest recorded digests")
	cmd.Flags().BoolP("json", "j", false, "Print the run given with --run as JSON")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .sitemanifest in current or home directory, then XDG config.yaml)")
	cmd.Flags().String("db-dir", "",
		"Directory of the history database (default: XDG data directory)")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	logger := setupLogger(cmd)

	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	runID, err := cmd.Flags().GetString("run")
	if err != nil {
		return err
	}
	verify, err := cmd.Flags().GetBool("verify")
	if err != nil {
		return err
	}
	jsonOutput, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	if jsonOutput && (runID == "" || verify) {
		return errors.New("--json requires --run and cannot be combined with --verify")
	}

	out := cmd.OutOrStdout()

	// Reading the history never creates the database.
	if _, err := os.Stat(filepath.Join(cfg.DBDir, database.FileName)); os.IsNotExist(err) {
		fmt.Fprintln(out, "No runs recorded yet.")
		if verify {
			return errDrift
		}
		return nil
	}

	opts := database.DefaultOptions()
	opts.CreateIfNotExists = false
	db, err := database.Open(cfg.DBDir, opts)
	if err != nil {
		return err
	}
	defer db.Close()
	logger.Debug("opened history", "db", db.Path())

	ctx := cmd.Context()
	switch {
	case verify:
		lookup, err := recordedArtifacts(ctx, db, runID)
		if err != nil {
			return err
		}
		return verifyDocuments(lookup, cfg, out)
	case runID != "":
		return showRun(ctx, db, runID, jsonOutput, out)
	default:
		return listRuns(ctx, db, limit, out)
	}
}

// listRuns prints the most recent runs.
func listRuns(ctx context.Context, db *database.HistoryDB, limit int, out io.Writer) error {
	runs, err := db.ListRuns(ctx, limit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "Recorded runs (%d):\n\n", len(runs))
	fmt.Fprintf(out, "  %-36s  %-19s  %-5s  %s\n", "ID", "Started", "Files", "Output")
	for _, r := range runs {
		fmt.Fprintf(out, "  %-36s  %-19s  %-5d  %s\n",
			r.ID,
			r.StartedAt.In(time.Local).Format(historyDateLayout),
			r.ArtifactCount,
			r.OutputDir,
		)
	}
	return nil
}

// showRun prints the artifacts of a single run.
func showRun(ctx context.Context, db *database.HistoryDB, runID string, jsonOutput bool, out io.Writer) error {
	run, err := db.GetRun(ctx, runID)
	if err != nil {
		return err
	}

	if jsonOutput {
		_, err := report.NewJSONWriter(out, report.WithPrettyPrint()).WriteRun(run)
		return err
	}

	fmt.Fprintf(out, "Run %s\n", run.ID)
	fmt.Fprintf(out, "Started: %s\n", run.StartedAt.In(time.Local).Format(historyDateLayout))
	fmt.Fprintf(out, "Output:  %s\n\n", run.OutputDir)
	for _, a := range run.Artifacts {
		fmt.Fprintf(out, "  %-32s  %8d bytes  sha3-256:%s\n", a.Name, a.Bytes, a.Digest)
	}
	return nil
}

// verifyStatus describes how a document compares with the history.
type verifyStatus string

const (
	statusOK          verifyStatus = "ok"
	statusNotRecorded verifyStatus = "not recorded"
	statusDrift       verifyStatus = "drift"
	statusMissing     verifyStatus = "file missing"
	statusModified    verifyStatus = "file modified"
)

// verifyDocument compares the rendered content of one document with its
// recorded artifact and with the recorded file on disk.
func verifyDocument(content []byte, recorded model.Artifact, found bool) verifyStatus {
	if !found {
		return statusNotRecorded
	}
	if model.Digest(content) != recorded.Digest {
		return statusDrift
	}

	onDisk, err := os.ReadFile(recorded.Path)
	if err != nil {
		return statusMissing
	}
	if model.Digest(onDisk) != recorded.Digest {
		return statusModified
	}
	return statusOK
}

// artifactLookup returns the recorded artifact a document is compared with.
type artifactLookup func(name string) (model.Artifact, bool)

// recordedArtifacts returns the artifacts of runID, or the latest artifact
// per file name when runID is empty.
func recordedArtifacts(ctx context.Context, db *database.HistoryDB, runID string) (artifactLookup, error) {
	if runID != "" {
		run, err := db.GetRun(ctx, runID)
		if err != nil {
			return nil, err
		}
		return run.Artifact, nil
	}

	latest, err := db.LatestArtifacts(ctx)
	if err != nil {
		return nil, err
	}
	return func(name string) (model.Artifact, bool) {
		a, ok := latest[name]
		return a, ok
	}, nil
}

// verifyDocuments renders every enabled document and reports its status.
func verifyDocuments(lookup artifactLookup, cfg *config.Config, out io.Writer) error {
	p, err := catalog.Load()
	if err != nil {
		return err
	}

	failed := false
	for _, g := range newGenerators(cfg, p, targetAll, io.Discard, slog.Default()) {
		content, err := g.Render()
		if err != nil {
			return fmt.Errorf("failed to render %s: %w", g.FileName(), err)
		}

		recorded, found := lookup(g.FileName())
		status := verifyDocument(content, recorded, found)
		if status != statusOK {
			failed = true
		}
		fmt.Fprintf(out, "  %-32s  %s\n", g.FileName(), status)
	}

	if failed {
		return errDrift
	}
	fmt.Fprintln(out, "\nAll documents match the recorded run.")
	return nil
}
