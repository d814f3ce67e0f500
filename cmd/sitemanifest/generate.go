package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/sitemanifest/internal/catalog"
	"github.com/nao1215/sitemanifest/internal/config"
	"github.com/nao1215/sitemanifest/internal/database"
	"github.com/nao1215/sitemanifest/internal/model"
	"github.com/nao1215/sitemanifest/internal/pipeline"
)

// target selects the generators a command runs.
type target int

const (
	// targetAll runs the inventory, the delivery summary and the enabled exports.
	targetAll target = iota

	// targetInventory runs only the inventory generator.
	targetInventory

	// targetDelivery runs only the delivery summary generator.
	targetDelivery
)

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the inventory and the delivery summary",
		Long: `Generate writes website_files_inventory.csv and then DELIVERY_SUMMARY.txt,
printing the console summary of each.

Examples:
  # Write both documents into the current directory
  sitemanifest generate

  # Write into dist/ (the directory must exist)
  sitemanifest generate -o dist

  # Also export the inventory as Markdown and the catalog as JSON
  sitemanifest generate --markdown --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerateCmd(cmd, targetAll)
		},
	}

	addOutputFlags(cmd)
	cmd.Flags().BoolP("markdown", "m", false,
		"Also write the inventory as Markdown")
	cmd.Flags().BoolP("json", "j", false,
		"Also write the catalog as JSON")

	return cmd
}

// NewInventoryCmd creates the inventory command.
func NewInventoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Write only the CSV file inventory",
		Long:  `Inventory writes website_files_inventory.csv and prints the inventory summary.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerateCmd(cmd, targetInventory)
		},
	}
	addOutputFlags(cmd)
	return cmd
}

// NewDeliveryCmd creates the delivery command.
func NewDeliveryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delivery",
		Short: "Write only the delivery summary",
		Long:  `Delivery prints the delivery summary and saves it as DELIVERY_SUMMARY.txt.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerateCmd(cmd, targetDelivery)
		},
	}
	addOutputFlags(cmd)
	return cmd
}

// addOutputFlags registers the flags shared by every generating command.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output-dir", "o", config.DefaultOutputDir,
		"Directory to write the documents to (must exist)")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .sitemanifest in current or home directory, then XDG config.yaml)")
	cmd.Flags().Bool("no-history", false,
		"Do not record this run in the history database")
	cmd.Flags().String("db-dir", "",
		"Directory of the history database (default: XDG data directory)")
}

// runGenerateCmd executes one of the generating commands.
func runGenerateCmd(cmd *cobra.Command, t target) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runGenerate(ctx, cfg, t, cmd.OutOrStdout(), logger)
}

// buildConfig creates a Config from the configuration file and the flags.
// Flags given on the command line override values from the file.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	var err error
	cfg.ConfigFilePath, err = flags.GetString("config")
	if err != nil {
		return nil, err
	}

	// An explicitly named file must exist; the default locations are optional.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cf.Apply(cfg)
	} else if cfg.ConfigFilePath != "" {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	if flags.Changed("output-dir") {
		if cfg.OutputDir, err = flags.GetString("output-dir"); err != nil {
			return nil, err
		}
	}

	// Only generate has export flags; history uses --json for its own output.
	exports := cmd.Name() == "generate"

	if exports && flags.Changed("markdown") {
		if cfg.MarkdownReport, err = flags.GetBool("markdown"); err != nil {
			return nil, err
		}
	}

	if exports && flags.Changed("json") {
		if cfg.JSONReport, err = flags.GetBool("json"); err != nil {
			return nil, err
		}
	}

	if flags.Changed("no-history") {
		noHistory, err := flags.GetBool("no-history")
		if err != nil {
			return nil, err
		}
		cfg.SaveHistory = !noHistory
	}

	if flags.Changed("db-dir") {
		if cfg.DBDir, err = flags.GetString("db-dir"); err != nil {
			return nil, err
		}
	}

	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// newGenerators returns the generators selected by t, in execution order.
func newGenerators(cfg *config.Config, p *model.Project, t target, console io.Writer, logger *slog.Logger) []pipeline.Generator {
	opts := func(fileName string) []pipeline.StepOption {
		return []pipeline.StepOption{
			pipeline.WithFileName(fileName),
			pipeline.WithConsole(console),
			pipeline.WithStepLogger(logger),
		}
	}

	var gens []pipeline.Generator
	if t == targetAll || t == targetInventory {
		gens = append(gens, pipeline.NewInventoryStep(p, opts(cfg.InventoryFile)...))
	}
	if t == targetAll || t == targetDelivery {
		gens = append(gens, pipeline.NewDeliveryStep(p, opts(cfg.DeliveryFile)...))
	}
	if t == targetAll && cfg.MarkdownReport {
		gens = append(gens, pipeline.NewMarkdownStep(p, opts(cfg.MarkdownFile)...))
	}
	if t == targetAll && cfg.JSONReport {
		gens = append(gens, pipeline.NewJSONStep(p, opts(cfg.JSONFile)...))
	}
	return gens
}

// runGenerate executes the selected generators and records the run.
// A history failure is logged but never fails the run: the documents are
// already on disk.
func runGenerate(ctx context.Context, cfg *config.Config, t target, console io.Writer, logger *slog.Logger) error {
	p, err := catalog.Load()
	if err != nil {
		return err
	}

	pl := pipeline.New(pipeline.WithLogger(logger))
	for _, g := range newGenerators(cfg, p, t, console, logger) {
		pl.AddStep(g)
	}

	logger.Debug("starting run",
		"output_dir", cfg.OutputDir,
		"steps", pl.StepNames(),
	)

	// The history is shared by every working directory, so it records
	// absolute paths.
	outputDir, err := filepath.Abs(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to resolve output directory: %w", err)
	}

	run := model.NewRun(outputDir)
	runErr := pl.Execute(ctx, run)

	if cfg.SaveHistory && len(run.Artifacts) > 0 {
		if err := saveHistory(context.WithoutCancel(ctx), cfg.DBDir, run, logger); err != nil {
			logger.Warn("failed to record run in history",
				"db_dir", cfg.DBDir,
				"error", err,
			)
		}
	}

	return runErr
}

// saveHistory stores run in the history database under dbDir.
func saveHistory(ctx context.Context, dbDir string, run *model.Run, logger *slog.Logger) error {
	db, err := database.Open(dbDir, database.DefaultOptions())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.SaveRun(ctx, run); err != nil {
		return err
	}

	logger.Debug("run recorded",
		"run_id", run.ID,
		"artifacts", len(run.Artifacts),
		"db", db.Path(),
	)
	return nil
}
