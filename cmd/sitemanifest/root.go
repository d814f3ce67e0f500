package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nao1215/sitemanifest/internal/log"
)

// NewRootCmd creates the root command for sitemanifest.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sitemanifest",
		Short: "Generate the delivery documents of the portfolio website",
		Long: `sitemanifest generates the delivery documents of the portfolio website:

  website_files_inventory.csv  catalog of every deliverable file
  DELIVERY_SUMMARY.txt         human readable handoff summary

The documents are derived from a catalog compiled into the binary; the
website files themselves are never read. Each run is recorded with the
digests of the files it wrote so later runs can detect drift.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewGenerateCmd())
	cmd.AddCommand(NewInventoryCmd())
	cmd.AddCommand(NewDeliveryCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates the process logger and installs it as the slog default.
func setupLogger(cmd *cobra.Command) *slog.Logger {
	logger := log.NewLogger(cmd.ErrOrStderr(), getVerboseFlag(cmd))
	slog.SetDefault(logger)
	return logger
}
