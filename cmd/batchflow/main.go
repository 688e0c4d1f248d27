// Package main is the entry point for the batchflow CLI.
//
// The CLI wraps the batchflow library for shell use: "run" drives a file
// of work items through the chunked executor, and "await" polls for a
// path to appear.
//
// Usage:
//
//	batchflow run -c config.yaml input.txt # checksum lines with bounded concurrency
//	batchflow await /tmp/ready             # block until the path exists
//	batchflow version                      # show version info
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
)

var rootCmd = &cobra.Command{
	Use:   "batchflow",
	Short: "Bounded-concurrency batch execution from the shell",
	Long: `batchflow drives batches of work with bounded concurrency, pacing
chunks against a configurable items-per-window budget.

Quick start:
  1. Create a config file (batchflow.yaml)
  2. Run: batchflow run -c batchflow.yaml input.txt`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("batchflow %s (%s)\n", version, commit)
	},
}

// newLogger creates a JSON logger for CLI use.
func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
