package main

import (
	"bufio"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vnykmshr/batchflow/pkg/batch/executor"
	"github.com/vnykmshr/batchflow/pkg/batch/interval"
)

var runConfigPath string

var runCmd = &cobra.Command{
	Use:   "run [input file]",
	Short: "Checksum the lines of a file with bounded concurrency",
	Long: `Read work items (one per line) from the input file, or stdin if no
file is given, and run them through the chunked executor. Each item is
hashed with SHA-256; failures never abort the run unless fail_fast is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	runCmd.Flags().StringVarP(&runConfigPath, "config", "c", "", "path to YAML config")
	rootCmd.AddCommand(runCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	runID := uuid.NewString()

	cfg, err := loadConfig(runConfigPath)
	if err != nil {
		return err
	}

	items, err := readItems(args)
	if err != nil {
		return err
	}

	logger.Info("starting run",
		"run_id", runID,
		"items", len(items),
		"chunk_size", cfg.ChunkSize,
		"fail_fast", cfg.FailFast,
	)

	execCfg := executor.Config[string]{
		Items:     items,
		ChunkSize: cfg.ChunkSize,
	}

	if cfg.Rate.Limit > 0 && !cfg.FailFast {
		lim, err := interval.NewWithConfig(interval.Config{
			Limit:    cfg.Rate.Limit,
			Interval: cfg.Rate.Interval,
		})
		if err != nil {
			return err
		}
		execCfg.Limiter = lim.Add
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	task := func(ctx context.Context, line string) (string, error) {
		sum := sha256.Sum256([]byte(line))
		return hex.EncodeToString(sum[:]), nil
	}

	if cfg.FailFast {
		digests, err := executor.RunFailFast(ctx, execCfg, task)
		if err != nil {
			return fmt.Errorf("run %s failed: %w", runID, err)
		}
		printDigests(items, digests)
		logger.Info("run complete", "run_id", runID, "processed", len(digests))
		return nil
	}

	res, err := executor.RunAll(ctx, execCfg, task)
	if err != nil {
		return fmt.Errorf("run %s failed: %w", runID, err)
	}

	printDigests(items, res.Values)
	logger.Info("run complete",
		"run_id", runID,
		"processed", len(res.Returned),
		"failed", len(res.Errors),
	)
	return res.Err()
}

// readItems loads work items from the named file, or stdin if none given.
func readItems(args []string) ([]string, error) {
	in := os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}

	var items []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			items = append(items, line)
		}
	}
	return items, scanner.Err()
}

func printDigests(items, digests []string) {
	for i, d := range digests {
		fmt.Printf("%s  %s\n", d, items[i])
	}
}
