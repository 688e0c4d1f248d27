package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vnykmshr/batchflow/pkg/batch/poll"
)

var (
	awaitInterval    time.Duration
	awaitMaxAttempts int
	awaitCron        string
)

var awaitCmd = &cobra.Command{
	Use:   "await <path>",
	Short: "Block until a path exists",
	Long: `Poll the filesystem until the given path exists. Exits zero once the
path appears, or non-zero when the attempt budget is exhausted.`,
	Args: cobra.ExactArgs(1),
	RunE: awaitPath,
}

func init() {
	awaitCmd.Flags().DurationVarP(&awaitInterval, "interval", "i", 2*time.Second, "pause between checks")
	awaitCmd.Flags().IntVarP(&awaitMaxAttempts, "max-attempts", "n", 0, "attempt budget, 0 = unlimited")
	awaitCmd.Flags().StringVar(&awaitCron, "cron", "", "cron expression replacing the fixed interval")
	rootCmd.AddCommand(awaitCmd)
}

func awaitPath(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	path := args[0]

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	info, err := poll.Run(ctx, poll.Config{
		Interval:    awaitInterval,
		MaxAttempts: awaitMaxAttempts,
		Cron:        awaitCron,
	}, func(ctx context.Context, attempt int) (os.FileInfo, bool, error) {
		fi, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				logger.Info("not yet", "path", path, "attempt", attempt)
				return nil, false, nil
			}
			return nil, false, err
		}
		return fi, true, nil
	})
	if err != nil {
		return fmt.Errorf("await %s: %w", path, err)
	}

	fmt.Printf("%s (%d bytes)\n", path, info.Size())
	return nil
}
