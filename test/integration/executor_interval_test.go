// Package integration contains integration tests that verify cross-package functionality.
// These tests ensure that different components work together correctly in realistic scenarios.
package integration

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/vnykmshr/batchflow/internal/testutil"
	"github.com/vnykmshr/batchflow/pkg/batch/executor"
	"github.com/vnykmshr/batchflow/pkg/batch/interval"
	"github.com/vnykmshr/batchflow/pkg/batch/poll"
)

// TestExecutorWithIntervalLimiter verifies that the executor paces chunk
// throughput against the limiter's window.
func TestExecutorWithIntervalLimiter(t *testing.T) {
	const window = 60 * time.Millisecond

	lim, err := interval.NewWithConfig(interval.Config{
		Limit:    4, // every second chunk of 2 hits the limit
		Interval: window,
	})
	testutil.AssertNoError(t, err)

	ctx, cancel := testutil.WithTimeout(t)
	defer cancel()

	items := []int{1, 2, 3, 4, 5, 6, 7, 8}
	start := time.Now()

	res, err := executor.RunAll(ctx, executor.Config[int]{
		Items:     items,
		ChunkSize: 2,
		Limiter:   lim.Add,
	}, func(ctx context.Context, item int) (int, error) {
		return item, nil
	})
	elapsed := time.Since(start)

	testutil.AssertNoError(t, err)
	testutil.AssertSliceEqual(t, res.Values, items)
	testutil.AssertEqual(t, len(res.Errors), 0)

	// Four chunks of two items against a 4-per-window budget: the run must
	// ride out two window resets.
	if elapsed < 2*window-20*time.Millisecond {
		t.Errorf("run finished in %v, want about %v of pacing", elapsed, 2*window)
	}
}

// TestExecutorChunkOrderingUnderLimiter verifies that pacing does not
// disturb cross-chunk ordering guarantees.
func TestExecutorChunkOrderingUnderLimiter(t *testing.T) {
	lim, err := interval.NewWithConfig(interval.Config{
		Limit:    3,
		Interval: 20 * time.Millisecond,
	})
	testutil.AssertNoError(t, err)

	ctx, cancel := testutil.WithTimeout(t)
	defer cancel()

	var mu sync.Mutex
	var order []int

	items := make([]int, 12)
	for i := range items {
		items[i] = i
	}

	res, err := executor.RunAll(ctx, executor.Config[int]{
		Items:     items,
		ChunkSize: 3,
		Limiter:   lim.Add,
	}, func(ctx context.Context, item int) (int, error) {
		mu.Lock()
		order = append(order, item)
		mu.Unlock()
		return item, nil
	})

	testutil.AssertNoError(t, err)
	testutil.AssertSliceEqual(t, res.Values, items)

	// Within a chunk execution order is free, but chunks never interleave.
	mu.Lock()
	defer mu.Unlock()
	for i, item := range order {
		if item/3 != i/3 {
			t.Fatalf("item %d executed in wave %d", item, i/3)
		}
	}
}

// TestPollForExecutorCompletion polls for a condition produced by a
// background executor run.
func TestPollForExecutorCompletion(t *testing.T) {
	ctx, cancel := testutil.WithTimeout(t)
	defer cancel()

	var mu sync.Mutex
	processed := 0

	go func() {
		_, _ = executor.RunAll(ctx, executor.Config[int]{
			Items:     []int{1, 2, 3, 4, 5},
			ChunkSize: 1,
		}, func(ctx context.Context, item int) (int, error) {
			time.Sleep(10 * time.Millisecond)
			mu.Lock()
			processed++
			mu.Unlock()
			return item, nil
		})
	}()

	total, err := poll.Run(ctx, poll.Config{Interval: 10 * time.Millisecond}, func(ctx context.Context, attempt int) (int, bool, error) {
		mu.Lock()
		defer mu.Unlock()
		return processed, processed == 5, nil
	})

	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, total, 5)
}
