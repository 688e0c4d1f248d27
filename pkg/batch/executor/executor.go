package executor

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/vnykmshr/batchflow/pkg/batch/chunk"
	bferrors "github.com/vnykmshr/batchflow/pkg/common/errors"
	"github.com/vnykmshr/batchflow/pkg/metrics"
)

// Task maps one input item to a result. Tasks within a chunk run
// concurrently, so a task must not mutate shared state without its own
// synchronization.
type Task[T, R any] func(ctx context.Context, item T) (R, error)

// Config holds the inputs and execution options shared by RunAll and
// RunFailFast.
type Config[T any] struct {
	// Items is the ordered work list. One task runs per item.
	Items []T

	// ChunkSize bounds concurrency: at most one chunk's worth of tasks is
	// in flight at a time, and a chunk must fully settle before the next
	// starts. Zero means no bound (a single chunk holding every item).
	ChunkSize int

	// Limiter, if set, is invoked with the chunk's size after each chunk
	// settles and is awaited before the next chunk starts. An interval
	// limiter's Add method has exactly this shape. RunFailFast does not
	// support a limiter.
	Limiter func(ctx context.Context, n int) error

	// Metrics, if set, receives task and chunk instrumentation under Name.
	Metrics *metrics.Registry

	// Name labels the metrics for this run. Defaults to "executor".
	Name string
}

// RunAll executes one task per item with chunk-bounded concurrency and
// collects every settlement. Task failures are captured in the result,
// never returned as the call error; the returned error is non-nil only
// for invalid configuration or a canceled context. Chunks run strictly
// in sequence, so the result preserves input order across chunks.
func RunAll[T, R any](ctx context.Context, config Config[T], task Task[T, R]) (Result[R], error) {
	chunks, name, err := prepare(config, task)
	if err != nil {
		return Result[R]{}, err
	}

	outcomes := make([]Outcome[R], len(config.Items))
	offset := 0
	for _, c := range chunks {
		select {
		case <-ctx.Done():
			return Result[R]{}, ctx.Err()
		default:
		}

		if config.Metrics != nil {
			config.Metrics.ChunksStarted.WithLabelValues(name).Inc()
			config.Metrics.ChunkSize.WithLabelValues(name).Observe(float64(len(c)))
		}

		runChunk(ctx, c, task, outcomes[offset:offset+len(c)], config.Metrics, name)
		offset += len(c)

		if config.Limiter != nil {
			if err := config.Limiter(ctx, len(c)); err != nil {
				return Result[R]{}, err
			}
		}
	}

	return collect(outcomes), nil
}

// RunFailFast executes one task per item with the same chunking as RunAll
// but aborts on the first failure: once a chunk settles with any error,
// that error is returned and no further chunks start. On success the
// returned slice holds every value in input order.
func RunFailFast[T, R any](ctx context.Context, config Config[T], task Task[T, R]) ([]R, error) {
	if config.Limiter != nil {
		return nil, bferrors.NewValidationError("executor", "limiter", config.Limiter, "not supported in fail-fast mode").
			WithHint("use RunAll to pace chunks with a limiter")
	}

	chunks, name, err := prepare(config, task)
	if err != nil {
		return nil, err
	}

	values := make([]R, len(config.Items))
	offset := 0
	for _, c := range chunks {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if config.Metrics != nil {
			config.Metrics.ChunksStarted.WithLabelValues(name).Inc()
			config.Metrics.ChunkSize.WithLabelValues(name).Observe(float64(len(c)))
		}

		outcomes := make([]Outcome[R], len(c))
		runChunk(ctx, c, task, outcomes, config.Metrics, name)

		for i, oc := range outcomes {
			if oc.Err != nil {
				return nil, oc.Err
			}
			values[offset+i] = oc.Value
		}
		offset += len(c)
	}

	return values, nil
}

// prepare validates shared configuration and partitions the items.
func prepare[T, R any](config Config[T], task Task[T, R]) ([][]T, string, error) {
	if task == nil {
		return nil, "", bferrors.NewValidationError("executor", "task", nil, "cannot be nil").
			WithHint("provide a valid task")
	}

	size := config.ChunkSize
	if size == 0 {
		size = chunk.All
	}
	chunks, err := chunk.Split(config.Items, size)
	if err != nil {
		return nil, "", err
	}

	name := config.Name
	if name == "" {
		name = "executor"
	}
	return chunks, name, nil
}

// runChunk launches every task in the chunk concurrently and waits for
// all of them to settle, writing outcomes into the provided slots.
func runChunk[T, R any](ctx context.Context, items []T, task Task[T, R], out []Outcome[R], reg *metrics.Registry, name string) {
	var wg sync.WaitGroup
	for i := range items {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out[i] = runTask(ctx, items[i], task, reg, name)
		}(i)
	}
	wg.Wait()
}

// runTask executes a single task, converting panics into task errors.
func runTask[T, R any](ctx context.Context, item T, task Task[T, R], reg *metrics.Registry, name string) (oc Outcome[R]) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			oc = Outcome[R]{Err: fmt.Errorf("task panicked: %v\nStack trace:\n%s", r, debug.Stack())}
		}

		if reg != nil {
			reg.TaskDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
			reg.TasksExecuted.WithLabelValues(name).Inc()
			if oc.Err != nil {
				reg.TasksFailed.WithLabelValues(name).Inc()
			} else {
				reg.TasksCompleted.WithLabelValues(name).Inc()
			}
		}
	}()

	value, err := task(ctx, item)
	if err != nil {
		return Outcome[R]{Err: err}
	}
	return Outcome[R]{Value: value}
}
