/*
Package batchflow provides composable primitives for driving batches of
asynchronous tasks with bounded concurrency, inter-batch throttling, and
fixed-cadence polling.

Batch Execution (pkg/batch):
  - chunk: Order-preserving partitioning of slices into bounded chunks
  - executor: Chunked parallel execution with all-settled or fail-fast semantics
  - interval: Fixed-window count throttle for pacing work between chunks
  - poll: Repeated task invocation until a result is produced

Support:
  - metrics: Prometheus instrumentation for all components
  - common/errors, common/validation: shared error types and config validation

Example usage:

	import (
		"github.com/vnykmshr/batchflow/pkg/batch/executor"
		"github.com/vnykmshr/batchflow/pkg/batch/interval"
	)

	lim := interval.New(100) // 100 items per minute
	res, _ := executor.RunAll(ctx, executor.Config[string]{
		Items:     urls,
		ChunkSize: 10,
		Limiter:   lim.Add,
	}, fetch)

	if err := res.Err(); err != nil {
		// one or more tasks failed
	}
*/
package batchflow
