/*
Package executor drives a list of tasks through chunked, bounded-concurrency
execution.

The items are partitioned into chunks of at most ChunkSize elements; each
chunk's tasks run concurrently, and a chunk must fully settle before the
next one starts. That boundary is the backpressure mechanism: no more than
one chunk's worth of tasks is ever in flight.

Collect-all execution:

	res, err := executor.RunAll(ctx, executor.Config[string]{
		Items:     urls,
		ChunkSize: 10,
	}, func(ctx context.Context, url string) (*Page, error) {
		return fetch(ctx, url)
	})
	// err is nil even when individual fetches failed
	for _, page := range res.Returned {
		index(page)
	}
	if err := res.Err(); err != nil {
		log.Printf("some fetches failed:\n%v", err)
	}

RunAll never fails on a task error: every settlement is collected into the
Result, with Outcomes and Values in input order and Returned/Errors as
compacted survivor views. Task panics are recovered and reported as task
errors.

Fail-fast execution:

	values, err := executor.RunFailFast(ctx, executor.Config[int]{
		Items:     ids,
		ChunkSize: 5,
	}, load)

RunFailFast returns the first error once its chunk settles and starts no
further chunks.

Pacing:

Config.Limiter is called with the chunk's size after each chunk settles
and awaited before the next chunk starts. An interval.Limiter's Add method
plugs in directly, which throttles chunk throughput to a count-per-window
budget.

Tasks whose results are themselves slices can be expanded with Flatten:

	flat := executor.Flatten(res) // Result[[]R] -> Result[R]
*/
package executor
