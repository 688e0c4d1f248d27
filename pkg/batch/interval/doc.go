/*
Package interval provides a fixed-window count throttle for pacing work.

Unlike a token bucket, the limiter does not sample the clock on its own:
callers report how many items they have processed, and once the reported
count reaches the limit the caller is suspended until the window has
elapsed, at which point the count and window reset.

Basic usage:

	lim := interval.New(100) // 100 items per minute

	for _, batch := range batches {
		process(batch)
		if err := lim.Add(ctx, len(batch)); err != nil {
			return err // context canceled while waiting
		}
	}

This shape pairs naturally with the executor package, which invokes a
limiter callback with each chunk's size after the chunk settles:

	res, err := executor.RunAll(ctx, executor.Config[Item]{
		Items:     items,
		ChunkSize: 10,
		Limiter:   lim.Add,
	}, task)

Configuration:

	lim, err := interval.NewWithConfig(interval.Config{
		Limit:    500,
		Interval: 30 * time.Second,
		Clock:    clock, // custom time source (for testing)
	})

Window semantics:

The window starts when the limiter is created (or at the last reset). When
Add pushes the count to the limit, the caller sleeps only for the remainder
of the window; if the window already elapsed, the reset is immediate. The
window restarts at the time the caller resumes, not at a fixed cadence.

State is private to each instance. Two limiters never share a window, and
all operations are safe for concurrent use.
*/
package interval
