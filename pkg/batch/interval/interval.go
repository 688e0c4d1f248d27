package interval

import (
	"context"
	"time"

	"github.com/vnykmshr/batchflow/pkg/common/validation"
)

// Add reports n processed items against the current window.
func (il *intervalLimiter) Add(ctx context.Context, n int) error {
	if err := validation.ValidateNonNegative("interval", "n", n); err != nil {
		return err
	}

	// Check if context is already canceled
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	il.mu.Lock()
	il.count += n
	if il.count < il.limit {
		il.mu.Unlock()
		return nil
	}
	remaining := il.interval - il.clock.Now().Sub(il.windowStart)
	il.mu.Unlock()

	// The window may already have elapsed; a non-positive remainder
	// resets immediately without suspending.
	if remaining > 0 {
		timer := time.NewTimer(remaining)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
			// The count keeps the reported items so a retried Add
			// resumes the same window.
			return ctx.Err()
		}
	}

	il.mu.Lock()
	il.count = 0
	il.windowStart = il.clock.Now()
	il.mu.Unlock()
	return nil
}

// Count returns the number of items counted in the current window.
func (il *intervalLimiter) Count() int {
	il.mu.Lock()
	defer il.mu.Unlock()
	return il.count
}

// WindowStart returns the time the current window began.
func (il *intervalLimiter) WindowStart() time.Time {
	il.mu.Lock()
	defer il.mu.Unlock()
	return il.windowStart
}

// Limit returns the configured item limit per window.
func (il *intervalLimiter) Limit() int {
	return il.limit
}

// Interval returns the configured window length.
func (il *intervalLimiter) Interval() time.Duration {
	return il.interval
}

// Reset clears the count and starts a fresh window immediately.
func (il *intervalLimiter) Reset() {
	il.mu.Lock()
	defer il.mu.Unlock()
	il.count = 0
	il.windowStart = il.clock.Now()
}
