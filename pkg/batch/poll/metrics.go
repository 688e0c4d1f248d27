package poll

import (
	"context"
	"time"

	"github.com/vnykmshr/batchflow/pkg/metrics"
)

// RunWithMetrics behaves like Run while recording attempt counts, outcome
// counters, and total duration to the given metrics registry under name.
// If registry is nil, metrics.DefaultRegistry is used.
func RunWithMetrics[R any](ctx context.Context, config Config, name string, registry *metrics.Registry, task Task[R]) (R, error) {
	if registry == nil {
		registry = metrics.DefaultRegistry
	}

	wrapped := func(ctx context.Context, attempt int) (R, bool, error) {
		registry.PollAttempts.WithLabelValues(name).Inc()
		return task(ctx, attempt)
	}

	start := time.Now()
	result, err := Run(ctx, config, wrapped)
	registry.PollDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())

	if err != nil {
		registry.PollFailures.WithLabelValues(name).Inc()
	} else {
		registry.PollSuccesses.WithLabelValues(name).Inc()
	}
	return result, err
}
