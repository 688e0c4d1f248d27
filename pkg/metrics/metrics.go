// Package metrics provides Prometheus instrumentation for batchflow components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for batchflow components.
type Registry struct {
	// Executor Metrics
	TasksExecuted  *prometheus.CounterVec
	TasksCompleted *prometheus.CounterVec
	TasksFailed    *prometheus.CounterVec
	TaskDuration   *prometheus.HistogramVec
	ChunksStarted  *prometheus.CounterVec
	ChunkSize      *prometheus.HistogramVec

	// Interval Limiter Metrics
	LimiterAdded        *prometheus.CounterVec
	LimiterWaits        *prometheus.CounterVec
	LimiterWaitDuration *prometheus.HistogramVec
	LimiterWindowCount  *prometheus.GaugeVec

	// Poll Metrics
	PollAttempts  *prometheus.CounterVec
	PollSuccesses *prometheus.CounterVec
	PollFailures  *prometheus.CounterVec
	PollDuration  *prometheus.HistogramVec
}

// DefaultRegistry is the default metrics registry used by batchflow components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		// Executor Metrics
		TasksExecuted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "batchflow",
				Subsystem: "executor",
				Name:      "tasks_executed_total",
				Help:      "Total number of tasks executed",
			},
			[]string{"executor_name"},
		),

		TasksCompleted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "batchflow",
				Subsystem: "executor",
				Name:      "tasks_completed_total",
				Help:      "Total number of tasks completed successfully",
			},
			[]string{"executor_name"},
		),

		TasksFailed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "batchflow",
				Subsystem: "executor",
				Name:      "tasks_failed_total",
				Help:      "Total number of tasks that failed",
			},
			[]string{"executor_name"},
		),

		TaskDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "batchflow",
				Subsystem: "executor",
				Name:      "task_duration_seconds",
				Help:      "Time spent executing tasks",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"executor_name"},
		),

		ChunksStarted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "batchflow",
				Subsystem: "executor",
				Name:      "chunks_started_total",
				Help:      "Total number of chunks started",
			},
			[]string{"executor_name"},
		),

		ChunkSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "batchflow",
				Subsystem: "executor",
				Name:      "chunk_size",
				Help:      "Number of tasks per executed chunk",
				Buckets:   []float64{1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
			},
			[]string{"executor_name"},
		),

		// Interval Limiter Metrics
		LimiterAdded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "batchflow",
				Subsystem: "interval",
				Name:      "items_added_total",
				Help:      "Total number of items reported to the limiter",
			},
			[]string{"limiter_name"},
		),

		LimiterWaits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "batchflow",
				Subsystem: "interval",
				Name:      "waits_total",
				Help:      "Total number of window suspensions",
			},
			[]string{"limiter_name"},
		),

		LimiterWaitDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "batchflow",
				Subsystem: "interval",
				Name:      "wait_duration_seconds",
				Help:      "Time spent suspended waiting for the window to elapse",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"limiter_name"},
		),

		LimiterWindowCount: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "batchflow",
				Subsystem: "interval",
				Name:      "window_count",
				Help:      "Items counted in the current window",
			},
			[]string{"limiter_name"},
		),

		// Poll Metrics
		PollAttempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "batchflow",
				Subsystem: "poll",
				Name:      "attempts_total",
				Help:      "Total number of poll attempts",
			},
			[]string{"poll_name"},
		),

		PollSuccesses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "batchflow",
				Subsystem: "poll",
				Name:      "successes_total",
				Help:      "Total number of polls that produced a result",
			},
			[]string{"poll_name"},
		),

		PollFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "batchflow",
				Subsystem: "poll",
				Name:      "failures_total",
				Help:      "Total number of polls that failed or exhausted attempts",
			},
			[]string{"poll_name"},
		),

		PollDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "batchflow",
				Subsystem: "poll",
				Name:      "duration_seconds",
				Help:      "Total time from first attempt to poll completion",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"poll_name"},
		),
	}
}
