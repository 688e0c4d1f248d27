/*
Package metrics provides Prometheus instrumentation for batchflow components.

Metrics are grouped by subsystem: executor (task and chunk counters,
durations), interval (window counts and wait durations), and poll (attempt
and outcome counters). All metrics live under the "batchflow" namespace.

Components accept a *Registry through their configuration; pass
metrics.DefaultRegistry to publish to the default Prometheus registerer,
or build an isolated registry for tests:

	reg := metrics.NewRegistry(prometheus.NewRegistry())
	lim := interval.NewWithMetrics(100, "ingest", reg)
*/
package metrics
