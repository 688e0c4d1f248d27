// Package batch contains batchflow's batch execution primitives.
//
// The packages compose from the bottom up: chunk partitions a work list,
// executor drives each partition's tasks concurrently with a settle-before-
// next-chunk boundary, interval paces chunk throughput against a fixed
// time window, and poll retries a single task at a cadence until it
// produces a result.
package batch
