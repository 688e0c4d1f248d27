/*
Package chunk partitions slices into contiguous, order-preserving chunks
of bounded size.

Basic usage:

	chunks, err := chunk.Split(items, 10)
	for _, c := range chunks {
		process(c)
	}

Guarantees:

  - Concatenating the chunks in order reproduces the input exactly.
  - Every chunk except possibly the last holds exactly size elements.
  - No chunk is ever empty; an empty input yields an empty result.

Chunks are subslices of the input, not copies, so callers must not mutate
the input while chunks are in use.

Use chunk.All as the size to place every item in a single chunk; the
executor package maps an unset chunk size to All for full concurrency.
*/
package chunk
