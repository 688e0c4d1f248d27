package chunk

import (
	"math"

	"github.com/vnykmshr/batchflow/pkg/common/validation"
)

// All requests a single chunk containing every item, regardless of length.
const All = math.MaxInt

// Split partitions items into contiguous, order-preserving chunks of at
// most size elements. The final chunk may hold fewer than size elements;
// no chunk is ever empty. An empty input yields an empty result.
//
// Use All as the size to place every item in one chunk.
func Split[T any](items []T, size int) ([][]T, error) {
	if err := validation.ValidatePositive("chunk", "size", size); err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return [][]T{}, nil
	}

	if size >= len(items) {
		return [][]T{items}, nil
	}

	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[start:end])
	}
	return chunks, nil
}

// Count returns the number of chunks Split would produce for the given
// input length and size, without allocating them.
func Count(length, size int) (int, error) {
	if err := validation.ValidatePositive("chunk", "size", size); err != nil {
		return 0, err
	}
	if length <= 0 {
		return 0, nil
	}
	if size >= length {
		return 1, nil
	}
	return (length + size - 1) / size, nil
}
