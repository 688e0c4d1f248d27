package chunk

import (
	"errors"
	"testing"

	"github.com/vnykmshr/batchflow/internal/testutil"
	bferrors "github.com/vnykmshr/batchflow/pkg/common/errors"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		items []int
		size  int
		want  [][]int
	}{
		{"even split", []int{1, 2, 3, 4}, 2, [][]int{{1, 2}, {3, 4}}},
		{"uneven split", []int{1, 2, 3, 4, 5}, 2, [][]int{{1, 2}, {3, 4}, {5}}},
		{"size one", []int{1, 2, 3}, 1, [][]int{{1}, {2}, {3}}},
		{"size larger than input", []int{1, 2}, 10, [][]int{{1, 2}}},
		{"size equals input", []int{1, 2, 3}, 3, [][]int{{1, 2, 3}}},
		{"all", []int{1, 2, 3}, All, [][]int{{1, 2, 3}}},
		{"empty input", []int{}, 3, [][]int{}},
		{"nil input", nil, 3, [][]int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.items, tt.size)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, len(got), len(tt.want))
			for i := range got {
				testutil.AssertSliceEqual(t, got[i], tt.want[i])
			}
		})
	}
}

func TestSplitInvalidSize(t *testing.T) {
	for _, size := range []int{0, -1, -100} {
		_, err := Split([]int{1, 2, 3}, size)
		testutil.AssertError(t, err)
		if !errors.Is(err, bferrors.ErrInvalidConfiguration) {
			t.Errorf("size %d: error should match ErrInvalidConfiguration, got %v", size, err)
		}
	}
}

func TestSplitRoundTrip(t *testing.T) {
	items := make([]int, 37)
	for i := range items {
		items[i] = i
	}

	for _, size := range []int{1, 2, 5, 7, 36, 37, 100} {
		chunks, err := Split(items, size)
		testutil.AssertNoError(t, err)

		var rejoined []int
		for i, c := range chunks {
			if len(c) == 0 {
				t.Fatalf("size %d: chunk %d is empty", size, i)
			}
			if i < len(chunks)-1 && len(c) != size {
				t.Fatalf("size %d: chunk %d has %d elements", size, i, len(c))
			}
			rejoined = append(rejoined, c...)
		}
		testutil.AssertSliceEqual(t, rejoined, items)
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		length, size, want int
	}{
		{0, 3, 0},
		{1, 3, 1},
		{6, 3, 2},
		{7, 3, 3},
		{5, All, 1},
	}

	for _, tt := range tests {
		got, err := Count(tt.length, tt.size)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, got, tt.want)
	}

	if _, err := Count(5, 0); err == nil {
		t.Error("zero size should fail")
	}
}
