package interval

import (
	"context"
	"testing"
	"time"

	"github.com/vnykmshr/batchflow/internal/testutil"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		panic bool
	}{
		{"valid limit", 10, false},
		{"zero limit", 0, true},
		{"negative limit", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.panic {
				defer func() {
					if r := recover(); r == nil {
						t.Error("expected panic")
					}
				}()
			}

			lim := New(tt.limit)
			if !tt.panic {
				testutil.AssertEqual(t, lim.Limit(), tt.limit)
				testutil.AssertEqual(t, lim.Interval(), DefaultInterval)
				testutil.AssertEqual(t, lim.Count(), 0)
			}
		})
	}
}

func TestNewWithConfig(t *testing.T) {
	if _, err := NewWithConfig(Config{Limit: 0}); err == nil {
		t.Error("zero limit should fail")
	}
	if _, err := NewWithConfig(Config{Limit: 5, Interval: -time.Second}); err == nil {
		t.Error("negative interval should fail")
	}

	lim, err := NewWithConfig(Config{Limit: 5, Interval: 10 * time.Second})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, lim.Interval(), 10*time.Second)
}

func TestAddBelowLimit(t *testing.T) {
	lim, err := NewWithConfig(Config{Limit: 10, Interval: time.Minute})
	testutil.AssertNoError(t, err)

	ctx, cancel := testutil.WithTimeout(t)
	defer cancel()

	// Adds below the limit return without suspending.
	start := time.Now()
	for i := 0; i < 9; i++ {
		testutil.AssertNoError(t, lim.Add(ctx, 1))
	}
	if time.Since(start) > 100*time.Millisecond {
		t.Error("Add below the limit should not block")
	}
	testutil.AssertEqual(t, lim.Count(), 9)
}

func TestAddReachesLimit(t *testing.T) {
	const window = 80 * time.Millisecond

	lim, err := NewWithConfig(Config{Limit: 3, Interval: window})
	testutil.AssertNoError(t, err)

	ctx, cancel := testutil.WithTimeout(t)
	defer cancel()

	firstWindow := lim.WindowStart()

	// Two full cycles: the third Add in each must suspend for the window
	// remainder, then reset.
	for cycle := 0; cycle < 2; cycle++ {
		start := time.Now()
		for i := 0; i < 3; i++ {
			testutil.AssertNoError(t, lim.Add(ctx, 1))
		}
		elapsed := time.Since(start)

		if elapsed < window-20*time.Millisecond {
			t.Errorf("cycle %d: limiter resumed after %v, want about %v", cycle, elapsed, window)
		}
		testutil.AssertEqual(t, lim.Count(), 0)
	}

	if !lim.WindowStart().After(firstWindow) {
		t.Error("window start should advance after reset")
	}
}

func TestAddElapsedWindow(t *testing.T) {
	clock := testutil.NewMockClock(time.Now())
	lim, err := NewWithConfig(Config{Limit: 2, Interval: time.Minute, Clock: clock})
	testutil.AssertNoError(t, err)

	ctx, cancel := testutil.WithTimeout(t)
	defer cancel()

	// The window already elapsed before the limit was hit, so the reset
	// is immediate.
	clock.Advance(2 * time.Minute)

	start := time.Now()
	testutil.AssertNoError(t, lim.Add(ctx, 2))
	if time.Since(start) > 100*time.Millisecond {
		t.Error("elapsed window should reset without suspending")
	}
	testutil.AssertEqual(t, lim.Count(), 0)
}

func TestAddContextCanceled(t *testing.T) {
	lim := New(1) // one minute window

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	err := lim.Add(ctx, 1)
	testutil.AssertError(t, err)
	testutil.AssertEqual(t, err, context.DeadlineExceeded)

	// The reported items survive the canceled wait.
	testutil.AssertEqual(t, lim.Count(), 1)
}

func TestAddNegative(t *testing.T) {
	lim := New(5)

	ctx, cancel := testutil.WithTimeout(t)
	defer cancel()

	testutil.AssertError(t, lim.Add(ctx, -1))
}

func TestReset(t *testing.T) {
	clock := testutil.NewMockClock(time.Now())
	lim, err := NewWithConfig(Config{Limit: 10, Interval: time.Minute, Clock: clock})
	testutil.AssertNoError(t, err)

	ctx, cancel := testutil.WithTimeout(t)
	defer cancel()

	testutil.AssertNoError(t, lim.Add(ctx, 4))
	testutil.AssertEqual(t, lim.Count(), 4)

	clock.Advance(10 * time.Second)
	lim.Reset()

	testutil.AssertEqual(t, lim.Count(), 0)
	testutil.AssertEqual(t, lim.WindowStart(), clock.Now())
}
