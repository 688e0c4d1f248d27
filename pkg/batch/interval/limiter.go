package interval

import (
	"context"
	"sync"
	"time"

	bferrors "github.com/vnykmshr/batchflow/pkg/common/errors"
	"github.com/vnykmshr/batchflow/pkg/common/validation"
)

// DefaultInterval is the window length used when Config.Interval is zero.
const DefaultInterval = time.Minute

// Clock provides the current time. It can be mocked for testing.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using the system time.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Limiter throttles work by counting items against a fixed time window.
// Callers report how many items they have processed via Add; once the
// count reaches the configured limit, Add suspends the caller until the
// window has elapsed, then starts a fresh window.
type Limiter interface {
	// Add reports n processed items. If the running count reaches the
	// limit, Add blocks until the window has elapsed since it started,
	// then resets the count and window. It returns an error only if the
	// context is canceled while waiting.
	Add(ctx context.Context, n int) error

	// Count returns the number of items counted in the current window.
	Count() int

	// WindowStart returns the time the current window began.
	WindowStart() time.Time

	// Limit returns the configured item limit per window.
	Limit() int

	// Interval returns the configured window length.
	Interval() time.Duration

	// Reset clears the count and starts a fresh window immediately.
	Reset()
}

// Config holds configuration options for creating a new Limiter.
type Config struct {
	// Limit is the number of items allowed per window. Must be positive.
	Limit int

	// Interval is the window length. If zero, DefaultInterval is used.
	Interval time.Duration

	// Clock provides the current time. If nil, SystemClock is used.
	Clock Clock
}

// intervalLimiter implements the Limiter interface. State is private to
// the instance; separate limiters never share a window.
type intervalLimiter struct {
	mu          sync.Mutex
	limit       int
	interval    time.Duration
	count       int
	windowStart time.Time
	clock       Clock
}

// New creates a new interval limiter allowing limit items per minute.
// It panics if limit is not positive; use NewWithConfig for an error
// instead of a panic.
func New(limit int) Limiter {
	if limit <= 0 {
		panic("limit must be positive")
	}

	lim, err := NewWithConfig(Config{Limit: limit})
	if err != nil {
		panic(err)
	}
	return lim
}

// NewWithConfig creates a new interval limiter with the specified
// configuration. This is the recommended constructor for production use.
func NewWithConfig(config Config) (Limiter, error) {
	if err := validation.ValidatePositive("interval", "limit", config.Limit); err != nil {
		return nil, err
	}
	if config.Interval < 0 {
		return nil, bferrors.NewValidationError("interval", "interval", config.Interval, "cannot be negative").
			WithHint("leave zero for the one minute default")
	}
	if config.Interval == 0 {
		config.Interval = DefaultInterval
	}
	if config.Clock == nil {
		config.Clock = SystemClock{}
	}

	return &intervalLimiter{
		limit:       config.Limit,
		interval:    config.Interval,
		windowStart: config.Clock.Now(),
		clock:       config.Clock,
	}, nil
}
