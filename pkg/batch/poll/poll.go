package poll

import (
	"context"
	"errors"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/vnykmshr/batchflow/pkg/batch/interval"
	bferrors "github.com/vnykmshr/batchflow/pkg/common/errors"
	"github.com/vnykmshr/batchflow/pkg/common/validation"
)

// ErrMaxAttempts is returned by Run when MaxAttempts is reached without the
// task producing a result. It is distinct from task errors so callers can
// tell exhaustion apart from failure.
var ErrMaxAttempts = errors.New("max attempts reached")

// Task is one unit of polled work. It receives the zero-based attempt index
// and reports done=true when it has produced a result. Any value, including
// a zero value, is a valid result once done is true; done=false means "no
// result yet, poll again". A non-nil error stops the poll immediately.
type Task[R any] func(ctx context.Context, attempt int) (result R, done bool, err error)

// Config holds configuration options for a poll run.
type Config struct {
	// Interval is the pause between the completion of one attempt and the
	// start of the next. Required unless Cron is set.
	Interval time.Duration

	// StartDelay postpones the first attempt. Zero runs it immediately;
	// set it to Interval to hold the first attempt for one full interval.
	StartDelay time.Duration

	// MaxAttempts caps the number of task invocations. Zero means
	// unlimited. When the cap is reached without a result, Run returns
	// ErrMaxAttempts; the attempt past the cap is never invoked.
	MaxAttempts int

	// Cron, when set, replaces Interval: each attempt fires at the
	// schedule's next activation. Standard five-field expressions, an
	// optional seconds field, and descriptors such as "@hourly" are
	// accepted.
	Cron string

	// Clock provides the current time for schedule arithmetic.
	// If nil, interval.SystemClock is used.
	Clock interval.Clock
}

// cronParser accepts 5- and 6-field expressions plus @descriptors.
var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// Run invokes task repeatedly until it reports done, fails, or the attempt
// budget is exhausted. The first attempt runs immediately unless StartDelay
// or Cron defers it; each later attempt starts one cadence step after the
// previous attempt completed. A canceled ctx aborts the run at the next
// suspension point with ctx.Err().
func Run[R any](ctx context.Context, config Config, task Task[R]) (R, error) {
	var zero R

	if task == nil {
		return zero, bferrors.NewValidationError("poll", "task", nil, "cannot be nil").
			WithHint("provide a valid task")
	}
	if err := validation.ValidateNonNegative("poll", "maxAttempts", config.MaxAttempts); err != nil {
		return zero, err
	}
	if config.StartDelay < 0 {
		return zero, bferrors.NewValidationError("poll", "startDelay", config.StartDelay, "cannot be negative").
			WithHint("leave zero to start immediately")
	}

	var schedule cron.Schedule
	if config.Cron != "" {
		s, err := cronParser.Parse(config.Cron)
		if err != nil {
			return zero, bferrors.NewValidationError("poll", "cron", config.Cron, "invalid expression").
				WithHint(err.Error())
		}
		schedule = s
	} else if err := validation.ValidatePositiveDuration("poll", "interval", config.Interval); err != nil {
		return zero, err
	}

	clock := config.Clock
	if clock == nil {
		clock = interval.SystemClock{}
	}

	if config.StartDelay > 0 {
		if err := sleep(ctx, config.StartDelay); err != nil {
			return zero, err
		}
	} else if schedule != nil {
		// Cron cadence holds even the first attempt for the schedule.
		if err := sleep(ctx, untilNext(schedule, clock)); err != nil {
			return zero, err
		}
	}

	for attempt := 0; ; {
		result, done, err := task(ctx, attempt)
		if err != nil {
			return zero, err
		}
		if done {
			return result, nil
		}

		attempt++
		if config.MaxAttempts > 0 && attempt >= config.MaxAttempts {
			return zero, ErrMaxAttempts
		}

		pause := config.Interval
		if schedule != nil {
			pause = untilNext(schedule, clock)
		}
		if err := sleep(ctx, pause); err != nil {
			return zero, err
		}
	}
}

// untilNext returns the time until the schedule's next activation.
func untilNext(schedule cron.Schedule, clock interval.Clock) time.Duration {
	now := clock.Now()
	return schedule.Next(now).Sub(now)
}

// sleep suspends for d, honoring ctx cancellation.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
