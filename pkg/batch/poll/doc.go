// Package poll invokes a task repeatedly at a fixed cadence until it produces
// a result, fails, or exhausts its attempt budget.
//
// A task reports its outcome explicitly: done=true terminates the poll with
// the returned value, done=false asks for another attempt. Because the tag is
// explicit, zero values such as 0 or "" are ordinary results, not "keep
// polling" signals.
//
// Basic usage:
//
//	status, err := poll.Run(ctx, poll.Config{
//		Interval:    2 * time.Second,
//		MaxAttempts: 30,
//	}, func(ctx context.Context, attempt int) (string, bool, error) {
//		s, err := job.Status(ctx)
//		if err != nil {
//			return "", false, err // stops the poll
//		}
//		return s, s != "pending", nil
//	})
//
// Cadence:
//
// The first attempt runs immediately; set StartDelay to hold it back. Each
// subsequent attempt starts Interval after the previous attempt completed,
// so slow attempts stretch the cadence rather than overlapping. Exactly one
// attempt is in flight at any time.
//
// Termination:
//
//   - done=true: Run returns the task's value.
//   - task error: Run returns it immediately; there are no automatic retries
//     of failed attempts.
//   - MaxAttempts reached: Run returns ErrMaxAttempts. The attempt that would
//     exceed the cap is never invoked.
//   - ctx canceled: Run returns ctx.Err() at the next suspension point.
//
// Cron cadence:
//
// Setting Config.Cron replaces the fixed interval with a cron schedule
// (robfig/cron expressions, with an optional seconds field):
//
//	v, err := poll.Run(ctx, poll.Config{Cron: "*/5 * * * * *"}, check)
//
// Use RunWithMetrics to record attempts and outcomes to a metrics registry.
package poll
