package crawl

import (
	"context"
	"time"

	"github.com/fwojciec/nethys"
)

// DefaultRetryDelays returns the pauses before the second, third and fourth
// attempt of a fetch: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Permanent reports whether a fetch error will repeat on every attempt.
// Missing pages and pages without entry content are permanent.
func Permanent(err error) bool {
	switch nethys.ErrorCode(err) {
	case nethys.ENOTFOUND, nethys.EINVALID:
		return true
	}
	return false
}

// RetryFunc is called before a retry with the number of the attempt about to
// run, starting at 2, and the error that caused it.
type RetryFunc func(attempt int, err error)

// Retry runs op until it succeeds, fails permanently or len(delays) retries
// are used up, pausing delays[i] before retry i+1. The last error is returned.
func Retry[T any](ctx context.Context, delays []time.Duration, op func(context.Context) (T, error), onRetry RetryFunc) (T, error) {
	var zero T
	for attempt := 0; ; attempt++ {
		v, err := op(ctx)
		if err == nil {
			return v, nil
		}
		if Permanent(err) || attempt >= len(delays) {
			return zero, err
		}
		if ctx.Err() != nil {
			return zero, ctx.Err()
		}

		if onRetry != nil {
			onRetry(attempt+2, err)
		}

		timer := time.NewTimer(delays[attempt])
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		case <-timer.C:
		}
	}
}
