// Package retry provides a bounded call-with-retry primitive driven by an
// explicit policy.
package retry

import (
	"context"
	"time"
)

// Policy bounds a retried call. Delay before attempt n+1 is
// BaseDelay << (n-1): base, then 2x base, then 4x base.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Retryable   func(error) bool
}

// Sleep is the waiting function used between attempts. Tests inject a
// recording implementation to avoid real delays.
type Sleep func(ctx context.Context, d time.Duration) error

// DefaultSleep honors context cancellation while waiting.
func DefaultSleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// OnRetry is invoked before each re-attempt with the attempt number about to
// run (2..MaxAttempts) and the error that caused the retry.
type OnRetry func(attempt int, err error)

// Do runs fn up to p.MaxAttempts times. Non-retryable errors fail immediately
// without consuming further attempts. After attempts exhaust, the last
// observed error is returned.
func Do(ctx context.Context, p Policy, sleep Sleep, onRetry OnRetry, fn func(ctx context.Context) error) error {
	if p.MaxAttempts < 1 {
		p.MaxAttempts = 1
	}
	if sleep == nil {
		sleep = DefaultSleep
	}

	var err error
	for attempt := 1; ; attempt++ {
		err = fn(ctx)
		if err == nil {
			return nil
		}
		if attempt >= p.MaxAttempts {
			return err
		}
		if p.Retryable != nil && !p.Retryable(err) {
			return err
		}

		delay := p.BaseDelay << (attempt - 1)
		if serr := sleep(ctx, delay); serr != nil {
			return err
		}
		if onRetry != nil {
			onRetry(attempt+1, err)
		}
	}
}
