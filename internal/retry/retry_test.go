package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"github.com/catalog-inventory/services/internal/retry"
)

var errBoom = errors.New("boom")

func recordingSleep(delays *[]time.Duration) retry.Sleep {
	return func(_ context.Context, d time.Duration) error {
		*delays = append(*delays, d)
		return nil
	}
}

func TestDoSucceedsFirstAttempt(t *testing.T) {
	c := qt.New(t)

	calls := 0
	var delays []time.Duration
	err := retry.Do(context.Background(), retry.Policy{MaxAttempts: 3, BaseDelay: time.Millisecond},
		recordingSleep(&delays), nil, func(context.Context) error {
			calls++
			return nil
		})

	c.Assert(err, qt.IsNil)
	c.Assert(calls, qt.Equals, 1)
	c.Assert(delays, qt.HasLen, 0)
}

func TestDoRetriesWithExponentialBackoff(t *testing.T) {
	c := qt.New(t)

	calls := 0
	var delays []time.Duration
	var retryAttempts []int
	err := retry.Do(context.Background(),
		retry.Policy{MaxAttempts: 3, BaseDelay: 10 * time.Millisecond, Retryable: func(error) bool { return true }},
		recordingSleep(&delays),
		func(attempt int, _ error) { retryAttempts = append(retryAttempts, attempt) },
		func(context.Context) error {
			calls++
			if calls < 3 {
				return errBoom
			}
			return nil
		})

	c.Assert(err, qt.IsNil)
	c.Assert(calls, qt.Equals, 3)
	c.Assert(delays, qt.DeepEquals, []time.Duration{10 * time.Millisecond, 20 * time.Millisecond})
	c.Assert(retryAttempts, qt.DeepEquals, []int{2, 3})
}

func TestDoReturnsLastErrorAfterExhaustion(t *testing.T) {
	c := qt.New(t)

	calls := 0
	var delays []time.Duration
	err := retry.Do(context.Background(),
		retry.Policy{MaxAttempts: 3, BaseDelay: time.Millisecond, Retryable: func(error) bool { return true }},
		recordingSleep(&delays), nil, func(context.Context) error {
			calls++
			return errBoom
		})

	c.Assert(err, qt.ErrorIs, errBoom)
	c.Assert(calls, qt.Equals, 3)
	c.Assert(delays, qt.HasLen, 2)
}

func TestDoNonRetryableFailsImmediately(t *testing.T) {
	c := qt.New(t)

	terminal := errors.New("terminal")
	calls := 0
	var delays []time.Duration
	err := retry.Do(context.Background(),
		retry.Policy{MaxAttempts: 3, BaseDelay: time.Millisecond, Retryable: func(err error) bool { return !errors.Is(err, terminal) }},
		recordingSleep(&delays), nil, func(context.Context) error {
			calls++
			return terminal
		})

	c.Assert(err, qt.ErrorIs, terminal)
	c.Assert(calls, qt.Equals, 1)
	c.Assert(delays, qt.HasLen, 0)
}

func TestDoStopsOnContextCancellation(t *testing.T) {
	c := qt.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := retry.Do(ctx,
		retry.Policy{MaxAttempts: 3, BaseDelay: time.Millisecond, Retryable: func(error) bool { return true }},
		func(ctx context.Context, _ time.Duration) error {
			cancel()
			return ctx.Err()
		},
		nil,
		func(context.Context) error {
			calls++
			return errBoom
		})

	c.Assert(err, qt.ErrorIs, errBoom)
	c.Assert(calls, qt.Equals, 1)
}
