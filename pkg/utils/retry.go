package utils

import (
	"context"
	"errors"
	"time"
)

type RetryConfig struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}

// Retry calls fn until it succeeds, ctx is done or attempts run out.
// Errors matching any of nonRetryable (errors.Is) are returned immediately.
func Retry(ctx context.Context, cfg RetryConfig, fn func() error, nonRetryable ...error) error {
	return RetryIf(ctx, cfg, fn, func(err error) bool {
		for _, target := range nonRetryable {
			if errors.Is(err, target) {
				return false
			}
		}
		return true
	})
}

// RetryIf is Retry with a caller-supplied predicate deciding which errors are
// worth another attempt.
func RetryIf(ctx context.Context, cfg RetryConfig, fn func() error, retryable func(error) bool) error {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.Multiplier <= 1 {
		cfg.Multiplier = 2.0
	}
	if cfg.InitialDelay < 0 {
		cfg.InitialDelay = 0
	}

	delay := cfg.InitialDelay

	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}

		if attempt >= cfg.MaxAttempts || !retryable(err) {
			return err
		}

		if delay > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return errors.Join(err, ctx.Err())
			case <-timer.C:
			}
		} else if ctx.Err() != nil {
			return errors.Join(err, ctx.Err())
		}

		delay = time.Duration(float64(delay) * cfg.Multiplier)
		if cfg.MaxDelay > 0 && delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}
}
