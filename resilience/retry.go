/*
 * Copyright © 2025 Cloudward Inc., All rights reserved.
 */

package resilience

import (
	"context"
	"time"
)

// Config controls the retry schedule for one client.
type Config struct {
	// MaxAttempts is the total attempt budget, including the first call.
	MaxAttempts int
	// BaseInterval is the wait before the first retry.
	BaseInterval time.Duration
	// Exponential doubles the wait after every failed attempt; when
	// false the wait is a flat BaseInterval.
	Exponential bool
}

// DefaultConfig returns the default retry schedule: five attempts,
// 200ms base interval, exponential backoff.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:  5,
		BaseInterval: 200 * time.Millisecond,
		Exponential:  true,
	}
}

// normalized fills zero fields so a partially built Config behaves.
func (c Config) normalized() Config {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = DefaultConfig().MaxAttempts
	}
	if c.BaseInterval <= 0 {
		c.BaseInterval = DefaultConfig().BaseInterval
	}
	return c
}

// Do invokes fn up to cfg.MaxAttempts times. On success the value is
// returned immediately. On failure the error is handed to retryable;
// a false verdict propagates it after that single attempt. Otherwise
// Do sleeps BaseInterval*2^attempt (exponential) or BaseInterval
// (linear) and calls fn again with identical inputs. The final
// attempt's error is propagated unchanged; callers attach their own
// context.
//
// op names the operation for the caller's benefit only; Do never
// inspects it.
func Do[T any](ctx context.Context, cfg Config, op string, fn func(context.Context) (T, error), retryable func(error) bool) (T, error) {
	cfg = cfg.normalized()

	var zero T
	var lastErr error
	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}
		lastErr = err

		if retryable == nil || !retryable(err) {
			return zero, err
		}
		if attempt == cfg.MaxAttempts-1 {
			break
		}

		wait := cfg.BaseInterval
		if cfg.Exponential {
			wait = cfg.BaseInterval << attempt
		}
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(wait):
		}
	}

	return zero, lastErr
}
