// Package waitfor polls a readiness condition with exponential backoff and a
// bounded budget, and reports failure instead of retrying forever.
// Typical use: defer overlay setup until the host page has rendered its table.
package waitfor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"
)

// Sentinel errors. Callers should use errors.Is to check.
var (
	// ErrNotReady is returned when the condition stayed false for the whole budget.
	ErrNotReady = errors.New("waitfor: condition not met")
	// ErrInvalidPolicy is returned for a policy with neither MaxAttempts nor Timeout.
	ErrInvalidPolicy = errors.New("waitfor: policy needs MaxAttempts or Timeout")
)

// Condition reports whether the awaited state has been reached.
// A non-nil error aborts the wait.
type Condition func(ctx context.Context) (bool, error)

// Policy bounds a wait.
type Policy struct {
	// MaxAttempts is the maximum number of condition checks; <= 0 means unlimited (Timeout must be set).
	MaxAttempts int
	// InitialDelay is the delay after the first failed check.
	InitialDelay time.Duration
	// MaxDelay caps the delay between checks.
	MaxDelay time.Duration
	// Multiplier grows the delay after every failed check; values < 1 keep it constant.
	Multiplier float64
	// JitterFraction adds up to this fraction of the delay as random jitter (0.0 to 1.0).
	JitterFraction float64
	// Timeout bounds the whole wait; 0 means only MaxAttempts applies.
	Timeout time.Duration
}

// DefaultPolicy waits for script dependencies: quick checks, gives up after about 10s.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:  50,
		InitialDelay: 100 * time.Millisecond,
		MaxDelay:     time.Second,
		Multiplier:   1.5,
		Timeout:      10 * time.Second,
	}
}

// TablePolicy waits for the annotation table to render.
func TablePolicy() Policy {
	return Policy{
		MaxAttempts:    40,
		InitialDelay:   300 * time.Millisecond,
		MaxDelay:       2 * time.Second,
		Multiplier:     1.5,
		JitterFraction: 0.1,
		Timeout:        30 * time.Second,
	}
}

// Result reports how a wait went.
type Result struct {
	Attempts int
	Elapsed  time.Duration
}

// Until checks cond until it returns true, the policy budget is spent, or ctx is done.
// cond receives a context that expires with p.Timeout, so a blocking check is
// bounded too. It returns ErrNotReady (wrapped with the attempt count) when the
// budget runs out, the condition's error when it fails, and ctx.Err() when ctx
// is cancelled.
// Until logs with slog.Default(); use UntilWithLogger to pass one.
func Until(ctx context.Context, p Policy, cond Condition) (Result, error) {
	return UntilWithLogger(ctx, p, cond, slog.Default())
}

// UntilWithLogger is Until with an explicit logger.
func UntilWithLogger(ctx context.Context, p Policy, cond Condition, logger *slog.Logger) (Result, error) {
	if p.MaxAttempts <= 0 && p.Timeout <= 0 {
		return Result{}, ErrInvalidPolicy
	}
	if ctx.Err() != nil {
		return Result{}, fmt.Errorf("waitfor: aborted: %w", ctx.Err())
	}
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()
	waitCtx := ctx
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}
	var res Result
	// stopped maps the end of waitCtx to ErrNotReady when the policy timeout
	// expired, and to an abort when the caller's ctx is done.
	stopped := func() error {
		res.Elapsed = time.Since(start)
		if ctx.Err() != nil {
			return fmt.Errorf("waitfor: aborted: %w", ctx.Err())
		}
		logger.Warn("gave up waiting", slog.Int("attempts", res.Attempts), slog.Duration("elapsed", res.Elapsed))
		return fmt.Errorf("%w within %s (%d attempts)", ErrNotReady, p.Timeout, res.Attempts)
	}
	delay := p.InitialDelay
	for {
		if waitCtx.Err() != nil {
			return res, stopped()
		}
		res.Attempts++
		ok, err := cond(waitCtx)
		res.Elapsed = time.Since(start)
		if err != nil {
			if waitCtx.Err() != nil {
				return res, stopped()
			}
			logger.Warn("readiness check failed", slog.Int("attempt", res.Attempts), slog.Any("error", err))
			return res, err
		}
		if ok {
			if res.Attempts > 1 {
				logger.Debug("condition met after retry", slog.Int("attempt", res.Attempts), slog.Duration("elapsed", res.Elapsed))
			}
			return res, nil
		}
		if p.MaxAttempts > 0 && res.Attempts >= p.MaxAttempts {
			logger.Warn("gave up waiting", slog.Int("attempts", res.Attempts), slog.Duration("elapsed", res.Elapsed))
			return res, fmt.Errorf("%w after %d attempts", ErrNotReady, res.Attempts)
		}
		logger.Debug("condition not met, retrying", slog.Int("attempt", res.Attempts), slog.Duration("delay", delay))
		wait := time.NewTimer(addJitter(delay, p.JitterFraction))
		select {
		case <-wait.C:
		case <-waitCtx.Done():
			wait.Stop()
			return res, stopped()
		}
		delay = nextDelay(delay, p)
	}
}

func nextDelay(d time.Duration, p Policy) time.Duration {
	if p.Multiplier > 1 {
		d = time.Duration(float64(d) * p.Multiplier)
	}
	if p.MaxDelay > 0 && d > p.MaxDelay {
		d = p.MaxDelay
	}
	return d
}

// addJitter adds random jitter to a duration so many waiters do not poll in lockstep.
func addJitter(d time.Duration, fraction float64) time.Duration {
	if fraction <= 0 || d <= 0 {
		return d
	}
	if fraction > 1.0 {
		fraction = 1.0
	}
	// #nosec G404 -- jitter does not need cryptographic randomness.
	return d + time.Duration(rand.Float64()*float64(d)*fraction)
}
