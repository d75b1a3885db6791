// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package retry re-invokes failure producing operations under a
// backoff policy.
//
// Operations keep their single report per failure, each attempt's
// failure is constructed, and so reported, by the operation itself
// while the retry loop only adds bookkeeping records around it. The
// first success, a non retryable failure or the final attempt's
// failure is returned unchanged.
package retry

import (
	"context"
	"log/slog"
	"time"

	"github.com/z5labs/candor/internal/emit"
	"github.com/z5labs/candor/internal/logattr"
	"github.com/z5labs/candor/observe"
	"github.com/z5labs/candor/result"
)

// Policy controls how many times an operation is attempted and how
// long to wait between attempts.
type Policy struct {
	// MaxAttempts is the total number of invocations, not the number
	// of retries after the first. Values below 1 are treated as 1.
	MaxAttempts int

	// InitialDelay is the wait before the second attempt. Negative
	// values are treated as 0.
	InitialDelay time.Duration

	// Multiplier grows the delay after every failed attempt. Values
	// below 1 are treated as 1, a constant delay.
	Multiplier float64

	// MaxDelay caps the grown delay. Values of 0 or below select the
	// default cap of 30 seconds.
	MaxDelay time.Duration

	// StopIf marks a failure as non retryable. It is consulted on
	// every failure and a true return stops the loop with that
	// failure.
	StopIf func(error) bool

	// LogAttempts emits a bookkeeping record per failed attempt, on
	// success after retries and on exhaustion.
	LogAttempts bool
}

// DefaultPolicy returns three attempts, one second apart and doubling,
// with attempt logging on.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:  3,
		InitialDelay: time.Second,
		Multiplier:   2,
		MaxDelay:     30 * time.Second,
		LogAttempts:  true,
	}
}

func (p Policy) normalize() Policy {
	if p.MaxAttempts < 1 {
		p.MaxAttempts = 1
	}
	if p.InitialDelay < 0 {
		p.InitialDelay = 0
	}
	if p.Multiplier < 1 {
		p.Multiplier = 1
	}
	if p.MaxDelay <= 0 {
		p.MaxDelay = 30 * time.Second
	}
	return p
}

// Do invokes op until it succeeds, up to p.MaxAttempts times.
//
// The first success returns immediately. A failure p.StopIf marks non
// retryable returns immediately. Cancellation of ctx during the inter
// attempt wait returns the last attempt's failure, never a synthetic
// one, a ctx which is already done before any attempt ran returns a
// quiet failure wrapping ctx.Err instead.
func Do[T any](ctx context.Context, p Policy, op func(context.Context) result.Result[T]) result.Result[T] {
	return do(ctx, p, emit.CallerPC(1), op)
}

func do[T any](ctx context.Context, p Policy, pc uintptr, op func(context.Context) result.Result[T]) result.Result[T] {
	if ctx == nil {
		ctx = context.Background()
	}
	if ctx.Err() != nil {
		return result.Err[T](ctx.Err(), result.Quiet())
	}

	p = p.normalize()
	namespace := resolveNamespace(ctx, pc)
	delay := p.InitialDelay

	var last result.Result[T]
	for attempt := 1; ; attempt++ {
		last = op(ctx)

		_, err := last.Get()
		if err == nil {
			if p.LogAttempts && attempt > 1 {
				emit.Log(emit.Default(), ctx, observe.KindRetry, namespace, slog.LevelInfo,
					"succeeded after retries",
					logattr.Attempts(attempt))
			}
			return last
		}

		if p.StopIf != nil && p.StopIf(err) {
			if p.LogAttempts {
				emit.Log(emit.Default(), ctx, observe.KindRetry, namespace, slog.LevelDebug,
					"non-retryable failure",
					logattr.Attempt(attempt), logattr.Error(err))
			}
			return last
		}

		if p.LogAttempts {
			emit.Log(emit.Default(), ctx, observe.KindRetry, namespace, slog.LevelDebug,
				"attempt failed",
				logattr.Attempt(attempt), logattr.Error(err))
		}

		if attempt == p.MaxAttempts {
			break
		}

		werr := sleep(ctx, delay)
		if werr != nil {
			if p.LogAttempts {
				emit.Log(emit.Default(), ctx, observe.KindRetry, namespace, slog.LevelDebug,
					"retries canceled",
					logattr.Attempts(attempt), logattr.Error(werr))
			}
			return last
		}
		delay = nextDelay(delay, p.Multiplier, p.MaxDelay)
	}

	if p.LogAttempts {
		_, err := last.Get()
		emit.Log(emit.Default(), ctx, observe.KindRetry, namespace, slog.LevelWarn,
			"retries exhausted",
			logattr.Attempts(p.MaxAttempts), logattr.Error(err))
	}
	return last
}

func resolveNamespace(ctx context.Context, pc uintptr) string {
	ns, ok := emit.NamespaceFromContext(ctx)
	if ok {
		return ns
	}
	return emit.NamespaceForPC(pc)
}

// sleep waits for d or until ctx is done, whichever comes first. The
// timer is stopped and drained on early return.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer func() {
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
	}()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func nextDelay(current time.Duration, multiplier float64, max time.Duration) time.Duration {
	next := time.Duration(float64(current) * multiplier)
	if next < 0 || next > max {
		next = max
	}
	return next
}
