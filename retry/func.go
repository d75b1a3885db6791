// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package retry

import (
	"context"
	"time"

	"github.com/z5labs/candor/internal/emit"
	"github.com/z5labs/candor/result"
)

// Func retries a plain fallible function under p, wrapping its final
// outcome. A panic raised by f is captured as a failure and retried
// like any other.
//
// Intermediate attempts wrap quietly so a retried operation reports
// one failure, the final one, instead of one per attempt.
func Func[T any](ctx context.Context, p Policy, f func(context.Context) (T, error)) result.Result[T] {
	return fn(ctx, p, emit.CallerPC(1), f)
}

// Quick attempts twice with a short constant delay.
func Quick[T any](ctx context.Context, f func(context.Context) (T, error)) result.Result[T] {
	return fn(ctx, quickPolicy(), emit.CallerPC(1), f)
}

// Standard retries under [DefaultPolicy].
func Standard[T any](ctx context.Context, f func(context.Context) (T, error)) result.Result[T] {
	return fn(ctx, DefaultPolicy(), emit.CallerPC(1), f)
}

// Persistent attempts ten times, two seconds apart and doubling, for
// operations worth waiting on.
func Persistent[T any](ctx context.Context, f func(context.Context) (T, error)) result.Result[T] {
	return fn(ctx, persistentPolicy(), emit.CallerPC(1), f)
}

func quickPolicy() Policy {
	return Policy{
		MaxAttempts:  2,
		InitialDelay: 100 * time.Millisecond,
		Multiplier:   1,
		LogAttempts:  true,
	}
}

func persistentPolicy() Policy {
	return Policy{
		MaxAttempts:  10,
		InitialDelay: 2 * time.Second,
		Multiplier:   2,
		LogAttempts:  true,
	}
}

func fn[T any](ctx context.Context, p Policy, pc uintptr, f func(context.Context) (T, error)) result.Result[T] {
	res := do(ctx, p, pc, func(ctx context.Context) result.Result[T] {
		return result.Try(func() (T, error) {
			return f(ctx)
		}, result.Quiet())
	})

	v, err := res.Get()
	if err == nil {
		return res
	}
	return result.New(v, err, result.Context(ctx), func(eo *emit.Options) {
		eo.PC = pc
	})
}
