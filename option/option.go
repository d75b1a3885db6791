// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package option implements an absence aware value container.
//
// An [Option] either holds a value or records the reason the value is
// absent. Constructing the absent variant through a non quiet path
// reports the absence synchronously, see [None] and the package level
// factories. Combinators which pass an existing absence along re-wrap
// it quietly so each absence is reported once, at its origin.
package option

import (
	"fmt"

	"github.com/z5labs/candor/internal/emit"
	"github.com/z5labs/candor/observe"
)

// Option is an immutable container which either holds a value of type
// T or records the reason the value is absent.
//
// Options are plain values. No method mutates its receiver, every
// combinator returns a new value. The zero value is a quiet absent
// option with an empty reason.
type Option[T any] struct {
	value   T
	reason  string
	present bool
}

// Some returns a present option wrapping v. It is never reported.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

// None returns an absent option carrying reason.
//
// The absence is reported through the configured sink unless the
// [Quiet] option is given.
func None[T any](reason string, opts ...LogOption) Option[T] {
	return reportAbsent[T](reason, emit.CallerPC(1), opts)
}

const emptyReason = "empty option"

// Empty returns the canonical quiet absent option. It is never
// reported.
func Empty[T any]() Option[T] {
	return Option[T]{reason: emptyReason}
}

// reportAbsent builds the absent variant and reports it. The quiet
// propagation path used by combinators constructs struct literals
// directly and never comes through here.
func reportAbsent[T any](reason string, pc uintptr, opts []LogOption) Option[T] {
	eo := emit.Options{PC: pc}
	for _, opt := range opts {
		if opt != nil {
			opt(&eo)
		}
	}
	emit.Unhappy(emit.Default(), observe.KindAbsence, reason, nil, eo)
	return Option[T]{reason: reason}
}

// IsSome reports whether the option holds a value.
func (o Option[T]) IsSome() bool {
	return o.present
}

// IsNone reports whether the option is absent.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// Get returns the wrapped value and whether it is present, mirroring
// the comma ok idiom.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// Reason returns the absence reason. It is empty for present options.
func (o Option[T]) Reason() string {
	if o.present {
		return ""
	}
	return o.reason
}

// Unwrap returns the wrapped value or panics with the absence reason.
func (o Option[T]) Unwrap() T {
	if !o.present {
		panic(fmt.Sprintf("option: unwrap of absent option: %s", o.reason))
	}
	return o.value
}

// UnwrapOr returns the wrapped value or def. It never reports and
// never panics.
func (o Option[T]) UnwrapOr(def T) T {
	if !o.present {
		return def
	}
	return o.value
}

// UnwrapOrElse returns the wrapped value or the result of f applied
// to the absence reason. f is invoked only on absent options.
func (o Option[T]) UnwrapOrElse(f func(reason string) T) T {
	if !o.present {
		return f(o.reason)
	}
	return o.value
}

// Filter re-evaluates a present option against pred. A present value
// failing the predicate becomes a reported absence. Absent options
// propagate quietly.
func (o Option[T]) Filter(pred func(T) bool, opts ...LogOption) Option[T] {
	if !o.present {
		return o
	}
	if pred(o.value) {
		return o
	}
	return reportAbsent[T]("value filtered out", emit.CallerPC(1), opts)
}

// OrElse returns o if it is present, otherwise the option produced by
// f from the absence reason.
func (o Option[T]) OrElse(f func(reason string) Option[T]) Option[T] {
	if o.present {
		return o
	}
	return f(o.reason)
}

// String implements the [fmt.Stringer] interface.
func (o Option[T]) String() string {
	if o.present {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return fmt.Sprintf("None(%s)", o.reason)
}
