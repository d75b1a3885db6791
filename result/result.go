// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package result implements a failure aware value container.
//
// A [Result] either holds a success value or a non-nil error.
// Constructing the failure variant through a non quiet path reports
// the failure synchronously, see [Err] and the package level
// factories. Combinators which pass an existing failure along re-wrap
// it quietly so each failure is reported once, at its origin.
package result

import (
	"errors"
	"fmt"

	"github.com/z5labs/candor/internal/emit"
	"github.com/z5labs/candor/observe"
)

var (
	// ErrFiltered is the generated failure for predicate rejections
	// when the caller supplies no error of its own.
	ErrFiltered = errors.New("value filtered out")

	// ErrNilPointer is the generated failure for nil pointers passed
	// to [FromPtr] without an error of their own.
	ErrNilPointer = errors.New("nil pointer")
)

// Result is an immutable container which either holds a success value
// of type T or a non-nil failure error.
//
// Results are plain values. No method mutates its receiver, every
// combinator returns a new value. The zero value is a success
// wrapping T's zero value.
type Result[T any] struct {
	value T
	err   error
}

// Ok returns a success wrapping v. It is never reported.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Err returns a failure wrapping err.
//
// The failure is reported through the configured sink unless the
// [Quiet] option is given. A nil err yields a success of T's zero
// value.
func Err[T any](err error, opts ...LogOption) Result[T] {
	if err == nil {
		return Result[T]{}
	}
	return reportFailure[T](err, emit.CallerPC(1), opts)
}

// reportFailure builds the failure variant and reports it. The quiet
// propagation path used by combinators constructs struct literals
// directly and never comes through here.
func reportFailure[T any](err error, pc uintptr, opts []LogOption) Result[T] {
	eo := emit.Options{PC: pc}
	for _, opt := range opts {
		if opt != nil {
			opt(&eo)
		}
	}
	emit.Unhappy(emit.Default(), observe.KindFailure, err.Error(), err, eo)
	return Result[T]{err: err}
}

// IsOk reports whether the result holds a success value.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// IsErr reports whether the result holds a failure.
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// Get returns the success value and the failure error, mirroring the
// canonical Go return pair.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// Unwrap returns the success value or panics with the failure error.
func (r Result[T]) Unwrap() T {
	if r.err != nil {
		panic(fmt.Sprintf("result: unwrap of failed result: %s", r.err))
	}
	return r.value
}

// UnwrapErr returns the failure error or panics if the result is a
// success.
func (r Result[T]) UnwrapErr() error {
	if r.err == nil {
		panic(fmt.Sprintf("result: unwrap err of successful result: %v", r.value))
	}
	return r.err
}

// UnwrapOr returns the success value or def. It never reports and
// never panics.
func (r Result[T]) UnwrapOr(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

// UnwrapOrElse returns the success value or the result of f applied
// to the failure error. f is invoked only on failures.
func (r Result[T]) UnwrapOrElse(f func(error) T) T {
	if r.err != nil {
		return f(r.err)
	}
	return r.value
}

// MapErr transforms the failure error with f, re-wrapped quietly. A
// success passes through untouched. f must return a non-nil error, a
// nil return keeps the existing error.
func (r Result[T]) MapErr(f func(error) error) Result[T] {
	if r.err == nil {
		return r
	}
	mapped := f(r.err)
	if mapped == nil {
		return r
	}
	return Result[T]{err: mapped}
}

// OrElse returns r if it is a success, otherwise the result produced
// by f from the failure error.
func (r Result[T]) OrElse(f func(error) Result[T]) Result[T] {
	if r.err == nil {
		return r
	}
	return f(r.err)
}

// OrDefault recovers a failure into a success wrapping v. A success
// passes through untouched.
func (r Result[T]) OrDefault(v T) Result[T] {
	if r.err == nil {
		return r
	}
	return Result[T]{value: v}
}

// Filter re-evaluates a success against pred. A success failing the
// predicate becomes a reported failure wrapping err, or [ErrFiltered]
// when err is nil. Failures propagate quietly.
func (r Result[T]) Filter(pred func(T) bool, err error, opts ...LogOption) Result[T] {
	if r.err != nil {
		return r
	}
	if pred(r.value) {
		return r
	}
	if err == nil {
		err = ErrFiltered
	}
	return reportFailure[T](err, emit.CallerPC(1), opts)
}

// String implements the [fmt.Stringer] interface.
func (r Result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Err(%s)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}
