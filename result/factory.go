// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package result

import (
	"github.com/z5labs/candor/internal/emit"
	"github.com/z5labs/candor/internal/try"
)

// New wraps the canonical Go return pair:
//
//	res := result.New(os.Open(path))
//
// A nil err yields a success wrapping v, otherwise a reported
// failure.
func New[T any](v T, err error, opts ...LogOption) Result[T] {
	if err == nil {
		return Result[T]{value: v}
	}
	return reportFailure[T](err, emit.CallerPC(1), opts)
}

// Try invokes f and wraps its outcome. A panic raised by f is
// recovered and becomes the failure payload. If the panic value was
// itself an error it remains reachable through errors.Is and
// errors.As on the wrapped failure.
func Try[T any](f func() (T, error), opts ...LogOption) Result[T] {
	v, err := call(f)
	if err == nil {
		return Result[T]{value: v}
	}
	return reportFailure[T](err, emit.CallerPC(1), opts)
}

func call[T any](f func() (T, error)) (_ T, err error) {
	defer try.Recover(&err)
	return f()
}

// FromPtr dereferences p into a success. A nil p becomes a reported
// failure wrapping err, or [ErrNilPointer] when err is nil.
func FromPtr[T any](p *T, err error, opts ...LogOption) Result[T] {
	if p != nil {
		return Result[T]{value: *p}
	}
	if err == nil {
		err = ErrNilPointer
	}
	return reportFailure[T](err, emit.CallerPC(1), opts)
}

// FromPredicate evaluates v against pred. A rejected v becomes a
// reported failure wrapping err, or [ErrFiltered] when err is nil.
func FromPredicate[T any](v T, pred func(T) bool, err error, opts ...LogOption) Result[T] {
	if pred(v) {
		return Result[T]{value: v}
	}
	if err == nil {
		err = ErrFiltered
	}
	return reportFailure[T](err, emit.CallerPC(1), opts)
}

// Validator builds a reusable validating constructor from pred.
// Rejections report from the call site of the returned func, not from
// where the validator was built:
//
//	nonEmpty := result.Validator(
//		func(s string) bool { return s != "" },
//		errors.New("empty name"),
//	)
//	res := nonEmpty(req.Name)
func Validator[T any](pred func(T) bool, err error, opts ...LogOption) func(T) Result[T] {
	return func(v T) Result[T] {
		if pred(v) {
			return Result[T]{value: v}
		}
		e := err
		if e == nil {
			e = ErrFiltered
		}
		return reportFailure[T](e, emit.CallerPC(1), opts)
	}
}
