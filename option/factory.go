// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package option

import (
	"github.com/z5labs/candor/internal/emit"
	"github.com/z5labs/candor/internal/try"
)

// FromOK wraps the comma ok idiom, map indexes, type assertions and
// the like. A false ok yields a reported absence.
func FromOK[T any](v T, ok bool, opts ...LogOption) Option[T] {
	if ok {
		return Some(v)
	}
	return reportAbsent[T]("no value", emit.CallerPC(1), opts)
}

// FromPtr returns a present option of the pointed-to value, or a
// reported absence if p is nil.
func FromPtr[T any](p *T, opts ...LogOption) Option[T] {
	if p != nil {
		return Some(*p)
	}
	return reportAbsent[T]("nil pointer", emit.CallerPC(1), opts)
}

// Try invokes f and wraps its outcome. A returned error, or a panic
// raised by f, becomes the reason of a reported absence.
func Try[T any](f func() (T, error), opts ...LogOption) Option[T] {
	v, err := call(f)
	if err != nil {
		return reportAbsent[T](err.Error(), emit.CallerPC(1), opts)
	}
	return Some(v)
}

func call[T any](f func() (T, error)) (_ T, err error) {
	defer try.Recover(&err)
	return f()
}

// FromPredicate evaluates pred against v. A failing predicate yields
// a reported absence carrying reason.
func FromPredicate[T any](v T, pred func(T) bool, reason string, opts ...LogOption) Option[T] {
	if pred(v) {
		return Some(v)
	}
	return reportAbsent[T](reason, emit.CallerPC(1), opts)
}

// Predicate returns a reusable validator built from pred, for use in
// chains and pipelines:
//
//	positive := option.Predicate(func(n int) bool { return n > 0 }, "not positive")
//	res := option.AndThen(parse(s), positive)
func Predicate[T any](pred func(T) bool, reason string, opts ...LogOption) func(T) Option[T] {
	return func(v T) Option[T] {
		if pred(v) {
			return Some(v)
		}
		return reportAbsent[T](reason, emit.CallerPC(1), opts)
	}
}
