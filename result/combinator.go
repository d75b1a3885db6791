// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package result

// Map transforms the success value with f. A failure propagates
// quietly without invoking f.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.err != nil {
		return Result[U]{err: r.err}
	}
	return Result[U]{value: f(r.value)}
}

// AndThen chains a result producing computation onto a success. A
// failure propagates quietly without invoking f. Any failure f itself
// constructs reports from inside f, not from here.
func AndThen[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Result[U]{err: r.err}
	}
	return f(r.value)
}

// Pair holds the two success values combined by [Zip].
type Pair[T, U any] struct {
	A T
	B U
}

// Zip combines two successes into a single [Pair] success. If either
// side is a failure the first failure, a before b, propagates
// quietly.
func Zip[T, U any](a Result[T], b Result[U]) Result[Pair[T, U]] {
	if a.err != nil {
		return Result[Pair[T, U]]{err: a.err}
	}
	if b.err != nil {
		return Result[Pair[T, U]]{err: b.err}
	}
	return Result[Pair[T, U]]{value: Pair[T, U]{A: a.value, B: b.value}}
}

// Match folds the result into a single value by applying exactly one
// of the two functions.
func Match[T, U any](r Result[T], onOk func(T) U, onErr func(error) U) U {
	if r.err != nil {
		return onErr(r.err)
	}
	return onOk(r.value)
}
