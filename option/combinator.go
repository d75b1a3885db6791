// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package option

// Map transforms a present option's value with f. Absent options
// propagate quietly, the absence was already reported when it was
// constructed.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.present {
		return Option[U]{reason: o.reason}
	}
	return Some(f(o.value))
}

// AndThen chains a present option into f, flattening the result.
// Absent options propagate quietly.
func AndThen[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if !o.present {
		return Option[U]{reason: o.reason}
	}
	return f(o.value)
}

// Pair holds the two values combined by [Zip].
type Pair[T, U any] struct {
	A T
	B U
}

// Zip combines two present options into one holding both values. If
// either operand is absent the first absent one, a before b,
// propagates quietly.
func Zip[T, U any](a Option[T], b Option[U]) Option[Pair[T, U]] {
	if !a.present {
		return Option[Pair[T, U]]{reason: a.reason}
	}
	if !b.present {
		return Option[Pair[T, U]]{reason: b.reason}
	}
	return Some(Pair[T, U]{A: a.value, B: b.value})
}

// Match folds the option into a single value, applying some to a
// present value or none to the absence reason. Exactly one branch is
// invoked.
func Match[T, U any](o Option[T], some func(T) U, none func(reason string) U) U {
	if o.present {
		return some(o.value)
	}
	return none(o.reason)
}
