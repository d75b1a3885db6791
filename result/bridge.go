// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package result

import (
	"errors"

	"github.com/z5labs/candor/option"
)

// ToOption demotes a result to an option. A success becomes a present
// option, a failure becomes an absence carrying the error message as
// its reason. The conversion is quiet since the failure already
// reported when it was constructed.
func ToOption[T any](r Result[T]) option.Option[T] {
	if r.err == nil {
		return option.Some(r.value)
	}
	return option.None[T](r.err.Error(), option.Quiet())
}

// FromOption promotes an option to a result. A present option becomes
// a success, an absence becomes a failure wrapping err. When err is
// nil a new error is built from the absence reason. The conversion is
// quiet since the absence already reported when it was constructed.
func FromOption[T any](o option.Option[T], err error) Result[T] {
	v, ok := o.Get()
	if ok {
		return Result[T]{value: v}
	}
	if err == nil {
		err = errors.New(o.Reason())
	}
	return Result[T]{err: err}
}
