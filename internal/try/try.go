// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package try implements panic and close capture helpers for fault
// converting factories.
package try

import (
	"errors"
	"fmt"
	"io"
)

// PanicError wraps the value recovered from a panic so it can travel
// as the failure payload of a container.
type PanicError struct {
	Value any
}

// Error implements the [builtin.error] interface.
func (e PanicError) Error() string {
	return fmt.Sprintf("recovered from panic: %v", e.Value)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
//
// It returns nil if the recovered value was not an error.
func (e PanicError) Unwrap() error {
	err, ok := e.Value.(error)
	if !ok {
		return nil
	}
	return err
}

// Recover recovers any active panic and records it in err.
//
//	func example() (err error) {
//		defer try.Recover(&err)
//		mayPanic()
//		return nil
//	}
//
// If err already holds an error the panic is joined to it.
func Recover(err *error) {
	r := recover()
	if r == nil {
		return
	}

	perr := PanicError{
		Value: r,
	}
	if *err == nil {
		*err = perr
		return
	}
	*err = errors.Join(*err, perr)
}

// CloseError wraps the error returned by an [io.Closer].
type CloseError struct {
	Cause error
}

// Error implements the [builtin.error] interface.
func (e CloseError) Error() string {
	return fmt.Sprintf("failed to close: %s", e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e CloseError) Unwrap() error {
	return e.Cause
}

// Close closes v, if it is an [io.Closer], and records any close
// failure in err. An error already held by err is preserved and the
// close failure joined to it.
func Close(err *error, v any) {
	c, ok := v.(io.Closer)
	if !ok {
		return
	}

	cerr := c.Close()
	if cerr == nil {
		return
	}

	werr := CloseError{
		Cause: cerr,
	}
	if *err == nil {
		*err = werr
		return
	}
	*err = errors.Join(*err, werr)
}
