// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package logattr defines the slog attributes attached to unhappy path
// and bookkeeping records.
package logattr

import "log/slog"

// Namespace
func Namespace(s string) slog.Attr {
	return slog.String("namespace", s)
}

// Reason
func Reason(s string) slog.Attr {
	return slog.String("reason", s)
}

// Error
func Error(err error) slog.Attr {
	return slog.Any("error", err)
}

// Function
func Function(s string) slog.Attr {
	return slog.String("function", s)
}

// File
func File(s string) slog.Attr {
	return slog.String("file", s)
}

// Line
func Line(n int) slog.Attr {
	return slog.Int("line", n)
}

// Attempt
func Attempt(n int) slog.Attr {
	return slog.Int("attempt", n)
}

// Attempts
func Attempts(n int) slog.Attr {
	return slog.Int("attempts", n)
}

// Path
func Path(s string) slog.Attr {
	return slog.String("path", s)
}
