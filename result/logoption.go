// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package result

import (
	"context"
	"log/slog"

	"github.com/z5labs/candor/internal/emit"
)

// LogOption adjusts how a single failure construction is reported.
type LogOption func(*emit.Options)

// Quiet suppresses reporting for this construction entirely.
func Quiet() LogOption {
	return func(eo *emit.Options) {
		eo.Quiet = true
	}
}

// In reports the failure under the given namespace instead of the
// namespace derived from the caller.
func In(namespace string) LogOption {
	return func(eo *emit.Options) {
		eo.Namespace = namespace
	}
}

// With attaches extra attributes to the report. The attributes are
// only emitted when local capture is enabled for the resolved
// namespace.
func With(attrs ...slog.Attr) LogOption {
	return func(eo *emit.Options) {
		eo.Attrs = append(eo.Attrs, attrs...)
	}
}

// AtLevel overrides the level the failure is reported at. Failures
// default to [slog.LevelError].
func AtLevel(level slog.Level) LogOption {
	return func(eo *emit.Options) {
		eo.Level = level
		eo.LevelSet = true
	}
}

// Context supplies a [context.Context] to resolve the ambient
// namespace and attributes from, see [github.com/z5labs/candor.WithNamespace].
func Context(ctx context.Context) LogOption {
	return func(eo *emit.Options) {
		eo.Ctx = ctx
	}
}
