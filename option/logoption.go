// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package option

import (
	"context"
	"log/slog"

	"github.com/z5labs/candor/internal/emit"
)

// LogOption configures how an unhappy construction is reported.
type LogOption func(*emit.Options)

// Quiet skips reporting for this construction entirely.
func Quiet() LogOption {
	return func(o *emit.Options) {
		o.Quiet = true
	}
}

// In reports under an explicit namespace instead of resolving one
// from the ambient context or call site.
func In(namespace string) LogOption {
	return func(o *emit.Options) {
		o.Namespace = namespace
	}
}

// With attaches attributes to the reported record. They are included
// when the resolved configuration entry captures locals.
func With(attrs ...slog.Attr) LogOption {
	return func(o *emit.Options) {
		o.Attrs = append(o.Attrs, attrs...)
	}
}

// AtLevel overrides the severity the absence is reported at. Absences
// default to [slog.LevelWarn].
func AtLevel(level slog.Level) LogOption {
	return func(o *emit.Options) {
		o.Level = level
		o.LevelSet = true
	}
}

// Context supplies the context the construction happened under. Any
// ambient namespace or attributes carried by it, see
// [github.com/z5labs/candor.WithNamespace] and
// [github.com/z5labs/candor.WithAttrs], are applied to the report.
func Context(ctx context.Context) LogOption {
	return func(o *emit.Options) {
		o.Ctx = ctx
	}
}
