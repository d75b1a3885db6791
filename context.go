// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package candor

import (
	"context"
	"log/slog"

	"github.com/z5labs/candor/internal/emit"
)

// WithNamespace returns a copy of ctx carrying an ambient reporting
// namespace. Constructions passing the context along, for example via
// result.Context, report under that namespace instead of deriving one
// from their call site.
func WithNamespace(ctx context.Context, namespace string) context.Context {
	return emit.ContextWithNamespace(ctx, namespace)
}

// NamespaceFromContext returns the ambient reporting namespace carried
// by ctx, if any.
func NamespaceFromContext(ctx context.Context) (string, bool) {
	return emit.NamespaceFromContext(ctx)
}

// WithAttrs returns a copy of ctx carrying ambient attributes which
// are attached to reported events when the resolved configuration
// entry captures locals. Attributes accumulate across calls.
func WithAttrs(ctx context.Context, attrs ...slog.Attr) context.Context {
	return emit.ContextWithAttrs(ctx, attrs...)
}

// AttrsFromContext returns the ambient attributes carried by ctx.
func AttrsFromContext(ctx context.Context) []slog.Attr {
	return emit.AttrsFromContext(ctx)
}
