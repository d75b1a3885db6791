// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package emit

import (
	"context"
	"log/slog"
)

type namespaceContextKey struct{}

type attrsContextKey struct{}

// ContextWithNamespace returns a copy of ctx carrying an ambient
// reporting namespace.
func ContextWithNamespace(ctx context.Context, namespace string) context.Context {
	return context.WithValue(ctx, namespaceContextKey{}, namespace)
}

// NamespaceFromContext returns the ambient reporting namespace
// carried by ctx, if any.
func NamespaceFromContext(ctx context.Context) (string, bool) {
	ns, ok := ctx.Value(namespaceContextKey{}).(string)
	return ns, ok
}

// ContextWithAttrs returns a copy of ctx carrying the given ambient
// attributes appended to any it already carries.
func ContextWithAttrs(ctx context.Context, attrs ...slog.Attr) context.Context {
	if len(attrs) == 0 {
		return ctx
	}

	existing := AttrsFromContext(ctx)
	merged := make([]slog.Attr, 0, len(existing)+len(attrs))
	merged = append(merged, existing...)
	merged = append(merged, attrs...)
	return context.WithValue(ctx, attrsContextKey{}, merged)
}

// AttrsFromContext returns the ambient attributes carried by ctx.
func AttrsFromContext(ctx context.Context) []slog.Attr {
	attrs, _ := ctx.Value(attrsContextKey{}).([]slog.Attr)
	return attrs
}
