// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package otelsink decorates a sink with OpenTelemetry trace
// correlation.
//
// Wrap the sink you hand to config.SetHandler and every report whose
// construction supplied a context, see option.Context and
// result.Context, carries the active span's trace id and span id:
//
//	config.SetHandler(otelsink.NewHandler(slog.NewJSONHandler(os.Stderr, nil)))
package otelsink

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// Handler wraps another [slog.Handler] and adds an "otel" group
// holding the trace id and span id of the span found on the record's
// context. Records without a valid span context pass through
// untouched.
type Handler struct {
	next slog.Handler
}

// NewHandler returns a [Handler] decorating next.
func NewHandler(next slog.Handler) *Handler {
	return &Handler{next: next}
}

// Enabled implements the [slog.Handler] interface.
func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle implements the [slog.Handler] interface.
func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	spanCtx := trace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() {
		return h.next.Handle(ctx, record)
	}

	rec := record.Clone()
	rec.AddAttrs(
		slog.Group(
			"otel",
			slog.String("trace_id", spanCtx.TraceID().String()),
			slog.String("span_id", spanCtx.SpanID().String()),
		),
	)
	return h.next.Handle(ctx, rec)
}

// WithAttrs implements the [slog.Handler] interface.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return NewHandler(h.next.WithAttrs(attrs))
}

// WithGroup implements the [slog.Handler] interface.
func (h *Handler) WithGroup(name string) slog.Handler {
	return NewHandler(h.next.WithGroup(name))
}
