// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package zapsink implements a sink backed by a zap logger.
//
// Services which already log through zap can route reports into the
// same core:
//
//	logger, _ := zap.NewProduction()
//	config.SetHandler(zapsink.New(logger))
package zapsink

import (
	"context"
	"log/slog"
	"runtime"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Handler forwards records to a zap core.
type Handler struct {
	logger *zap.Logger
}

// New returns a [slog.Handler] writing through logger's core.
func New(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// Enabled implements the [slog.Handler] interface.
func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.logger.Core().Enabled(zapLevel(level))
}

// Handle implements the [slog.Handler] interface.
func (h *Handler) Handle(ctx context.Context, rec slog.Record) error {
	ce := h.logger.Check(zapLevel(rec.Level), rec.Message)
	if ce == nil {
		return nil
	}

	if !rec.Time.IsZero() {
		ce.Time = rec.Time
	}
	if rec.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{rec.PC}).Next()
		ce.Caller = zapcore.NewEntryCaller(rec.PC, frame.File, frame.Line, true)
	}
	ce.Write(fields(rec)...)
	return nil
}

// WithAttrs implements the [slog.Handler] interface.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	fs := make([]zap.Field, 0, len(attrs))
	for _, attr := range attrs {
		fs = appendField(fs, attr)
	}
	return New(h.logger.With(fs...))
}

// WithGroup implements the [slog.Handler] interface.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return New(h.logger.With(zap.Namespace(name)))
}

func fields(rec slog.Record) []zap.Field {
	fs := make([]zap.Field, 0, rec.NumAttrs())
	rec.Attrs(func(attr slog.Attr) bool {
		fs = appendField(fs, attr)
		return true
	})
	return fs
}

// appendField translates attr into zap fields, inlining groups with an
// empty key and dropping empty attrs per the [slog.Handler] contract.
func appendField(fs []zap.Field, attr slog.Attr) []zap.Field {
	if attr.Equal(slog.Attr{}) {
		return fs
	}

	v := attr.Value.Resolve()
	if v.Kind() != slog.KindGroup {
		return append(fs, field(attr.Key, v))
	}

	members := v.Group()
	if attr.Key == "" {
		for _, member := range members {
			fs = appendField(fs, member)
		}
		return fs
	}

	sub := make([]zap.Field, 0, len(members))
	for _, member := range members {
		sub = appendField(sub, member)
	}
	return append(fs, zap.Dict(attr.Key, sub...))
}

func field(key string, v slog.Value) zap.Field {
	switch v.Kind() {
	case slog.KindBool:
		return zap.Bool(key, v.Bool())
	case slog.KindDuration:
		return zap.Duration(key, v.Duration())
	case slog.KindFloat64:
		return zap.Float64(key, v.Float64())
	case slog.KindInt64:
		return zap.Int64(key, v.Int64())
	case slog.KindString:
		return zap.String(key, v.String())
	case slog.KindTime:
		return zap.Time(key, v.Time())
	case slog.KindUint64:
		return zap.Uint64(key, v.Uint64())
	default:
		return zap.Any(key, v.Any())
	}
}

// zapLevel maps a slog level onto the zap scale by threshold. Levels
// above [slog.LevelError] stay at error, the zap levels past it panic
// or exit.
func zapLevel(level slog.Level) zapcore.Level {
	switch {
	case level < slog.LevelInfo:
		return zapcore.DebugLevel
	case level < slog.LevelWarn:
		return zapcore.InfoLevel
	case level < slog.LevelError:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
