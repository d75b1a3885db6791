// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package emit implements the reporting pipeline behind unhappy
// container construction, namespace resolution, call site capture,
// record building and delivery to the configured sink and observer.
package emit

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/z5labs/candor/internal/logattr"
	"github.com/z5labs/candor/observe"
)

// Options carries the per construction reporting options collected by
// the public container packages.
type Options struct {
	// Quiet skips reporting entirely.
	Quiet bool

	// Namespace overrides namespace resolution.
	Namespace string

	// Level overrides the kind's default severity when LevelSet is true.
	Level    slog.Level
	LevelSet bool

	// Attrs are caller supplied attributes, included when the resolved
	// entry captures locals.
	Attrs []slog.Attr

	// Ctx optionally carries an ambient namespace and attributes.
	Ctx context.Context

	// PC is the program counter of the constructing call site.
	PC uintptr
}

// CallerPC returns the program counter skip frames above the caller
// of CallerPC. A skip of 1 identifies the caller's caller.
func CallerPC(skip int) uintptr {
	var pcs [1]uintptr
	n := runtime.Callers(skip+2, pcs[:])
	if n == 0 {
		return 0
	}
	return pcs[0]
}

// NamespaceForPC derives a dotted namespace from the package import
// path of the function containing pc, "example.com/svc/db" becomes
// "example.com.svc.db".
func NamespaceForPC(pc uintptr) string {
	frame := frameFor(pc)
	if frame.Function == "" {
		return ""
	}
	return strings.ReplaceAll(packageOf(frame.Function), "/", ".")
}

// packageOf extracts the package import path from a fully qualified
// function name such as "example.com/svc/db.(*Pool).Get".
func packageOf(function string) string {
	slash := strings.LastIndexByte(function, '/')
	dot := strings.IndexByte(function[slash+1:], '.')
	if dot < 0 {
		return function
	}
	return function[:slash+1+dot]
}

// shortFunction trims the package path qualifier from a fully
// qualified function name, leaving "db.(*Pool).Get".
func shortFunction(function string) string {
	slash := strings.LastIndexByte(function, '/')
	return function[slash+1:]
}

func frameFor(pc uintptr) runtime.Frame {
	if pc == 0 {
		return runtime.Frame{}
	}
	frames := runtime.CallersFrames([]uintptr{pc})
	frame, _ := frames.Next()
	return frame
}

func defaultLevel(kind observe.Kind) slog.Level {
	if kind == observe.KindFailure {
		return slog.LevelError
	}
	return slog.LevelWarn
}

func kindPhrase(kind observe.Kind) string {
	if kind == observe.KindFailure {
		return "result error"
	}
	return "option absence"
}

// Unhappy reports a non quiet unhappy construction through the
// store's sink and observer.
//
// It never panics and never returns an error. A construction must not
// fail, or even appear to fail, because reporting it did.
func Unhappy(s *Store, kind observe.Kind, msg string, payloadErr error, opts Options) {
	if opts.Quiet {
		return
	}
	defer func() {
		recover()
	}()

	ns := resolveNamespace(opts)
	entry := s.Resolve(ns)
	if !entry.Settings.Enabled {
		return
	}

	level := defaultLevel(kind)
	if opts.LevelSet {
		level = opts.Level
	}
	if level < entry.Settings.Level {
		return
	}

	ctx := opts.Ctx
	if ctx == nil {
		ctx = context.Background()
	}

	rec := buildRecord(kind, msg, payloadErr, ns, level, entry, opts)

	sink := s.Handler()
	if sink.Enabled(ctx, level) {
		handle(ctx, sink, rec)
	}
	notify(s.Observer(), observe.Event{
		Kind:      kind,
		Namespace: ns,
		Level:     level,
		Message:   rec.Message,
	})
}

// Log reports library bookkeeping, retry attempts and configuration
// reloads, through the same store, threshold, sink and observer
// pipeline as construction events. Like Unhappy it never fails.
func Log(s *Store, ctx context.Context, kind observe.Kind, namespace string, level slog.Level, msg string, attrs ...slog.Attr) {
	defer func() {
		recover()
	}()

	entry := s.Resolve(namespace)
	if !entry.Settings.Enabled || level < entry.Settings.Level {
		return
	}

	if ctx == nil {
		ctx = context.Background()
	}

	rec := slog.NewRecord(time.Now(), level, msg, 0)
	if namespace != "" {
		rec.AddAttrs(logattr.Namespace(namespace))
	}
	rec.AddAttrs(attrs...)

	sink := s.Handler()
	if sink.Enabled(ctx, level) {
		handle(ctx, sink, rec)
	}
	notify(s.Observer(), observe.Event{
		Kind:      kind,
		Namespace: namespace,
		Level:     level,
		Message:   msg,
	})
}

func resolveNamespace(opts Options) string {
	if opts.Namespace != "" {
		return opts.Namespace
	}
	if opts.Ctx != nil {
		ns, ok := NamespaceFromContext(opts.Ctx)
		if ok {
			return ns
		}
	}
	return NamespaceForPC(opts.PC)
}

func buildRecord(kind observe.Kind, msg string, payloadErr error, ns string, level slog.Level, entry Entry, opts Options) slog.Record {
	settings := entry.Settings
	frame := frameFor(opts.PC)

	// The record PC drives source reporting in AddSource handlers.
	var srcPC uintptr
	if settings.CaptureFilename || settings.CaptureLineno {
		srcPC = opts.PC
	}

	rec := slog.NewRecord(time.Now(), level, message(kind, msg, ns, frame, entry), srcPC)

	attrs := make([]slog.Attr, 0, 8)
	if ns != "" {
		attrs = append(attrs, logattr.Namespace(ns))
	}
	if payloadErr != nil {
		attrs = append(attrs, logattr.Error(payloadErr))
	} else if kind == observe.KindAbsence {
		attrs = append(attrs, logattr.Reason(msg))
	}
	if settings.CaptureFunctionName && frame.Function != "" {
		attrs = append(attrs, logattr.Function(shortFunction(frame.Function)))
	}
	if settings.CaptureFilename && frame.File != "" {
		attrs = append(attrs, logattr.File(filepath.Base(frame.File)))
	}
	if settings.CaptureLineno && frame.Line > 0 {
		attrs = append(attrs, logattr.Line(frame.Line))
	}
	if settings.CaptureLocals {
		if opts.Ctx != nil {
			attrs = append(attrs, AttrsFromContext(opts.Ctx)...)
		}
		attrs = append(attrs, opts.Attrs...)
	}
	rec.AddAttrs(attrs...)
	return rec
}

// templateData is the field set a custom format template is executed
// against. Call site fields honor the entry's capture flags.
type templateData struct {
	Kind      string
	Namespace string
	Message   string
	Function  string
	File      string
	Line      int
}

func message(kind observe.Kind, msg, ns string, frame runtime.Frame, entry Entry) string {
	settings := entry.Settings
	if entry.Tmpl != nil {
		data := templateData{
			Kind:      string(kind),
			Namespace: ns,
			Message:   msg,
		}
		if settings.CaptureFunctionName && frame.Function != "" {
			data.Function = shortFunction(frame.Function)
		}
		if settings.CaptureFilename && frame.File != "" {
			data.File = filepath.Base(frame.File)
		}
		if settings.CaptureLineno {
			data.Line = frame.Line
		}

		var sb strings.Builder
		err := entry.Tmpl.Execute(&sb, data)
		if err == nil {
			return sb.String()
		}
		// Fall back to the built-in format on execution failure.
	}

	loc := location(settings, frame)
	if loc == "" {
		return fmt.Sprintf("%s: %s", kindPhrase(kind), msg)
	}
	return fmt.Sprintf("%s in %s: %s", kindPhrase(kind), loc, msg)
}

func location(settings Settings, frame runtime.Frame) string {
	var sb strings.Builder
	if settings.CaptureFunctionName && frame.Function != "" {
		sb.WriteString(shortFunction(frame.Function))
	}
	if settings.CaptureLineno && frame.Line > 0 {
		if sb.Len() > 0 {
			sb.WriteByte(':')
		}
		sb.WriteString(strconv.Itoa(frame.Line))
	}
	return sb.String()
}

func handle(ctx context.Context, h slog.Handler, rec slog.Record) {
	defer func() {
		recover()
	}()
	_ = h.Handle(ctx, rec)
}

func notify(o observe.Observer, e observe.Event) {
	defer func() {
		recover()
	}()
	o.Observe(e)
}
