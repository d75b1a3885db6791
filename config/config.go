// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"log/slog"

	"github.com/z5labs/candor/internal/emit"
	"github.com/z5labs/candor/observe"
	"github.com/z5labs/candor/result"
)

// ownNamespace is the namespace this package reports its own
// failures and bookkeeping under. Tune it through the libraries
// section like any other namespace.
const ownNamespace = "candor.config"

// Settings is the effective reporting configuration for one
// namespace. Values returned by [Get] are snapshots, mutating them
// has no effect on the store.
type Settings struct {
	// Enabled turns reporting on or off.
	Enabled bool

	// Level is the minimum severity an event must carry to be emitted.
	Level slog.Level

	// Format is the custom message template. The empty string selects
	// the built-in message format.
	Format string

	// CaptureFunctionName includes the constructing function in events.
	CaptureFunctionName bool

	// CaptureFilename includes the constructing file in events.
	CaptureFilename bool

	// CaptureLineno includes the constructing line in events.
	CaptureLineno bool

	// CaptureLocals includes caller supplied and ambient context
	// attributes in events.
	CaptureLocals bool
}

func fromEntry(e emit.Entry) Settings {
	return Settings{
		Enabled:             e.Settings.Enabled,
		Level:               e.Settings.Level,
		Format:              e.Settings.Format,
		CaptureFunctionName: e.Settings.CaptureFunctionName,
		CaptureFilename:     e.Settings.CaptureFilename,
		CaptureLineno:       e.Settings.CaptureLineno,
		CaptureLocals:       e.Settings.CaptureLocals,
	}
}

// Configure merges a partial settings mapping into the process wide
// store:
//
//	res := config.Configure(map[string]any{
//		"level":          "ERROR",
//		"capture_locals": true,
//		"libraries": map[string]any{
//			"svc.db": map[string]any{"enabled": false},
//		},
//	})
//
// Top level keys adjust the global entry. The "libraries" key holds
// namespace to partial settings mappings which are merged per
// namespace. Omitted keys keep their current values.
//
// The mapping is fully validated before anything is applied. An
// unknown key, a value of the wrong type, an unrecognized level name
// or a malformed format template each yield a failure wrapping a
// typed error, [UnknownKeysError], [DecodeError], [InvalidLevelError]
// or [InvalidFormatError], and leave the store untouched. A success
// wraps the effective global settings.
func Configure(settings map[string]any) result.Result[Settings] {
	s, err := apply(settings)
	if err != nil {
		return result.Err[Settings](err, result.In(ownNamespace))
	}
	return result.Ok(s)
}

func apply(settings map[string]any) (Settings, error) {
	global, libraries, err := decode(settings)
	if err != nil {
		return Settings{}, err
	}

	emit.Default().Apply(global, libraries)
	return Get(""), nil
}

// Get returns the effective settings for a namespace, resolved with
// the same longest prefix rules construction reporting uses. The
// empty namespace resolves to the global entry.
func Get(namespace string) Settings {
	return fromEntry(emit.Default().Resolve(namespace))
}

// Reset restores the built-in defaults, drops every namespace entry
// and restores the default sink and observer. It is primarily a test
// isolation surface.
func Reset() {
	emit.Default().Reset()
}

// SetHandler replaces the sink construction events are emitted to. A
// nil handler restores the default sink, which follows [slog.Default].
func SetHandler(h slog.Handler) {
	emit.Default().SetHandler(h)
}

// Handler returns the sink construction events are emitted to.
func Handler() slog.Handler {
	return emit.Default().Handler()
}

// SetObserver registers an observer which receives every construction
// event after threshold filtering, alongside the sink. A nil observer
// restores the noop observer.
func SetObserver(o observe.Observer) {
	emit.Default().SetObserver(o)
}
