// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package emit

import (
	"log/slog"
	"text/template"
)

// Settings is the effective reporting configuration for one namespace.
type Settings struct {
	// Enabled turns reporting on or off for the namespace.
	Enabled bool

	// Level is the minimum severity a record must carry to be emitted.
	Level slog.Level

	// Format is an optional text/template message template. The empty
	// string selects the built-in message format.
	Format string

	// CaptureFunctionName includes the constructing function in records.
	CaptureFunctionName bool

	// CaptureFilename includes the constructing file in records.
	CaptureFilename bool

	// CaptureLineno includes the constructing line in records.
	CaptureLineno bool

	// CaptureLocals includes caller supplied and ambient context
	// attributes in records.
	CaptureLocals bool
}

// Defaults returns the built-in global settings.
func Defaults() Settings {
	return Settings{
		Enabled:             true,
		Level:               slog.LevelWarn,
		CaptureFunctionName: true,
		CaptureFilename:     true,
		CaptureLineno:       true,
		CaptureLocals:       false,
	}
}

// Entry pairs effective settings with the parsed format template used
// during emission. A nil Tmpl selects the built-in message format.
type Entry struct {
	Settings Settings
	Tmpl     *template.Template
}

// Override is a partial Settings. Nil fields inherit from the entry
// the override is applied on top of.
type Override struct {
	Enabled             *bool
	Level               *slog.Level
	Format              *string
	Tmpl                *template.Template
	CaptureFunctionName *bool
	CaptureFilename     *bool
	CaptureLineno       *bool
	CaptureLocals       *bool
}

func (o Override) apply(e Entry) Entry {
	if o.Enabled != nil {
		e.Settings.Enabled = *o.Enabled
	}
	if o.Level != nil {
		e.Settings.Level = *o.Level
	}
	if o.Format != nil {
		e.Settings.Format = *o.Format
		e.Tmpl = o.Tmpl
	}
	if o.CaptureFunctionName != nil {
		e.Settings.CaptureFunctionName = *o.CaptureFunctionName
	}
	if o.CaptureFilename != nil {
		e.Settings.CaptureFilename = *o.CaptureFilename
	}
	if o.CaptureLineno != nil {
		e.Settings.CaptureLineno = *o.CaptureLineno
	}
	if o.CaptureLocals != nil {
		e.Settings.CaptureLocals = *o.CaptureLocals
	}
	return e
}

// layer returns a copy of o with every non-nil field of next taking
// precedence.
func (o Override) layer(next Override) Override {
	if next.Enabled != nil {
		o.Enabled = next.Enabled
	}
	if next.Level != nil {
		o.Level = next.Level
	}
	if next.Format != nil {
		o.Format = next.Format
		o.Tmpl = next.Tmpl
	}
	if next.CaptureFunctionName != nil {
		o.CaptureFunctionName = next.CaptureFunctionName
	}
	if next.CaptureFilename != nil {
		o.CaptureFilename = next.CaptureFilename
	}
	if next.CaptureLineno != nil {
		o.CaptureLineno = next.CaptureLineno
	}
	if next.CaptureLocals != nil {
		o.CaptureLocals = next.CaptureLocals
	}
	return o
}
