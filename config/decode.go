// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/z5labs/candor/internal/emit"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
)

// DecodeError occurs when a settings value cannot be decoded into its
// schema type.
type DecodeError struct {
	cause error
}

// Error implements the error interface.
func (e DecodeError) Error() string {
	return fmt.Sprintf("malformed settings: %s", e.cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e DecodeError) Unwrap() error {
	return e.cause
}

// UnknownKeysError occurs when a settings mapping carries keys the
// schema does not define.
type UnknownKeysError struct {
	Keys []string
}

// Error implements the error interface.
func (e UnknownKeysError) Error() string {
	return fmt.Sprintf("unknown settings keys: %s", strings.Join(e.Keys, ", "))
}

// InvalidLevelError occurs when a level value is not one of the
// recognized names, DEBUG, INFO, WARN, WARNING, ERROR or CRITICAL.
type InvalidLevelError struct {
	Level string
}

// Error implements the error interface.
func (e InvalidLevelError) Error() string {
	return fmt.Sprintf("unrecognized level: %q", e.Level)
}

// InvalidFormatError occurs when a format value does not parse as a
// text/template or references fields outside the published set.
type InvalidFormatError struct {
	cause error
}

// Error implements the error interface.
func (e InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format template: %s", e.cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e InvalidFormatError) Unwrap() error {
	return e.cause
}

// librarySettings is the decode carrier for one namespace's partial
// settings. Pointer fields distinguish absent keys from explicit zero
// values, absent keys inherit.
type librarySettings struct {
	Enabled             *bool   `config:"enabled"`
	Level               *string `config:"level" validate:"omitempty,oneof=DEBUG INFO WARN WARNING ERROR CRITICAL"`
	Format              *string `config:"format"`
	CaptureFunctionName *bool   `config:"capture_function_name"`
	CaptureFilename     *bool   `config:"capture_filename"`
	CaptureLineno       *bool   `config:"capture_lineno"`
	CaptureLocals       *bool   `config:"capture_locals"`
}

// settingsDocument is the decode carrier for a full settings mapping,
// the global keys plus the per namespace libraries section.
type settingsDocument struct {
	Enabled             *bool                      `config:"enabled"`
	Level               *string                    `config:"level" validate:"omitempty,oneof=DEBUG INFO WARN WARNING ERROR CRITICAL"`
	Format              *string                    `config:"format"`
	CaptureFunctionName *bool                      `config:"capture_function_name"`
	CaptureFilename     *bool                      `config:"capture_filename"`
	CaptureLineno       *bool                      `config:"capture_lineno"`
	CaptureLocals       *bool                      `config:"capture_locals"`
	Libraries           map[string]librarySettings `config:"libraries" validate:"omitempty,dive"`
}

var validate = validator.New()

// decode turns a raw settings mapping into fully validated store
// overrides. It returns an error before anything touches the store,
// so a failed decode can never partially apply.
func decode(settings map[string]any) (emit.Override, map[string]emit.Override, error) {
	var doc settingsDocument
	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:  "config",
		Result:   &doc,
		Metadata: &md,
	})
	if err != nil {
		return emit.Override{}, nil, DecodeError{cause: err}
	}

	err = dec.Decode(settings)
	if err != nil {
		return emit.Override{}, nil, DecodeError{cause: err}
	}
	if len(md.Unused) > 0 {
		slices.Sort(md.Unused)
		return emit.Override{}, nil, UnknownKeysError{Keys: md.Unused}
	}

	normalizeLevels(&doc)
	err = validate.Struct(doc)
	if err != nil {
		return emit.Override{}, nil, levelError(err)
	}

	global, err := override(librarySettings{
		Enabled:             doc.Enabled,
		Level:               doc.Level,
		Format:              doc.Format,
		CaptureFunctionName: doc.CaptureFunctionName,
		CaptureFilename:     doc.CaptureFilename,
		CaptureLineno:       doc.CaptureLineno,
		CaptureLocals:       doc.CaptureLocals,
	})
	if err != nil {
		return emit.Override{}, nil, err
	}

	libraries := make(map[string]emit.Override, len(doc.Libraries))
	for namespace, lib := range doc.Libraries {
		ov, err := override(lib)
		if err != nil {
			return emit.Override{}, nil, err
		}
		libraries[namespace] = ov
	}
	return global, libraries, nil
}

// normalizeLevels upper cases every level in place so level names are
// accepted case insensitively.
func normalizeLevels(doc *settingsDocument) {
	upper := func(p *string) {
		if p != nil {
			*p = strings.ToUpper(*p)
		}
	}
	upper(doc.Level)
	for _, lib := range doc.Libraries {
		upper(lib.Level)
	}
}

// levelError maps a validator failure onto the level it rejected. The
// carriers only validate level fields so any field error is one.
func levelError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if s, ok := verrs[0].Value().(string); ok {
			return InvalidLevelError{Level: s}
		}
	}
	return DecodeError{cause: err}
}

// override converts a validated carrier into a store override,
// parsing the level and format along the way.
func override(lib librarySettings) (emit.Override, error) {
	ov := emit.Override{
		Enabled:             lib.Enabled,
		CaptureFunctionName: lib.CaptureFunctionName,
		CaptureFilename:     lib.CaptureFilename,
		CaptureLineno:       lib.CaptureLineno,
		CaptureLocals:       lib.CaptureLocals,
	}

	if lib.Level != nil {
		level, err := parseLevel(*lib.Level)
		if err != nil {
			return emit.Override{}, err
		}
		ov.Level = &level
	}

	if lib.Format != nil {
		ov.Format = lib.Format
		if *lib.Format != "" {
			tmpl, err := emit.ParseFormat(*lib.Format)
			if err != nil {
				return emit.Override{}, InvalidFormatError{cause: err}
			}
			ov.Tmpl = tmpl
		}
	}
	return ov, nil
}

// parseLevel maps a normalized level name onto a slog level. CRITICAL
// has no slog equivalent and sits four above [slog.LevelError], the
// same distance which separates the built-in levels.
func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN", "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	case "CRITICAL":
		return slog.LevelError + 4, nil
	default:
		return 0, InvalidLevelError{Level: s}
	}
}
