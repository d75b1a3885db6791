// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/z5labs/candor/internal/try"
	"github.com/z5labs/candor/result"

	"gopkg.in/yaml.v3"
)

// InvalidYamlError occurs if a settings document contains invalid YAML.
type InvalidYamlError struct {
	cause error
}

// Error implements the error interface.
func (e InvalidYamlError) Error() string {
	return fmt.Sprintf("invalid yaml: %s", e.cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e InvalidYamlError) Unwrap() error {
	return e.cause
}

// FromReader parses a YAML settings document from r and applies it
// through the same validated merge as [Configure]. If r is an
// [io.Closer] it is closed before returning.
//
// The document may either be the settings mapping itself or a larger
// document carrying the mapping under a top level "candor" key:
//
//	candor:
//	  level: ERROR
//	  libraries:
//	    svc.db:
//	      enabled: false
func FromReader(r io.Reader) result.Result[Settings] {
	s, err := applyReader(r)
	if err != nil {
		return result.Err[Settings](err, result.In(ownNamespace))
	}
	return result.Ok(s)
}

// FromFS opens path inside fsys and applies it like [FromReader].
func FromFS(fsys fs.FS, path string) result.Result[Settings] {
	s, err := applyFS(fsys, path)
	if err != nil {
		return result.Err[Settings](err, result.In(ownNamespace))
	}
	return result.Ok(s)
}

// FromFile opens path on the local filesystem and applies it like
// [FromReader].
func FromFile(path string) result.Result[Settings] {
	s, err := applyFile(path)
	if err != nil {
		return result.Err[Settings](err, result.In(ownNamespace))
	}
	return result.Ok(s)
}

func applyReader(r io.Reader) (Settings, error) {
	m, err := parseYaml(r)
	if err != nil {
		return Settings{}, err
	}
	return apply(section(m))
}

func applyFS(fsys fs.FS, path string) (Settings, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return Settings{}, err
	}
	return applyReader(f)
}

func applyFile(path string) (Settings, error) {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	return applyFS(os.DirFS(dir), name)
}

func parseYaml(r io.Reader) (_ map[string]any, err error) {
	defer try.Close(&err, r)

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	m := make(map[string]any)
	err = yaml.Unmarshal(b, &m)
	if err != nil {
		return nil, InvalidYamlError{cause: err}
	}
	return m, nil
}

// section locates the settings mapping inside a parsed document. A
// document without a "candor" mapping is treated as the settings
// mapping itself.
func section(m map[string]any) map[string]any {
	v, ok := m["candor"]
	if !ok {
		return m
	}
	sub, ok := v.(map[string]any)
	if !ok {
		return m
	}
	return sub
}
