// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

type closeRecorder struct {
	io.Reader
	closed bool
}

func (r *closeRecorder) Close() error {
	r.closed = true
	return nil
}

func TestFromReader(t *testing.T) {
	t.Run("will apply a root level mapping", func(t *testing.T) {
		t.Cleanup(Reset)
		SetHandler(discardHandler())

		res := FromReader(strings.NewReader(`
level: ERROR
libraries:
  svc.db:
    enabled: false
`))
		require.True(t, res.IsOk())
		require.Equal(t, slog.LevelError, Get("").Level)
		require.False(t, Get("svc.db").Enabled)
	})

	t.Run("will extract the candor section from a larger document", func(t *testing.T) {
		t.Cleanup(Reset)
		SetHandler(discardHandler())

		res := FromReader(strings.NewReader(`
candor:
  level: ERROR
other_app:
  retries: 3
`))
		require.True(t, res.IsOk())
		require.Equal(t, slog.LevelError, Get("").Level)
	})

	t.Run("will close the reader", func(t *testing.T) {
		t.Cleanup(Reset)
		SetHandler(discardHandler())

		r := &closeRecorder{Reader: strings.NewReader("level: INFO")}
		res := FromReader(r)
		require.True(t, res.IsOk())
		require.True(t, r.closed)
	})

	t.Run("if the document is not valid yaml", func(t *testing.T) {
		t.Run("will return an InvalidYamlError", func(t *testing.T) {
			t.Cleanup(Reset)
			SetHandler(discardHandler())

			res := FromReader(strings.NewReader("level: [unclosed"))
			require.True(t, res.IsErr())

			var yerr InvalidYamlError
			require.ErrorAs(t, res.UnwrapErr(), &yerr)
		})
	})

	t.Run("if the document fails validation", func(t *testing.T) {
		t.Run("will apply none of it", func(t *testing.T) {
			t.Cleanup(Reset)
			SetHandler(discardHandler())

			res := FromReader(strings.NewReader(`
level: DEBUG
libraries:
  svc:
    level: LOUD
`))
			require.True(t, res.IsErr())
			require.Equal(t, slog.LevelWarn, Get("").Level)
		})
	})
}

func TestFromFS(t *testing.T) {
	t.Run("will apply a file from the fs.FS", func(t *testing.T) {
		t.Cleanup(Reset)
		SetHandler(discardHandler())

		fsys := fstest.MapFS{
			"candor.yaml": &fstest.MapFile{
				Data: []byte("level: CRITICAL\n"),
			},
		}

		res := FromFS(fsys, "candor.yaml")
		require.True(t, res.IsOk())
		require.Equal(t, slog.LevelError+4, Get("").Level)
	})

	t.Run("if the file does not exist", func(t *testing.T) {
		t.Run("will return the open error", func(t *testing.T) {
			t.Cleanup(Reset)
			SetHandler(discardHandler())

			res := FromFS(fstest.MapFS{}, "missing.yaml")
			require.True(t, res.IsErr())
			require.ErrorIs(t, res.UnwrapErr(), fs.ErrNotExist)
		})
	})
}

func TestFromFile(t *testing.T) {
	t.Run("will apply a file from the local filesystem", func(t *testing.T) {
		t.Cleanup(Reset)
		SetHandler(discardHandler())

		path := filepath.Join(t.TempDir(), "candor.yaml")
		require.NoError(t, os.WriteFile(path, []byte("capture_locals: true\n"), 0o600))

		res := FromFile(path)
		require.True(t, res.IsOk())
		require.True(t, Get("").CaptureLocals)
	})

	t.Run("if the file does not exist", func(t *testing.T) {
		t.Run("will return the open error", func(t *testing.T) {
			t.Cleanup(Reset)
			SetHandler(discardHandler())

			res := FromFile(filepath.Join(t.TempDir(), "missing.yaml"))
			require.True(t, res.IsErr())
			require.ErrorIs(t, res.UnwrapErr(), fs.ErrNotExist)
		})
	})
}

func TestSection(t *testing.T) {
	testCases := []struct {
		name     string
		doc      map[string]any
		expected map[string]any
	}{
		{
			name:     "no candor key",
			doc:      map[string]any{"level": "INFO"},
			expected: map[string]any{"level": "INFO"},
		},
		{
			name: "candor mapping",
			doc: map[string]any{
				"candor": map[string]any{"level": "INFO"},
				"other":  true,
			},
			expected: map[string]any{"level": "INFO"},
		},
		{
			name:     "candor key holding a non mapping",
			doc:      map[string]any{"candor": true},
			expected: map[string]any{"candor": true},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, section(tc.doc))
		})
	}
}
