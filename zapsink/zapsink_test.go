// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package zapsink

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/z5labs/candor/config"
	"github.com/z5labs/candor/result"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestHandler_Handle(t *testing.T) {
	t.Run("will write the record through the core", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		log := slog.New(New(zap.New(core)))

		log.Info("hello", slog.String("user_id", "u-1"), slog.Int("n", 3))

		entries := logs.All()
		require.Len(t, entries, 1)
		require.Equal(t, "hello", entries[0].Message)
		require.Equal(t, zapcore.InfoLevel, entries[0].Level)

		fields := entries[0].ContextMap()
		require.Equal(t, "u-1", fields["user_id"])
		require.EqualValues(t, 3, fields["n"])
	})

	t.Run("will drop records below the core level", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		log := slog.New(New(zap.New(core)))

		log.Info("too quiet")
		require.Empty(t, logs.All())
	})

	t.Run("will nest group attributes", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		log := slog.New(New(zap.New(core)))

		log.Info("hello", slog.Group("req", slog.String("id", "r-1")))

		entries := logs.All()
		require.Len(t, entries, 1)
		require.Equal(t, map[string]any{"id": "r-1"}, entries[0].ContextMap()["req"])
	})

	t.Run("will inline a group without a key", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		log := slog.New(New(zap.New(core)))

		log.Info("hello", slog.Group("", slog.String("id", "r-1")))

		entries := logs.All()
		require.Len(t, entries, 1)
		require.Equal(t, "r-1", entries[0].ContextMap()["id"])
	})

	t.Run("will receive reported failures", func(t *testing.T) {
		t.Cleanup(config.Reset)

		core, logs := observer.New(zapcore.DebugLevel)
		config.SetHandler(New(zap.New(core)))

		result.Err[int](errors.New("connection refused"), result.In("svc.db"))

		entries := logs.All()
		require.Len(t, entries, 1)

		entry := entries[0]
		require.Equal(t, zapcore.ErrorLevel, entry.Level)
		require.Contains(t, entry.Message, "connection refused")

		fields := entry.ContextMap()
		require.Equal(t, "svc.db", fields["namespace"])
		require.Equal(t, "connection refused", fields["error"])

		require.True(t, entry.Caller.Defined)
		require.Contains(t, entry.Caller.File, "zapsink_test.go")
	})
}

func TestHandler_Enabled(t *testing.T) {
	t.Run("will honor the core level", func(t *testing.T) {
		core, _ := observer.New(zapcore.WarnLevel)
		h := New(zap.New(core))

		require.False(t, h.Enabled(context.Background(), slog.LevelInfo))
		require.True(t, h.Enabled(context.Background(), slog.LevelWarn))
		require.True(t, h.Enabled(context.Background(), slog.LevelError))
	})
}

func TestHandler_WithAttrs(t *testing.T) {
	t.Run("will carry the attributes into every record", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		log := slog.New(New(zap.New(core))).With(slog.String("app", "candor"))

		log.Info("one")
		log.Info("two")

		entries := logs.All()
		require.Len(t, entries, 2)
		require.Equal(t, "candor", entries[0].ContextMap()["app"])
		require.Equal(t, "candor", entries[1].ContextMap()["app"])
	})
}

func TestHandler_WithGroup(t *testing.T) {
	t.Run("will nest later attributes under the group", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		log := slog.New(New(zap.New(core))).WithGroup("req")

		log.Info("hello", slog.String("id", "r-1"))

		entries := logs.All()
		require.Len(t, entries, 1)
		require.Equal(t, map[string]any{"id": "r-1"}, entries[0].ContextMap()["req"])
	})
}

func TestZapLevel(t *testing.T) {
	testCases := []struct {
		name     string
		level    slog.Level
		expected zapcore.Level
	}{
		{
			name:     "debug",
			level:    slog.LevelDebug,
			expected: zapcore.DebugLevel,
		},
		{
			name:     "between debug and info",
			level:    slog.LevelDebug + 2,
			expected: zapcore.DebugLevel,
		},
		{
			name:     "info",
			level:    slog.LevelInfo,
			expected: zapcore.InfoLevel,
		},
		{
			name:     "warn",
			level:    slog.LevelWarn,
			expected: zapcore.WarnLevel,
		},
		{
			name:     "error",
			level:    slog.LevelError,
			expected: zapcore.ErrorLevel,
		},
		{
			name:     "critical",
			level:    slog.LevelError + 4,
			expected: zapcore.ErrorLevel,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, zapLevel(tc.level))
		})
	}
}
