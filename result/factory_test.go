// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package result_test

import (
	"errors"
	"testing"

	"github.com/z5labs/candor/result"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("will wrap a successful pair", func(t *testing.T) {
		h := record(t)

		r := result.New(42, nil)
		require.Equal(t, 42, r.Unwrap())
		require.Empty(t, h.all())
	})

	t.Run("will wrap a failed pair", func(t *testing.T) {
		h := record(t)

		failErr := errors.New("connection refused")
		r := result.New(0, failErr)

		require.ErrorIs(t, r.UnwrapErr(), failErr)

		records := h.all()
		require.Len(t, records, 1)
		require.Contains(t, attrsOf(records[0])["function"].String(), "TestNew")
	})

	t.Run("will not report when quiet", func(t *testing.T) {
		h := record(t)

		result.New(0, errors.New("connection refused"), result.Quiet())
		require.Empty(t, h.all())
	})
}

func TestTry(t *testing.T) {
	t.Run("will wrap a successful call", func(t *testing.T) {
		h := record(t)

		r := result.Try(func() (int, error) {
			return 42, nil
		})
		require.Equal(t, 42, r.Unwrap())
		require.Empty(t, h.all())
	})

	t.Run("will wrap a returned error", func(t *testing.T) {
		h := record(t)

		failErr := errors.New("connection refused")
		r := result.Try(func() (int, error) {
			return 0, failErr
		})

		require.ErrorIs(t, r.UnwrapErr(), failErr)
		require.Len(t, h.all(), 1)
	})

	t.Run("will capture a panic", func(t *testing.T) {
		h := record(t)

		r := result.Try(func() (int, error) {
			panic("boom")
		})

		require.True(t, r.IsErr())
		require.Contains(t, r.UnwrapErr().Error(), "recovered from panic: boom")
		require.Len(t, h.all(), 1)
	})

	t.Run("will keep an error panic reachable", func(t *testing.T) {
		silence(t)

		failErr := errors.New("worse")
		r := result.Try(func() (int, error) {
			panic(failErr)
		})

		require.ErrorIs(t, r.UnwrapErr(), failErr)
	})
}

func TestFromPtr(t *testing.T) {
	t.Run("will dereference the pointer", func(t *testing.T) {
		h := record(t)

		v := 42
		r := result.FromPtr(&v, nil)
		require.Equal(t, 42, r.Unwrap())
		require.Empty(t, h.all())
	})

	t.Run("will fail on a nil pointer", func(t *testing.T) {
		h := record(t)

		r := result.FromPtr[int](nil, nil)
		require.ErrorIs(t, r.UnwrapErr(), result.ErrNilPointer)
		require.Len(t, h.all(), 1)
	})

	t.Run("will wrap the supplied error", func(t *testing.T) {
		silence(t)

		missingErr := errors.New("user not loaded")
		r := result.FromPtr[int](nil, missingErr)
		require.ErrorIs(t, r.UnwrapErr(), missingErr)
	})
}

func TestFromPredicate(t *testing.T) {
	positive := func(n int) bool {
		return n > 0
	}

	t.Run("will accept a passing value", func(t *testing.T) {
		h := record(t)

		r := result.FromPredicate(42, positive, nil)
		require.Equal(t, 42, r.Unwrap())
		require.Empty(t, h.all())
	})

	t.Run("will reject with the generated error", func(t *testing.T) {
		h := record(t)

		r := result.FromPredicate(-1, positive, nil)
		require.ErrorIs(t, r.UnwrapErr(), result.ErrFiltered)
		require.Len(t, h.all(), 1)
	})

	t.Run("will reject with the supplied error", func(t *testing.T) {
		silence(t)

		negErr := errors.New("negative value")
		r := result.FromPredicate(-1, positive, negErr)
		require.ErrorIs(t, r.UnwrapErr(), negErr)
	})
}

func TestValidator(t *testing.T) {
	t.Run("will validate repeatedly", func(t *testing.T) {
		h := record(t)

		notPositive := errors.New("not positive")
		positive := result.Validator(func(n int) bool {
			return n > 0
		}, notPositive)

		require.Equal(t, 1, positive(1).Unwrap())
		require.Equal(t, 2, positive(2).Unwrap())
		require.ErrorIs(t, positive(-1).UnwrapErr(), notPositive)
		require.ErrorIs(t, positive(0).UnwrapErr(), notPositive)

		records := h.all()
		require.Len(t, records, 2)
	})

	t.Run("will report from the call site", func(t *testing.T) {
		h := record(t)

		reject := result.Validator(func(n int) bool {
			return false
		}, nil)
		reject(1)

		records := h.all()
		require.Len(t, records, 1)
		require.Contains(t, attrsOf(records[0])["function"].String(), "TestValidator")
	})

	t.Run("will fall back to the generated error", func(t *testing.T) {
		silence(t)

		reject := result.Validator(func(n int) bool {
			return false
		}, nil)
		require.ErrorIs(t, reject(1).UnwrapErr(), result.ErrFiltered)
	})
}
