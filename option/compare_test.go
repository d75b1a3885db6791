// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package option_test

import (
	"slices"
	"testing"

	"github.com/z5labs/candor/option"

	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	testCases := []struct {
		name     string
		a        option.Option[int]
		b        option.Option[int]
		expected bool
	}{
		{
			name:     "equal present values",
			a:        option.Some(1),
			b:        option.Some(1),
			expected: true,
		},
		{
			name:     "different present values",
			a:        option.Some(1),
			b:        option.Some(2),
			expected: false,
		},
		{
			name:     "present and absent",
			a:        option.Some(1),
			b:        option.None[int]("gone", option.Quiet()),
			expected: false,
		},
		{
			name:     "absences with the same reason",
			a:        option.None[int]("gone", option.Quiet()),
			b:        option.None[int]("gone", option.Quiet()),
			expected: true,
		},
		{
			name:     "absences with different reasons",
			a:        option.None[int]("gone", option.Quiet()),
			b:        option.None[int]("missing", option.Quiet()),
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, option.Equal(tc.a, tc.b))
			require.Equal(t, tc.expected, option.Equal(tc.b, tc.a))
		})
	}
}

func TestCompare(t *testing.T) {
	testCases := []struct {
		name     string
		a        option.Option[int]
		b        option.Option[int]
		expected int
	}{
		{
			name:     "absent before present",
			a:        option.None[int]("gone", option.Quiet()),
			b:        option.Some(-100),
			expected: -1,
		},
		{
			name:     "present after absent",
			a:        option.Some(-100),
			b:        option.None[int]("gone", option.Quiet()),
			expected: 1,
		},
		{
			name:     "present values in order",
			a:        option.Some(1),
			b:        option.Some(2),
			expected: -1,
		},
		{
			name:     "equal present values",
			a:        option.Some(3),
			b:        option.Some(3),
			expected: 0,
		},
		{
			name:     "absent reasons in order",
			a:        option.None[int]("alpha", option.Quiet()),
			b:        option.None[int]("beta", option.Quiet()),
			expected: -1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, option.Compare(tc.a, tc.b))
		})
	}

	t.Run("will order a mixed slice", func(t *testing.T) {
		opts := []option.Option[int]{
			option.Some(5),
			option.None[int]("b", option.Quiet()),
			option.Some(1),
			option.None[int]("a", option.Quiet()),
		}

		slices.SortFunc(opts, option.Compare)

		require.Equal(t, "None(a)", opts[0].String())
		require.Equal(t, "None(b)", opts[1].String())
		require.Equal(t, "Some(1)", opts[2].String())
		require.Equal(t, "Some(5)", opts[3].String())
	})
}
