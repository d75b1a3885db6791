// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package result

import (
	"cmp"
	"errors"
	"strings"
)

// Equal reports whether two results hold the same variant with equal
// payloads. Two successes compare their values directly. Two failures
// are equal when either error wraps the other or their messages
// match.
func Equal[T comparable](a, b Result[T]) bool {
	if (a.err == nil) != (b.err == nil) {
		return false
	}
	if a.err == nil {
		return a.value == b.value
	}
	return equalErrors(a.err, b.err)
}

func equalErrors(a, b error) bool {
	if errors.Is(a, b) || errors.Is(b, a) {
		return true
	}
	return a.Error() == b.Error()
}

// Compare orders two results. The variant decides first, any failure
// sorts before any success. Two successes compare their values, two
// failures compare their messages which yields a total, if coarse,
// order.
func Compare[T cmp.Ordered](a, b Result[T]) int {
	switch {
	case a.err == nil && b.err != nil:
		return 1
	case a.err != nil && b.err == nil:
		return -1
	case a.err == nil:
		return cmp.Compare(a.value, b.value)
	default:
		return strings.Compare(a.err.Error(), b.err.Error())
	}
}
