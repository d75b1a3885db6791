// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package option

import "cmp"

// Equal reports whether two options hold the same variant with equal
// payloads. A present and an absent option are never equal. Two
// absent options are equal only when their reasons match.
func Equal[T comparable](a, b Option[T]) bool {
	if a.present != b.present {
		return false
	}
	if a.present {
		return a.value == b.value
	}
	return a.reason == b.reason
}

// Compare orders two options. An absent option sorts before any
// present one, resolved from the variants alone without inspecting
// payloads. Two present options compare their values, two absent
// options compare their reasons.
func Compare[T cmp.Ordered](a, b Option[T]) int {
	switch {
	case a.present && !b.present:
		return 1
	case !a.present && b.present:
		return -1
	case a.present:
		return cmp.Compare(a.value, b.value)
	default:
		return cmp.Compare(a.reason, b.reason)
	}
}
