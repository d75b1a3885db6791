// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package observe defines the hook types through which unhappy path
// activity is reported to user code.
//
// An [Observer] registered with the configuration store receives one
// [Event] per reported absence, failure or retry bookkeeping record.
// Observers run synchronously on the constructing goroutine, so
// implementations should be fast and must not block.
package observe

import "log/slog"

// Kind identifies which unhappy path produced an event.
type Kind string

const (
	// KindAbsence marks the construction of an absent option value.
	KindAbsence Kind = "absence"

	// KindFailure marks the construction of a failed result value.
	KindFailure Kind = "failure"

	// KindRetry marks retry bookkeeping records.
	KindRetry Kind = "retry"

	// KindReload marks configuration reload bookkeeping records.
	KindReload Kind = "reload"
)

// Event describes a single reported unhappy path occurrence.
type Event struct {
	Kind      Kind
	Namespace string
	Level     slog.Level
	Message   string
}

// Observer receives unhappy path events.
//
// A panicking observer never fails the construction which triggered it.
type Observer interface {
	Observe(Event)
}

// NoopObserver implements Observer by discarding every event.
type NoopObserver struct{}

// Observe implements the [Observer] interface.
func (NoopObserver) Observe(Event) {}

// MultiObserver fans each event out to multiple observers.
type MultiObserver struct {
	Observers []Observer
}

// Observe implements the [Observer] interface.
func (m MultiObserver) Observe(e Event) {
	for _, o := range m.Observers {
		if o != nil {
			o.Observe(e)
		}
	}
}
