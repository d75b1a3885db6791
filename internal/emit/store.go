// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package emit

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/z5labs/candor/observe"
)

// Store holds the process wide reporting state, the global entry,
// per namespace overrides, the sink and the observer.
//
// A Store is safe for concurrent use. Reads take a shared lock so
// constructions on different goroutines never serialize against each
// other, only against reconfiguration.
type Store struct {
	mu        sync.RWMutex
	global    Entry
	overrides map[string]Override
	handler   slog.Handler
	observer  observe.Observer
}

// NewStore returns a Store populated with the built-in defaults.
func NewStore() *Store {
	return &Store{
		global:    Entry{Settings: Defaults()},
		overrides: make(map[string]Override),
		observer:  observe.NoopObserver{},
	}
}

var defaultStore = NewStore()

// Default returns the process wide Store shared by every container
// construction.
func Default() *Store {
	return defaultStore
}

// Apply merges the validated global and per namespace overrides into
// the store under a single write lock. Callers must have fully
// validated every override first, Apply itself cannot fail and so can
// never partially apply.
func (s *Store) Apply(global Override, namespaces map[string]Override) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.global = global.apply(s.global)
	for ns, ov := range namespaces {
		s.overrides[ns] = s.overrides[ns].layer(ov)
	}
}

// Resolve returns the effective entry for a namespace.
//
// The override whose name is the longest dot separated prefix of the
// namespace wins, so "svc.db.pool" prefers an override named "svc.db"
// over one named "svc". Namespaces without a matching override, and
// the empty namespace, resolve to the global entry.
func (s *Store) Resolve(namespace string) Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e := s.global
	if namespace == "" || len(s.overrides) == 0 {
		return e
	}

	var best string
	found := false
	for name := range s.overrides {
		if !prefixMatch(namespace, name) {
			continue
		}
		if !found || len(name) > len(best) {
			best = name
			found = true
		}
	}
	if !found {
		return e
	}
	return s.overrides[best].apply(e)
}

// prefixMatch reports whether name is namespace itself or a dot
// separated ancestor of it.
func prefixMatch(namespace, name string) bool {
	if !strings.HasPrefix(namespace, name) {
		return false
	}
	return len(namespace) == len(name) || namespace[len(name)] == '.'
}

// SetHandler replaces the sink. A nil handler restores the default
// sink, which is resolved from [slog.Default] at emission time.
func (s *Store) SetHandler(h slog.Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handler = h
}

// Handler returns the sink records are emitted to.
func (s *Store) Handler() slog.Handler {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.handler != nil {
		return s.handler
	}
	return slog.Default().Handler()
}

// SetObserver replaces the observer. A nil observer restores the noop
// observer.
func (s *Store) SetObserver(o observe.Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o == nil {
		o = observe.NoopObserver{}
	}
	s.observer = o
}

// Observer returns the registered observer.
func (s *Store) Observer() observe.Observer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.observer
}

// Reset restores the built-in defaults and drops every namespace
// override, the sink and the observer.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.global = Entry{Settings: Defaults()}
	s.overrides = make(map[string]Override)
	s.handler = nil
	s.observer = observe.NoopObserver{}
}
