// Copyright (c) 2025 JustTzyy
// SoftWear - retail inventory management core
// This source code is licensed under the MIT license found in the LICENSE file.

package auth

import (
	"sort"
	"sync"

	"github.com/JustTzyy/softwear/internal/model"
)

// Session holds zero-or-one authenticated Identity for the lifetime of the
// process. It is an explicitly-owned, injectable object rather than a package
// global: callers receive a reference to one instance per logical session.
// Transitions are total replacements; there is no partial mutation. State is
// last-write-wins with no serialization across concurrent Set calls.
type Session struct {
	mu      sync.RWMutex
	current *model.Identity
	subs    map[int]func()
	nextSub int
}

// NewSession returns an empty session holder.
func NewSession() *Session {
	return &Session{subs: make(map[int]func())}
}

// Current returns the current identity, or nil when nobody is signed in.
func (s *Session) Current() *model.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Set replaces the current identity and synchronously notifies every
// subscriber, even when the new identity equals the previous one. A new
// authentication may replace an existing identity without an intervening
// Clear.
func (s *Session) Set(identity *model.Identity) {
	s.mu.Lock()
	s.current = identity
	handlers := s.snapshotSubscribers()
	s.mu.Unlock()

	for _, h := range handlers {
		h()
	}
}

// Clear removes the current identity and synchronously notifies every
// subscriber, even when the session was already empty.
func (s *Session) Clear() {
	s.Set(nil)
}

// Subscribe registers a zero-argument change handler invoked after every Set
// and Clear. The returned function removes the subscription; calling it more
// than once is harmless.
func (s *Session) Subscribe(handler func()) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = handler
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// snapshotSubscribers copies the handler set in registration order so
// notification runs outside any particular map iteration hazard. Callers must
// hold s.mu.
func (s *Session) snapshotSubscribers() []func() {
	handlers := make([]func(), 0, len(s.subs))
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	// map iteration order is random; keep registration order stable
	sort.Ints(ids)
	for _, id := range ids {
		handlers = append(handlers, s.subs[id])
	}
	return handlers
}
