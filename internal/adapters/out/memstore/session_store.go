// Package memstore keeps wizard sessions in process memory. Sessions are
// short-lived scratch state, so nothing is persisted: a restart forgets all
// open wizards and operators simply start over.
package memstore

import (
	"context"
	"sync"
	"time"

	"intake/internal/core/domain/model/kernel"
	"intake/internal/core/domain/model/wizard"
	"intake/internal/core/ports"
	"intake/internal/pkg/errs"
)

type entry struct {
	session    *wizard.Session
	lastActive time.Time
}

// SessionStore is a concurrency-safe in-memory implementation of
// ports.SessionStore. Idle tracking is activity-based: Add and Touch update
// the last-active timestamp, reads do not.
type SessionStore struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

var _ ports.SessionStore = (*SessionStore)(nil)

// NewSessionStore creates an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{entries: make(map[string]*entry)}
}

// Add registers a session. Registering the same session twice is invalid.
func (s *SessionStore) Add(_ context.Context, session *wizard.Session) error {
	if session == nil {
		return errs.NewValueIsRequiredError("session")
	}
	if err := session.Validate(); err != nil {
		return err
	}

	key := session.ID().String()

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[key]; ok {
		return errs.NewValueIsInvalidError("session")
	}
	s.entries[key] = &entry{session: session, lastActive: time.Now()}
	return nil
}

// Get returns the session with the given id. Reading does not count as
// activity.
func (s *SessionStore) Get(_ context.Context, id kernel.UUID) (*wizard.Session, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("sessionId", id)
	}
	return e.session, nil
}

// Touch marks the session as active now, deferring idle expiry.
func (s *SessionStore) Touch(_ context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id.String()]
	if !ok {
		return errs.NewObjectNotFoundError("sessionId", id)
	}
	e.lastActive = time.Now()
	return nil
}

// Delete removes the session. Deleting an unknown id is not an error.
func (s *SessionStore) Delete(_ context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id.String())
	return nil
}

// DeleteIdleSince removes every session whose last activity is before cutoff
// and reports how many were removed.
func (s *SessionStore) DeleteIdleSince(_ context.Context, cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, e := range s.entries {
		if e.lastActive.Before(cutoff) {
			delete(s.entries, key)
			removed++
		}
	}
	return removed, nil
}

// Len reports how many sessions are currently stored.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
