// Package memory provides a process-local session store.
//
// Entries are lost on restart. It suits single-instance and test deployments.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/louisbranch/signup/internal/services/signup/storage"
	"github.com/louisbranch/signup/internal/services/signup/wizard"
)

type entry struct {
	reg       wizard.Registration
	expiresAt time.Time
}

// SessionStore keeps registrations in a mutex-guarded map.
type SessionStore struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

// NewSessionStore returns an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// GetRegistration returns the live registration for sessionID.
func (s *SessionStore) GetRegistration(_ context.Context, sessionID string) (wizard.Registration, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return wizard.Registration{}, fmt.Errorf("session id is required")
	}
	s.mu.RLock()
	e, ok := s.entries[sessionID]
	s.mu.RUnlock()
	if !ok || !e.expiresAt.After(s.now()) {
		return wizard.Registration{}, storage.ErrNotFound
	}
	return e.reg, nil
}

// PutRegistration replaces the registration for sessionID.
func (s *SessionStore) PutRegistration(_ context.Context, sessionID string, reg wizard.Registration, expiresAt time.Time) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return fmt.Errorf("session id is required")
	}
	if expiresAt.IsZero() {
		return fmt.Errorf("expiry is required")
	}
	s.mu.Lock()
	s.entries[sessionID] = entry{reg: reg, expiresAt: expiresAt}
	s.mu.Unlock()
	return nil
}

// DeleteRegistration forgets sessionID. Missing entries are not an error.
func (s *SessionStore) DeleteRegistration(_ context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return fmt.Errorf("session id is required")
	}
	s.mu.Lock()
	delete(s.entries, sessionID)
	s.mu.Unlock()
	return nil
}

// DeleteExpired drops every entry whose expiry is not after now.
func (s *SessionStore) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var removed int64
	for id, e := range s.entries {
		if !e.expiresAt.After(now) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed, nil
}

// Len returns the number of stored entries, expired ones included.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

var _ storage.SessionStore = (*SessionStore)(nil)
