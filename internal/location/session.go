package location

import (
	"sync"

	"github.com/mikaw/roost/internal/directory"
)

// SessionStore caches the working location for the lifetime of one program
// run. It is deliberately not persisted: its job is to spare repeated
// backend default lookups as the user moves between views, not to outlive
// the session.
type SessionStore struct {
	mu  sync.RWMutex
	loc directory.Location
	ok  bool
}

// Read returns the cached location and whether one is present.
func (s *SessionStore) Read() (directory.Location, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.ok || !s.loc.Valid() {
		return directory.Location{}, false
	}
	return s.loc, true
}

// Write replaces the cached location.
func (s *SessionStore) Write(loc directory.Location) {
	s.mu.Lock()
	s.loc = loc
	s.ok = true
	s.mu.Unlock()
}

// Clear removes the cached location.
func (s *SessionStore) Clear() {
	s.mu.Lock()
	s.loc = directory.Location{}
	s.ok = false
	s.mu.Unlock()
}
