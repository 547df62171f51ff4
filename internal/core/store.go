package core

import (
	"sync"

	"homecare-chatbot/pkg"
)

// Store holds the live session for each patient.  Events for the same
// patient are serialized in arrival order because session mutation is not
// commutative; events for different patients run in parallel with no shared
// mutable state beyond the read-only catalogs.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*sessionEntry
}

type sessionEntry struct {
	mu   sync.Mutex
	sess *Session
}

// NewStore creates an empty session registry.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*sessionEntry)}
}

// Do runs fn against the patient's session while holding that session's
// lock.  A session is created at the main menu on first contact.  Idle
// sessions stay registered indefinitely; this core does not reap them.
func (s *Store) Do(patientID string, fn func(*Session) (*pkg.Response, error)) (*pkg.Response, error) {
	s.mu.Lock()
	e, ok := s.sessions[patientID]
	if !ok {
		e = &sessionEntry{sess: NewSession(patientID)}
		s.sessions[patientID] = e
	}
	s.mu.Unlock()

	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.sess)
}

// Len reports the number of registered sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
