package store

import (
	"sync"
	"time"
)

const sessionTTL = 24 * time.Hour

type session struct {
	cart     *CartStore
	lastSeen time.Time
}

// SessionManager hands out one CartStore per anonymous shopping session.
// Sessions idle past the TTL are evicted lazily on access.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*session
}

// NewSessionManager creates an empty SessionManager.
func NewSessionManager() *SessionManager {
	return &SessionManager{sessions: make(map[string]*session)}
}

// Get returns the cart store for a session id, creating one on first use.
func (m *SessionManager) Get(sessionID string) *CartStore {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.evictStale()

	s, ok := m.sessions[sessionID]
	if !ok {
		s = &session{cart: NewCartStore()}
		m.sessions[sessionID] = s
	}
	s.lastSeen = time.Now()
	return s.cart
}

// Drop removes a session, discarding its cart.
func (m *SessionManager) Drop(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
}

// caller holds m.mu
func (m *SessionManager) evictStale() {
	cutoff := time.Now().Add(-sessionTTL)
	for id, s := range m.sessions {
		if s.lastSeen.Before(cutoff) {
			delete(m.sessions, id)
		}
	}
}
