package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Sessions older than this without activity are discarded.
const maxIdle = 2 * time.Hour

// Store holds active sessions in memory, keyed by an opaque session ID
// carried in a cookie. Sessions are created on first interaction and
// discarded when the client goes away; nothing is persisted. Safe for
// concurrent use. Stale sessions are cleaned up automatically.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewStore creates a session store and starts its cleanup goroutine.
func NewStore() *Store {
	st := &Store{sessions: make(map[string]*Session)}
	go st.cleanup()
	return st
}

// Create registers a new session on the login screen.
func (st *Store) Create() *Session {
	s := newSession(uuid.NewString(), time.Now().Unix())

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Get returns the session with the given ID, refreshing its idle timer.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if ok {
		s.lastSeen = time.Now().Unix()
	}
	return s, ok
}

// Delete removes the session with the given ID.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

// cleanup runs periodically and removes sessions idle longer than maxIdle.
func (st *Store) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	for range ticker.C {
		cutoff := time.Now().Add(-maxIdle).Unix()
		st.mu.Lock()
		for id, s := range st.sessions {
			if s.lastSeen < cutoff {
				delete(st.sessions, id)
			}
		}
		st.mu.Unlock()
	}
}
