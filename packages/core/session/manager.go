package session

import (
	"sync"
	"time"

	"core/store"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// Manager keeps one Session per authenticated user, loading it from the store
// on first access and evicting it again after a period of inactivity.
type Manager struct {
	mu       sync.Mutex
	store    store.Store
	clock    clockwork.Clock
	log      zerolog.Logger
	sessions map[string]*Session
}

func NewManager(st store.Store, clock clockwork.Clock, log zerolog.Logger) *Manager {
	return &Manager{
		store:    st,
		clock:    clock,
		log:      log,
		sessions: make(map[string]*Session),
	}
}

// ForUser returns the user's session, loading their team data on a miss.
func (m *Manager) ForUser(userID string) (*Session, error) {
	m.mu.Lock()
	if sess, ok := m.sessions[userID]; ok {
		m.mu.Unlock()
		return sess, nil
	}
	m.mu.Unlock()

	sess := New(userID, m.store, m.clock, m.log)
	if err := sess.Load(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.sessions[userID]; ok {
		// Lost the race to another request; keep the first one.
		return existing, nil
	}
	m.sessions[userID] = sess
	return sess, nil
}

// Drop removes a user's session after flushing any pending team-name write.
// Called on logout.
func (m *Manager) Drop(userID string) {
	m.mu.Lock()
	sess, ok := m.sessions[userID]
	if ok {
		delete(m.sessions, userID)
	}
	m.mu.Unlock()

	if ok {
		sess.FlushTeamName()
	}
}

// EvictIdle drops sessions that have not served an operation within ttl,
// flushing pending writes first. Returns how many were evicted.
func (m *Manager) EvictIdle(ttl time.Duration) int {
	cutoff := m.clock.Now().Add(-ttl)

	m.mu.Lock()
	var idle []*Session
	for userID, sess := range m.sessions {
		if sess.LastUsed().Before(cutoff) {
			idle = append(idle, sess)
			delete(m.sessions, userID)
		}
	}
	m.mu.Unlock()

	for _, sess := range idle {
		sess.FlushTeamName()
	}

	if len(idle) > 0 {
		m.log.Info().Int("count", len(idle)).Msg("evicted idle sessions")
	}
	return len(idle)
}

// Count reports how many sessions are resident.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
