package web

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ukaji3/scorelens/pkg/scorelens/models"
)

// session holds one upload's state: the untouched original bytes plus the
// current edited table. The original is read-only after creation; every
// export re-opens it from the start, so repeated exports cannot interfere.
type session struct {
	ID       string
	BaseName string
	// Original is the uploaded workbook, byte for byte. Nil for demo
	// sessions, which export a freshly built workbook instead.
	Original []byte

	mu            sync.Mutex
	table         models.Table
	columns       []models.ColumnInfo
	defaultColumn string
	lastUsed      time.Time
}

// Snapshot returns the current table and classification under the lock.
func (s *session) Snapshot() (models.Table, []models.ColumnInfo, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastUsed = time.Now()
	return s.table, s.columns, s.defaultColumn
}

// SetTable replaces the edited table and its classification.
func (s *session) SetTable(t models.Table, cols []models.ColumnInfo, defaultColumn string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = t
	s.columns = cols
	s.defaultColumn = defaultColumn
	s.lastUsed = time.Now()
}

// sessionStore is an in-memory session registry with TTL eviction.
type sessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*session
	ttl      time.Duration
}

func newSessionStore(ttl time.Duration) *sessionStore {
	st := &sessionStore{
		sessions: make(map[string]*session),
		ttl:      ttl,
	}
	go st.cleanup()
	return st
}

// cleanup evicts idle sessions once a minute.
func (st *sessionStore) cleanup() {
	for {
		time.Sleep(time.Minute)
		cutoff := time.Now().Add(-st.ttl)
		st.mu.Lock()
		for id, s := range st.sessions {
			s.mu.Lock()
			idle := s.lastUsed.Before(cutoff)
			s.mu.Unlock()
			if idle {
				delete(st.sessions, id)
			}
		}
		st.mu.Unlock()
	}
}

// Create registers a new session and returns it.
func (st *sessionStore) Create(baseName string, original []byte, t models.Table, cols []models.ColumnInfo, defaultColumn string) *session {
	s := &session{
		ID:            uuid.NewString(),
		BaseName:      baseName,
		Original:      original,
		table:         t,
		columns:       cols,
		defaultColumn: defaultColumn,
		lastUsed:      time.Now(),
	}
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Get looks up a session by ID.
func (st *sessionStore) Get(id string) (*session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}
