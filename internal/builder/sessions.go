package builder

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/savannatrails/safari-backend/internal/selection"
	pkgerrors "github.com/savannatrails/safari-backend/pkg/errors"
)

// Session holds one builder session's selection. Each logical session has a
// single owner, but the HTTP server is concurrent, so mutations go through
// the session mutex.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu    sync.Mutex
	store *selection.Store
}

// WithSelection runs fn with exclusive access to the session's selection.
func (s *Session) WithSelection(fn func(store *selection.Store)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.store)
}

// Snapshot returns a copy of the current selection in insertion order.
func (s *Session) Snapshot() []selection.SelectedItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.List()
}

// Registry maps session ids to live sessions.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewRegistry returns an empty session registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Open creates a new session with an empty selection.
func (r *Registry) Open() *Session {
	session := &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		store:     selection.NewStore(),
	}
	r.mu.Lock()
	r.sessions[session.ID] = session
	r.mu.Unlock()
	return session
}

// Get returns the session for the given id.
func (r *Registry) Get(sessionID string) (*Session, error) {
	r.mu.RLock()
	session, ok := r.sessions[sessionID]
	r.mu.RUnlock()
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "builder session not found")
	}
	return session, nil
}

// Close drops the session. Missing ids are a no-op.
func (r *Registry) Close(sessionID string) {
	r.mu.Lock()
	delete(r.sessions, sessionID)
	r.mu.Unlock()
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
