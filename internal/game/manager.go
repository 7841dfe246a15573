package game

import (
	"sync"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/google/uuid"

	"github.com/lgbarn/movegen-go/internal/errors"
)

// Session is a Game with an ID and timestamps. Name is a readable label
// for logs; only ID is unique.
type Session struct {
	ID        string
	Name      string
	Game      *Game
	CreatedAt time.Time
}

// Manager keeps games in memory by ID.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Create starts a game from the initial position and returns its session.
func (m *Manager) Create() *Session {
	return m.add(New())
}

// Adopt registers an existing game, e.g. one built with NewFromBoard.
func (m *Manager) Adopt(g *Game) *Session {
	return m.add(g)
}

func (m *Manager) add(g *Game) *Session {
	s := &Session{
		ID:        uuid.NewString(),
		Name:      petname.Generate(2, "-"),
		Game:      g,
		CreatedAt: time.Now(),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return s
}

// Get returns the session with the given ID.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, errors.Wrapf(errors.ErrGameNotFound, "id %q", id)
	}
	return s, nil
}

// Delete removes a session. Deleting an unknown ID is an error.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return errors.Wrapf(errors.ErrGameNotFound, "id %q", id)
	}
	delete(m.sessions, id)
	return nil
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
