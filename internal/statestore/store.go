package statestore

import (
	"sync"

	"github.com/rocketscienceinc/yamduel-backend/internal/entity"
)

// Session wraps one match's runtime state with its own lock, so two requests
// against the same match serialize while different matches stay concurrent.
type Session struct {
	mu    sync.Mutex
	State *entity.GameState
}

func (that *Session) Lock() {
	that.mu.Lock()
}

func (that *Session) Unlock() {
	that.mu.Unlock()
}

// Store holds the live runtime state of every active match. Entries are
// removed explicitly when a match completes; there is no eviction.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func New() *Store {
	return &Store{
		sessions: make(map[string]*Session),
	}
}

func (that *Store) Get(matchID string) (*Session, bool) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	session, ok := that.sessions[matchID]
	return session, ok
}

func (that *Store) Put(matchID string, state *entity.GameState) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.sessions[matchID] = &Session{State: state}
}

func (that *Store) Remove(matchID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.sessions, matchID)
}
