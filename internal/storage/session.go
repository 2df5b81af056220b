package storage

import (
	"sync"

	"github.com/Moiseysus/Itabot/internal/domain/entities"
)

// SessionStorage keeps the transient quiz state of every user in memory.
// Users without an entry are Idle.
type SessionStorage struct {
	mu       sync.RWMutex
	sessions map[int64]entities.QuizState
}

// NewSessionStorage creates an empty SessionStorage.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		sessions: make(map[int64]entities.QuizState),
	}
}

// Get returns the user's state.
func (s *SessionStorage) Get(userID int64) entities.QuizState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if st, ok := s.sessions[userID]; ok {
		return st
	}
	return entities.Idle{}
}

// Update runs fn on the user's current state and stores the result,
// holding the lock for the whole step.
func (s *SessionStorage) Update(userID int64, fn func(entities.QuizState) entities.QuizState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.sessions[userID]
	if !ok {
		cur = entities.Idle{}
	}

	next := fn(cur)
	if !entities.IsActive(next) {
		delete(s.sessions, userID)
		return
	}
	s.sessions[userID] = next
}
