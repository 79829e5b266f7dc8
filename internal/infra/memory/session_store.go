package memory

import (
	"sync"

	"quizgame/internal/app"
)

// SessionStore is an in-memory implementation of app.SessionRepository.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[int64]*app.Quiz
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[int64]*app.Quiz),
	}
}

func (s *SessionStore) Get(userID int64) (*app.Quiz, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	quiz, ok := s.sessions[userID]
	return quiz, ok
}

func (s *SessionStore) Put(userID int64, quiz *app.Quiz) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = quiz
}

func (s *SessionStore) Delete(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}
