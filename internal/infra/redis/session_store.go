package redis

import (
	"context"
	"strconv"
	"sync"
	"time"

	"quizgame/internal/app"

	"github.com/redis/go-redis/v9"
)

// SessionStore is a Redis-aware implementation of app.SessionRepository.
// Notes:
//   - Quiz state stays in a local map; a quiz is owned by one process.
//   - Redis holds a liveness marker per user (value: session id) so other
//     instances or tooling can see who is mid-quiz.
type SessionStore struct {
	client   *redis.Client
	ttl      time.Duration
	mu       sync.RWMutex
	sessions map[int64]*app.Quiz
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{
		client:   client,
		ttl:      ttl,
		sessions: make(map[int64]*app.Quiz),
	}
}

func (s *SessionStore) Get(userID int64) (*app.Quiz, bool) {
	s.mu.RLock()
	quiz, ok := s.sessions[userID]
	s.mu.RUnlock()
	if ok {
		// best-effort refresh of the marker
		_ = s.client.Expire(context.Background(), s.key(userID), s.ttl).Err()
	}
	return quiz, ok
}

func (s *SessionStore) Put(userID int64, quiz *app.Quiz) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = quiz
	_ = s.client.Set(context.Background(), s.key(userID), quiz.ID(), s.ttl).Err()
}

func (s *SessionStore) Delete(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
	_ = s.client.Del(context.Background(), s.key(userID)).Err()
}

func (s *SessionStore) key(userID int64) string {
	return "quiz:session:" + strconv.FormatInt(userID, 10)
}
