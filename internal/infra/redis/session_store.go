package redis

import (
	"context"
	"sync"
	"time"

	"edukids-quiz-service/internal/quiz"
	"github.com/redis/go-redis/v9"
)

// SessionStore is a Redis-aware implementation of app.SessionRepository.
// Notes:
//   - Sessions themselves stay in-process: the run state machine owns a live
//     timer and subscriber channels that cannot round-trip through Redis.
//   - Redis marks session liveness per client so an operator can see active
//     runs across instances (and it expires abandoned markers via TTL).
type SessionStore struct {
	client  *redis.Client
	ttl     time.Duration
	factory func() *quiz.Session

	mu       sync.RWMutex
	sessions map[string]*quiz.Session
}

func NewSessionStore(client *redis.Client, ttl time.Duration, factory func() *quiz.Session) *SessionStore {
	return &SessionStore{
		client:   client,
		ttl:      ttl,
		factory:  factory,
		sessions: make(map[string]*quiz.Session),
	}
}

func (s *SessionStore) GetOrCreate(clientID string) *quiz.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if session, ok := s.sessions[clientID]; ok {
		return session
	}
	session := s.factory()
	s.sessions[clientID] = session
	// best-effort liveness marker
	_ = s.client.Set(context.Background(), s.key(clientID), "1", s.ttl).Err()
	return session
}

func (s *SessionStore) Get(clientID string) (*quiz.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[clientID]
	return session, ok
}

func (s *SessionStore) Delete(clientID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[clientID]; !ok {
		return
	}
	delete(s.sessions, clientID)
	_ = s.client.Del(context.Background(), s.key(clientID)).Err()
}

func (s *SessionStore) key(clientID string) string {
	return "edukids:session:" + clientID
}
