package memory

import (
	"sync"

	"edukids-quiz-service/internal/quiz"
)

// SessionStore is an in-memory implementation of app.SessionRepository.
// Sessions are built by the injected factory so the store stays agnostic of
// run configuration.
type SessionStore struct {
	factory func() *quiz.Session

	mu       sync.RWMutex
	sessions map[string]*quiz.Session
}

func NewSessionStore(factory func() *quiz.Session) *SessionStore {
	return &SessionStore{
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
	delete(s.sessions, clientID)
}
