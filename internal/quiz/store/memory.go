// Package store keeps quiz sessions in process memory; the rest of the
// service is stateless between requests.
package store

import (
	"sync"

	"github.com/gokul-1998/flashdeck-service/internal/quiz/domain"
)

type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*domain.Session),
	}
}

func (s *MemoryStore) Put(session *domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = session
}

func (s *MemoryStore) Get(id string) *domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sessions[id]
}

func (s *MemoryStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
}
