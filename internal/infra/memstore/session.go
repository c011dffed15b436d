package memstore

import (
	"context"
	"sync"

	"theater-tickets/internal/usecase/shared"
)

// SessionStore is the in-memory counterpart of the redis session store.
type SessionStore struct {
	mu     sync.Mutex
	booked map[string]struct{}
}

func NewSessionStore() *SessionStore {
	return &SessionStore{booked: make(map[string]struct{})}
}

func (s *SessionStore) MarkBooked(_ context.Context, buyerEmail string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.booked[buyerEmail] = struct{}{}
	return nil
}

func (s *SessionStore) HasBooked(_ context.Context, buyerEmail string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.booked[buyerEmail]
	return ok, nil
}

var _ shared.SessionStore = (*SessionStore)(nil)
