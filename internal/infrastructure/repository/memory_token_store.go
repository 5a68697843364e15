package repository

import (
	"context"
	"sync"

	"course-order-export/internal/domain"
	"course-order-export/internal/ports"
)

// MemoryTokenStore keeps tokens in process memory. Tokens are lost on restart.
type MemoryTokenStore struct {
	mu     sync.RWMutex
	tokens map[string]string
}

// NewMemoryTokenStore creates an empty in-memory token store
func NewMemoryTokenStore() ports.TokenStore {
	return &MemoryTokenStore{tokens: make(map[string]string)}
}

func (s *MemoryTokenStore) Get(ctx context.Context, shop string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	token, ok := s.tokens[domain.TokenKey(shop)]
	return token, ok, nil
}

func (s *MemoryTokenStore) Put(ctx context.Context, shop string, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[domain.TokenKey(shop)] = token
	return nil
}
