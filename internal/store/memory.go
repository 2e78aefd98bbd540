package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory UserStore for tests and local development.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]*User // keyed by username
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]*User)}
}

// CreateUser inserts a new user, enforcing username uniqueness under the
// store's own lock, like the database constraint it stands in for.
func (s *MemoryStore) CreateUser(_ context.Context, username, passwordHash string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[username]; ok {
		return nil, ErrUsernameTaken
	}

	u := &User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	s.users[username] = u

	cp := *u
	return &cp, nil
}

// GetUserByUsername looks up a user by username.
func (s *MemoryStore) GetUserByUsername(_ context.Context, username string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[username]
	if !ok {
		return nil, ErrNotFound
	}

	cp := *u
	return &cp, nil
}
