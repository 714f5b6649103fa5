package mocks

import (
	"context"
	"sync"

	"jobboard-api/internal/cache"

	"github.com/google/uuid"
)

// RoleStore is an in-memory stand-in for the Redis role cache.
type RoleStore struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*cache.Entry
}

func NewRoleStore() *RoleStore {
	return &RoleStore{entries: make(map[uuid.UUID]*cache.Entry)}
}

func (s *RoleStore) Get(ctx context.Context, profileID uuid.UUID) (*cache.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[profileID]
	if !ok {
		return nil, cache.ErrMiss
	}
	return entry, nil
}

func (s *RoleStore) Set(ctx context.Context, profileID uuid.UUID, entry *cache.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[profileID] = entry
	return nil
}

func (s *RoleStore) Invalidate(ctx context.Context, profileID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, profileID)
	return nil
}

// Has reports whether an entry is currently cached, for assertions.
func (s *RoleStore) Has(profileID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.entries[profileID]
	return ok
}
