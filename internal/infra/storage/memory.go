package storage

import (
	"context"
	"sync"
)

// memoryStore is a process-local Store backed by a map. It is the default
// backend for development and the fixture for tests.
type memoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() Store {
	return &memoryStore{
		data: map[string][]byte{},
	}
}

// Read returns the blob stored under key, and whether the key exists.
func (s *memoryStore) Read(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}

	// Copy so callers cannot mutate the stored blob.
	out := make([]byte, len(data))
	copy(out, data)

	return out, true, nil
}

// Write overwrites the blob stored under key.
func (s *memoryStore) Write(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	s.data[key] = stored

	return nil
}
