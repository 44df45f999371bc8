package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

type memoryKeyValueStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryKeyValueStore returns a [KeyValueStore] that keeps documents in
// process memory. Values are stored as JSON so reads never alias writes.
func NewMemoryKeyValueStore() KeyValueStore {
	return &memoryKeyValueStore{values: make(map[string][]byte)}
}

func (s *memoryKeyValueStore) Get(_ context.Context, key string, dst any) error {
	s.mu.RLock()
	raw, ok := s.values[key]
	s.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrMalformedPayload, key, err)
	}

	return nil
}

func (s *memoryKeyValueStore) Set(_ context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: encoding %q: %w", ErrMalformedPayload, key, err)
	}

	s.mu.Lock()
	s.values[key] = payload
	s.mu.Unlock()

	return nil
}

func (s *memoryKeyValueStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.values, key)
	s.mu.Unlock()

	return nil
}

func (s *memoryKeyValueStore) Close() error {
	return nil
}
