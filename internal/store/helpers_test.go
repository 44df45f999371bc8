package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
)

type sequenceIDs struct {
	mu   sync.Mutex
	next int
}

func (s *sequenceIDs) Generate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return fmt.Sprintf("id-%d", s.next)
}

// failingKV fails every call with err.
type failingKV struct {
	err error
}

func (f failingKV) Get(context.Context, string, any) error { return f.err }
func (f failingKV) Set(context.Context, string, any) error { return f.err }
func (f failingKV) Remove(context.Context, string) error   { return f.err }
func (f failingKV) Close() error                           { return nil }

func setRaw(t *testing.T, kv KeyValueStore, key, payload string) {
	t.Helper()
	mem, ok := kv.(*memoryKeyValueStore)
	if !ok {
		t.Fatalf("expected memory store, got %T", kv)
	}
	mem.mu.Lock()
	mem.values[key] = []byte(payload)
	mem.mu.Unlock()
}

func getRaw(t *testing.T, kv KeyValueStore, key string) (string, bool) {
	t.Helper()
	mem := kv.(*memoryKeyValueStore)
	mem.mu.RLock()
	defer mem.mu.RUnlock()
	v, ok := mem.values[key]
	return string(v), ok
}

func newTestRecipeRepo() (*recipeRepository, KeyValueStore, Notifier) {
	kv := NewMemoryKeyValueStore()
	n := NewNotifier()
	repo := NewRecipeRepository(kv, &sequenceIDs{}, n, logger.Nop()).(*recipeRepository)
	return repo, kv, n
}

func strPtr(s string) *string { return &s }
