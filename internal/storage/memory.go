package storage

import (
	"context"
	"sync"
)

// MemStore is an in-memory Store used in tests and as a substitution point
// for callers that inject their own backend.
type MemStore struct {
	mu     sync.RWMutex
	values map[string]string

	// FailWrites makes every Write and Delete report failure, for
	// exercising degraded-storage paths.
	FailWrites bool
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{values: map[string]string{}}
}

func (m *MemStore) Read(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *MemStore) Write(_ context.Context, key, value string) bool {
	if m.FailWrites {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return true
}

func (m *MemStore) Delete(_ context.Context, key string) bool {
	if m.FailWrites {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return true
}
