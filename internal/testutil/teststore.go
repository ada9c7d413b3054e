package testutil

import (
	"testing"

	"github.com/alexanderramin/liftlog/internal/storage"
)

// NewTestStore creates an in-memory store for repository tests.
func NewTestStore(t *testing.T) *storage.MemStore {
	t.Helper()
	return storage.NewMemStore()
}

// NewTestSQLiteStore creates an in-memory SQLite-backed store, closed when
// the test completes.
func NewTestSQLiteStore(t *testing.T) *storage.SQLiteStore {
	t.Helper()
	store, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}
