package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_ReadMissingKey(t *testing.T) {
	store := newTestStore(t)

	_, ok := store.Read(context.Background(), "missing")
	assert.False(t, ok)
}

func TestSQLiteStore_WriteAndRead(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.True(t, store.Write(ctx, KeyDays, `[]`))
	v, ok := store.Read(ctx, KeyDays)
	require.True(t, ok)
	assert.Equal(t, `[]`, v)
}

func TestSQLiteStore_WriteOverwrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	store.Write(ctx, KeyTarget, "3")
	store.Write(ctx, KeyTarget, "5")

	v, ok := store.Read(ctx, KeyTarget)
	require.True(t, ok)
	assert.Equal(t, "5", v)
}

func TestSQLiteStore_Delete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	store.Write(ctx, KeyTemplates, `[]`)
	require.True(t, store.Delete(ctx, KeyTemplates))

	_, ok := store.Read(ctx, KeyTemplates)
	assert.False(t, ok)

	// Deleting an absent key still reports success.
	assert.True(t, store.Delete(ctx, KeyTemplates))
}

func TestSQLiteStore_PersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "liftlog.db")
	ctx := context.Background()

	store, err := Open(path)
	require.NoError(t, err)
	require.True(t, store.Write(ctx, KeyExercises, `[{"name":"Squat"}]`))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	v, ok := reopened.Read(ctx, KeyExercises)
	require.True(t, ok)
	assert.Equal(t, `[{"name":"Squat"}]`, v)
}

func TestSQLiteStore_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "liftlog.db")

	store, err := Open(path)
	require.NoError(t, err)
	defer store.Close()

	assert.True(t, store.Write(context.Background(), KeyDays, `[]`))
}

func TestMemStore_FailWrites(t *testing.T) {
	store := NewMemStore()
	store.FailWrites = true
	ctx := context.Background()

	assert.False(t, store.Write(ctx, KeyDays, `[]`))
	assert.False(t, store.Delete(ctx, KeyDays))
	_, ok := store.Read(ctx, KeyDays)
	assert.False(t, ok)
}
