package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/liftlog/internal/storage"
	"github.com/alexanderramin/liftlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibraryRepo_AddAndGet(t *testing.T) {
	repo := NewLibraryRepo(testutil.NewTestStore(t))
	ctx := context.Background()

	require.True(t, repo.Add(ctx, "Bench Press", "#ff0000", "Chest"))

	entry, ok := repo.Get(ctx, "bench press")
	require.True(t, ok)
	assert.Equal(t, "Bench Press", entry.Name)
	assert.Equal(t, "#ff0000", entry.Color)
	assert.Equal(t, "Chest", entry.Type)
	assert.NotEmpty(t, entry.CreatedAt)
}

func TestLibraryRepo_Add_ColorDefaultsFromType(t *testing.T) {
	repo := NewLibraryRepo(testutil.NewTestStore(t))
	ctx := context.Background()

	require.True(t, repo.Add(ctx, "Squat", "", "Legs"))
	assert.Equal(t, "#eab308", repo.Color(ctx, "Squat"))
}

func TestLibraryRepo_Add_UpdatesExistingEntry(t *testing.T) {
	repo := NewLibraryRepo(testutil.NewTestStore(t))
	ctx := context.Background()

	repo.Add(ctx, "Deadlift", "", "")
	repo.Add(ctx, "deadlift", "#00ff00", "Back")

	all := repo.All(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, "Deadlift", all[0].Name)
	assert.Equal(t, "#00ff00", all[0].Color)
	assert.Equal(t, "Back", all[0].Type)
}

func TestLibraryRepo_All_SortedByName(t *testing.T) {
	repo := NewLibraryRepo(testutil.NewTestStore(t))
	ctx := context.Background()

	repo.Add(ctx, "Squat", "", "")
	repo.Add(ctx, "Bench Press", "", "")
	repo.Add(ctx, "Deadlift", "", "")

	assert.Equal(t, []string{"Bench Press", "Deadlift", "Squat"}, repo.Names(ctx))
}

func TestLibraryRepo_All_SelfHealsCorruptEntries(t *testing.T) {
	store := testutil.NewTestStore(t)
	repo := NewLibraryRepo(store)
	ctx := context.Background()

	store.Write(ctx, storage.KeyExercises, `[{"name":"Squat"},{"name":7}]`)

	all := repo.All(ctx)
	require.Len(t, all, 1)

	healed, ok := store.Read(ctx, storage.KeyExercises)
	require.True(t, ok)
	assert.NotContains(t, healed, `"name":7`)
}

func TestLibraryRepo_SetColor(t *testing.T) {
	repo := NewLibraryRepo(testutil.NewTestStore(t))
	ctx := context.Background()

	repo.Add(ctx, "Squat", "#111111", "")
	require.True(t, repo.SetColor(ctx, "squat", "#222222"))
	assert.Equal(t, "#222222", repo.Color(ctx, "Squat"))

	// Empty color removes it.
	require.True(t, repo.SetColor(ctx, "Squat", ""))
	assert.Equal(t, "", repo.Color(ctx, "Squat"))

	// Setting a color on an unknown name creates the entry.
	require.True(t, repo.SetColor(ctx, "Lunges", "#333333"))
	_, ok := repo.Get(ctx, "Lunges")
	assert.True(t, ok)
}

func TestLibraryRepo_RenameEntry(t *testing.T) {
	repo := NewLibraryRepo(testutil.NewTestStore(t))
	ctx := context.Background()

	repo.Add(ctx, "Benchpress", "#ff0000", "Chest")
	require.True(t, repo.RenameEntry(ctx, "benchpress", "Bench Press"))

	entry, ok := repo.Get(ctx, "Bench Press")
	require.True(t, ok)
	assert.Equal(t, "#ff0000", entry.Color)

	assert.False(t, repo.RenameEntry(ctx, "nonexistent", "Whatever"))
}
