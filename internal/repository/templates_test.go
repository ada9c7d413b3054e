package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/liftlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRepo_SaveFromSession(t *testing.T) {
	repo := NewTemplateRepo(testutil.NewTestStore(t))
	ctx := context.Background()

	ex := testutil.NewTestExercise("Bench Press", testutil.NewTestPB(5, 80))
	session := testutil.NewTestSession("Push Day", testutil.WithExercises(ex))

	saved, isUpdate := repo.SaveFromSession(ctx, session)
	require.True(t, saved)
	assert.False(t, isUpdate)

	all := repo.All(ctx)
	require.Len(t, all, 1)
	tmpl := all[0]
	assert.Equal(t, "Push Day", tmpl.Name)
	require.Len(t, tmpl.Exercises, 1)
	assert.Equal(t, "Bench Press", tmpl.Exercises[0].Name)
	// Snapshot gets its own exercise ids; PBs are not carried over.
	assert.NotEqual(t, ex.ID, tmpl.Exercises[0].ID)
}

func TestTemplateRepo_SaveFromSession_UpdatesByName(t *testing.T) {
	repo := NewTemplateRepo(testutil.NewTestStore(t))
	ctx := context.Background()

	first := testutil.NewTestSession("Push Day",
		testutil.WithExercises(testutil.NewTestExercise("Bench Press")))
	repo.SaveFromSession(ctx, first)
	originalID, ok := repo.IDByName(ctx, "Push Day")
	require.True(t, ok)

	// Same name, different case and contents: updated in place.
	second := testutil.NewTestSession("push day",
		testutil.WithExercises(
			testutil.NewTestExercise("Bench Press"),
			testutil.NewTestExercise("Overhead Press")))
	saved, isUpdate := repo.SaveFromSession(ctx, second)
	require.True(t, saved)
	assert.True(t, isUpdate)

	all := repo.All(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, originalID, all[0].ID)
	assert.Len(t, all[0].Exercises, 2)
}

func TestTemplateRepo_ExistsAndUnsave(t *testing.T) {
	repo := NewTemplateRepo(testutil.NewTestStore(t))
	ctx := context.Background()

	repo.SaveFromSession(ctx, testutil.NewTestSession("Leg Day"))
	assert.True(t, repo.Exists(ctx, "leg day"))

	assert.True(t, repo.Unsave(ctx, "Leg Day"))
	assert.False(t, repo.Exists(ctx, "Leg Day"))
	assert.False(t, repo.Unsave(ctx, "Leg Day"))
}

func TestTemplateRepo_Delete(t *testing.T) {
	repo := NewTemplateRepo(testutil.NewTestStore(t))
	ctx := context.Background()

	repo.SaveFromSession(ctx, testutil.NewTestSession("A"))
	repo.SaveFromSession(ctx, testutil.NewTestSession("B"))

	id, ok := repo.IDByName(ctx, "A")
	require.True(t, ok)
	repo.Delete(ctx, id)

	all := repo.All(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, "B", all[0].Name)
}

func TestTemplateRepo_SaveKeepsCreationDate(t *testing.T) {
	repo := NewTemplateRepo(testutil.NewTestStore(t))
	ctx := context.Background()

	repo.SaveFromSession(ctx, testutil.NewTestSession("Push Day"))
	before := repo.All(ctx)[0].CreatedAt

	time.Sleep(10 * time.Millisecond)
	repo.SaveFromSession(ctx, testutil.NewTestSession("Push Day"))
	assert.Equal(t, before, repo.All(ctx)[0].CreatedAt)
}
