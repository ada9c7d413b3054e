package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/liftlog/internal/storage"
	"github.com/alexanderramin/liftlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepo_TargetDefault(t *testing.T) {
	repo := NewSettingsRepo(testutil.NewTestStore(t))
	assert.Equal(t, DefaultTarget, repo.Target(context.Background()))
}

func TestSettingsRepo_SetAndGetTarget(t *testing.T) {
	repo := NewSettingsRepo(testutil.NewTestStore(t))
	ctx := context.Background()

	require.True(t, repo.SetTarget(ctx, 5))
	assert.Equal(t, 5, repo.Target(ctx))
}

func TestSettingsRepo_SetTarget_Clamps(t *testing.T) {
	repo := NewSettingsRepo(testutil.NewTestStore(t))
	ctx := context.Background()

	repo.SetTarget(ctx, 0)
	assert.Equal(t, 1, repo.Target(ctx))

	repo.SetTarget(ctx, 99)
	assert.Equal(t, 7, repo.Target(ctx))
}

func TestSettingsRepo_Target_UnparsableFallsBack(t *testing.T) {
	store := testutil.NewTestStore(t)
	repo := NewSettingsRepo(store)
	ctx := context.Background()

	store.Write(ctx, storage.KeyTarget, "not a number")
	assert.Equal(t, DefaultTarget, repo.Target(ctx))

	store.Write(ctx, storage.KeyTarget, "-2")
	assert.Equal(t, DefaultTarget, repo.Target(ctx))
}
