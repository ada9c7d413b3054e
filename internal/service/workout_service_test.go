package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/liftlog/internal/repository"
	"github.com/alexanderramin/liftlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWorkoutFixture(t *testing.T) (WorkoutService, *repository.DayRepo, *repository.LibraryRepo) {
	t.Helper()
	store := testutil.NewTestStore(t)
	days := repository.NewDayRepo(store)
	library := repository.NewLibraryRepo(store)
	return NewWorkoutService(days, library), days, library
}

func TestWorkoutService_AddSession_CreatesDay(t *testing.T) {
	svc, days, _ := newWorkoutFixture(t)
	ctx := context.Background()

	day, err := svc.AddSession(ctx, time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC), "Push")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-10", day.DateKey())
	require.Len(t, day.Sessions, 1)
	assert.Equal(t, "Push", day.Sessions[0].Name)

	assert.Len(t, days.ReadAll(ctx), 1)
}

func TestWorkoutService_AddSession_AppendsToExistingDay(t *testing.T) {
	svc, days, _ := newWorkoutFixture(t)
	ctx := context.Background()
	when := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	_, err := svc.AddSession(ctx, when, "Push")
	require.NoError(t, err)
	day, err := svc.AddSession(ctx, when, "Pull")
	require.NoError(t, err)

	assert.Len(t, day.Sessions, 2)
	assert.Len(t, days.ReadAll(ctx), 1)
}

func TestWorkoutService_AddSession_BlankNameDefaults(t *testing.T) {
	svc, _, _ := newWorkoutFixture(t)

	day, err := svc.AddSession(context.Background(), time.Now(), "   ")
	require.NoError(t, err)
	assert.Equal(t, "Workout", day.Sessions[0].Name)
}

func TestWorkoutService_RenameSession(t *testing.T) {
	svc, days, _ := newWorkoutFixture(t)
	ctx := context.Background()

	day, err := svc.AddSession(ctx, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), "Push")
	require.NoError(t, err)
	sessionID := day.Sessions[0].ID

	require.NoError(t, svc.RenameSession(ctx, sessionID, "  Pull  "))

	found, err := days.FindBySessionID(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, "Pull", found.Sessions[0].Name)
}

func TestWorkoutService_RenameSession_Validation(t *testing.T) {
	svc, _, _ := newWorkoutFixture(t)
	ctx := context.Background()

	assert.Error(t, svc.RenameSession(ctx, "any", "   "))
	assert.ErrorIs(t, svc.RenameSession(ctx, "nonexistent", "Pull"), repository.ErrNotFound)
}

func TestWorkoutService_LogPB(t *testing.T) {
	svc, days, library := newWorkoutFixture(t)
	ctx := context.Background()
	when := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	pb, err := svc.LogPB(ctx, when, "Bench Press", 5, 80)
	require.NoError(t, err)
	assert.Equal(t, 5, pb.Reps)
	assert.Equal(t, 80.0, pb.Weight)

	// Day and session were created implicitly.
	all := days.ReadAll(ctx)
	require.Len(t, all, 1)
	session := all[0].Sessions[0]
	require.Len(t, session.Exercises, 1)
	assert.Equal(t, "Bench Press", session.Exercises[0].Name)
	require.Len(t, session.Exercises[0].PBs, 1)

	// The name was registered in the library.
	_, ok := library.Get(ctx, "bench press")
	assert.True(t, ok)
}

func TestWorkoutService_LogPB_ReusesExerciseInstance(t *testing.T) {
	svc, days, _ := newWorkoutFixture(t)
	ctx := context.Background()
	when := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	_, err := svc.LogPB(ctx, when, "Bench Press", 5, 80)
	require.NoError(t, err)
	_, err = svc.LogPB(ctx, when, "bench press", 3, 90)
	require.NoError(t, err)

	session := days.ReadAll(ctx)[0].Sessions[0]
	require.Len(t, session.Exercises, 1)
	assert.Len(t, session.Exercises[0].PBs, 2)
}

func TestWorkoutService_LogPB_CopiesLibraryMetadata(t *testing.T) {
	svc, days, library := newWorkoutFixture(t)
	ctx := context.Background()

	library.Add(ctx, "Squat", "", "Legs")
	_, err := svc.LogPB(ctx, time.Now(), "Squat", 5, 100)
	require.NoError(t, err)

	ex := days.ReadAll(ctx)[0].Sessions[0].Exercises[0]
	assert.Equal(t, "Legs", ex.Type)
	assert.Equal(t, "#eab308", ex.Color)
}

func TestWorkoutService_LogPB_Validation(t *testing.T) {
	svc, _, _ := newWorkoutFixture(t)
	ctx := context.Background()

	_, err := svc.LogPB(ctx, time.Now(), "  ", 5, 80)
	assert.Error(t, err)
	_, err = svc.LogPB(ctx, time.Now(), "Bench Press", 0, 80)
	assert.Error(t, err)
	_, err = svc.LogPB(ctx, time.Now(), "Bench Press", 5, -1)
	assert.Error(t, err)
}
