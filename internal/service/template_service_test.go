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

func newTemplateFixture(t *testing.T) (TemplateService, *repository.TemplateRepo, *repository.DayRepo) {
	t.Helper()
	store := testutil.NewTestStore(t)
	templates := repository.NewTemplateRepo(store)
	days := repository.NewDayRepo(store)
	return NewTemplateService(templates, days), templates, days
}

func TestTemplateService_Instantiate(t *testing.T) {
	svc, templates, _ := newTemplateFixture(t)
	ctx := context.Background()

	source := testutil.NewTestSession("Push Day", testutil.WithExercises(
		testutil.NewTestExercise("Bench Press", testutil.NewTestPB(5, 80)),
		testutil.NewTestExercise("Overhead Press")))
	templates.SaveFromSession(ctx, source)

	session, err := svc.Instantiate(ctx, "push day")
	require.NoError(t, err)
	assert.Equal(t, "Push Day", session.Name)
	assert.NotEqual(t, source.ID, session.ID)
	require.Len(t, session.Exercises, 2)
	for i, ex := range session.Exercises {
		assert.NotEqual(t, source.Exercises[i].ID, ex.ID)
		assert.Empty(t, ex.PBs)
	}
}

func TestTemplateService_Instantiate_FreshIDsEachTime(t *testing.T) {
	svc, templates, _ := newTemplateFixture(t)
	ctx := context.Background()

	templates.SaveFromSession(ctx, testutil.NewTestSession("Push Day",
		testutil.WithExercises(testutil.NewTestExercise("Bench Press"))))

	first, err := svc.Instantiate(ctx, "Push Day")
	require.NoError(t, err)
	second, err := svc.Instantiate(ctx, "Push Day")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, first.Exercises[0].ID, second.Exercises[0].ID)
}

func TestTemplateService_Instantiate_NotFound(t *testing.T) {
	svc, _, _ := newTemplateFixture(t)

	_, err := svc.Instantiate(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTemplateService_InstantiateToDate_CreatesDay(t *testing.T) {
	svc, templates, days := newTemplateFixture(t)
	ctx := context.Background()

	templates.SaveFromSession(ctx, testutil.NewTestSession("Leg Day",
		testutil.WithExercises(testutil.NewTestExercise("Squat"))))

	day, session, err := svc.InstantiateToDate(ctx, "Leg Day", time.Date(2025, 6, 10, 18, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "2025-06-10", day.DateKey())
	assert.Equal(t, "Leg Day", session.Name)

	stored := days.ReadAll(ctx)
	require.Len(t, stored, 1)
	require.Len(t, stored[0].Sessions, 1)
	assert.Equal(t, session.ID, stored[0].Sessions[0].ID)
}

func TestTemplateService_InstantiateToDate_AppendsToExistingDay(t *testing.T) {
	svc, templates, days := newTemplateFixture(t)
	ctx := context.Background()
	when := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	existing := testutil.NewTestDay(when)
	days.Upsert(ctx, existing)

	templates.SaveFromSession(ctx, testutil.NewTestSession("Leg Day"))
	day, _, err := svc.InstantiateToDate(ctx, "Leg Day", when)
	require.NoError(t, err)

	assert.Equal(t, existing.ID, day.ID)
	assert.Len(t, day.Sessions, 2)
	assert.Len(t, days.ReadAll(ctx), 1)
}
