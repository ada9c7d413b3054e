package service

import (
	"context"
	"time"

	"github.com/alexanderramin/liftlog/internal/domain"
)

// WorkoutService covers mutations that span a day and its sessions.
type WorkoutService interface {
	// AddSession appends a named session to the day for date, creating
	// the day if needed. Returns the owning day.
	AddSession(ctx context.Context, date time.Time, name string) (*domain.WorkoutDay, error)

	// RenameSession renames the session with the given id.
	RenameSession(ctx context.Context, sessionID, name string) error

	// LogPB records a personal best for an exercise on the given date,
	// creating the day, session, and exercise instance as needed. The
	// exercise name is registered in the library on first use.
	LogPB(ctx context.Context, date time.Time, exerciseName string, reps int, weight float64) (*domain.PersonalBest, error)
}

// LibraryService covers operations on the global exercise library that
// cascade into the day collection.
type LibraryService interface {
	// Rename renames a library exercise and every matching exercise
	// instance across all days.
	Rename(ctx context.Context, oldName, newName string) error

	// SyncMetadata re-copies library color/type onto every matching
	// exercise instance across all days.
	SyncMetadata(ctx context.Context) error
}

// TemplateService covers template instantiation.
type TemplateService interface {
	// Instantiate builds a fresh session from the named template: new
	// ids, empty PB lists.
	Instantiate(ctx context.Context, name string) (*domain.WorkoutSession, error)

	// InstantiateToDate instantiates the named template and attaches the
	// resulting session to the day for date, creating the day if needed.
	InstantiateToDate(ctx context.Context, name string, date time.Time) (*domain.WorkoutDay, *domain.WorkoutSession, error)
}
