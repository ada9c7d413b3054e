package testutil

import (
	"time"

	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/google/uuid"
)

// Day options
type DayOption func(*domain.WorkoutDay)

func WithSessions(sessions ...domain.WorkoutSession) DayOption {
	return func(d *domain.WorkoutDay) {
		d.Sessions = sessions
	}
}

func WithDayID(id string) DayOption {
	return func(d *domain.WorkoutDay) {
		d.ID = id
	}
}

// NewTestDay creates a day on the given calendar date with one default
// session unless overridden.
func NewTestDay(date time.Time, opts ...DayOption) domain.WorkoutDay {
	midnight := time.Date(date.UTC().Year(), date.UTC().Month(), date.UTC().Day(), 0, 0, 0, 0, time.UTC)
	d := domain.WorkoutDay{
		ID:       uuid.New().String(),
		Date:     domain.Timestamp(midnight),
		Sessions: []domain.WorkoutSession{NewTestSession("Workout")},
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// Session options
type SessionOption func(*domain.WorkoutSession)

func WithExercises(exercises ...domain.Exercise) SessionOption {
	return func(s *domain.WorkoutSession) {
		s.Exercises = exercises
	}
}

// NewTestSession creates a named session with no exercises unless
// overridden.
func NewTestSession(name string, opts ...SessionOption) domain.WorkoutSession {
	s := domain.WorkoutSession{
		ID:        uuid.New().String(),
		Name:      name,
		Exercises: []domain.Exercise{},
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// NewTestExercise creates an exercise instance with the given PBs.
func NewTestExercise(name string, pbs ...domain.PersonalBest) domain.Exercise {
	if pbs == nil {
		pbs = []domain.PersonalBest{}
	}
	return domain.Exercise{
		ID:   uuid.New().String(),
		Name: name,
		PBs:  pbs,
	}
}

// NewTestPB creates a personal best dated now.
func NewTestPB(reps int, weight float64) domain.PersonalBest {
	return domain.PersonalBest{
		ID:     uuid.New().String(),
		Reps:   reps,
		Weight: weight,
		Date:   domain.Timestamp(time.Now()),
	}
}

// NewTestPBAt creates a personal best with an explicit date.
func NewTestPBAt(reps int, weight float64, at time.Time) domain.PersonalBest {
	pb := NewTestPB(reps, weight)
	pb.Date = domain.Timestamp(at)
	return pb
}
