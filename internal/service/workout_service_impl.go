package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/alexanderramin/liftlog/internal/repository"
	"github.com/google/uuid"
)

type workoutService struct {
	days    *repository.DayRepo
	library *repository.LibraryRepo
}

// NewWorkoutService creates a WorkoutService over the given repositories.
func NewWorkoutService(days *repository.DayRepo, library *repository.LibraryRepo) WorkoutService {
	return &workoutService{days: days, library: library}
}

func (s *workoutService) AddSession(ctx context.Context, date time.Time, name string) (*domain.WorkoutDay, error) {
	if strings.TrimSpace(name) == "" {
		name = domain.DefaultSessionName
	}

	dateKey := date.UTC().Format("2006-01-02")
	day, err := s.days.GetByDate(ctx, dateKey)
	if err != nil {
		midnight := time.Date(date.UTC().Year(), date.UTC().Month(), date.UTC().Day(), 0, 0, 0, 0, time.UTC)
		day = &domain.WorkoutDay{
			ID:       uuid.New().String(),
			Date:     domain.Timestamp(midnight),
			Sessions: []domain.WorkoutSession{},
		}
	}

	day.Sessions = append(day.Sessions, domain.WorkoutSession{
		ID:        uuid.New().String(),
		Name:      name,
		Exercises: []domain.Exercise{},
	})
	s.days.Upsert(ctx, *day)
	return day, nil
}

func (s *workoutService) RenameSession(ctx context.Context, sessionID, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("session name cannot be empty")
	}

	day, err := s.days.FindBySessionID(ctx, sessionID)
	if err != nil {
		return err
	}

	for i, sess := range day.Sessions {
		if sess.ID == sessionID {
			day.Sessions[i].Name = strings.TrimSpace(name)
			_, _, err := s.days.UpdateSession(ctx, day.Sessions[i], day)
			return err
		}
	}
	return fmt.Errorf("session %s: %w", sessionID, repository.ErrNotFound)
}

func (s *workoutService) LogPB(ctx context.Context, date time.Time, exerciseName string, reps int, weight float64) (*domain.PersonalBest, error) {
	name := strings.TrimSpace(exerciseName)
	if name == "" {
		return nil, fmt.Errorf("exercise name cannot be empty")
	}
	if reps <= 0 {
		return nil, fmt.Errorf("reps must be positive")
	}
	if weight < 0 {
		return nil, fmt.Errorf("weight cannot be negative")
	}

	// Register the name in the library so it shows up in suggestions.
	s.library.Add(ctx, name, "", "")

	ensured := s.days.EnsureDayWithSession(ctx, date)
	session := ensured.Day.Sessions[0]

	exIdx := -1
	for i, ex := range session.Exercises {
		if domain.EqualName(ex.Name, name) {
			exIdx = i
			break
		}
	}
	if exIdx < 0 {
		session.Exercises = append(session.Exercises, domain.Exercise{
			ID:    uuid.New().String(),
			Name:  name,
			PBs:   []domain.PersonalBest{},
			Color: s.library.Color(ctx, name),
			Type:  s.library.Type(ctx, name),
		})
		exIdx = len(session.Exercises) - 1
	}

	pb := domain.PersonalBest{
		ID:     uuid.New().String(),
		Reps:   reps,
		Weight: weight,
		Date:   domain.Timestamp(time.Now()),
	}
	session.Exercises[exIdx].PBs = append(session.Exercises[exIdx].PBs, pb)

	if _, _, err := s.days.UpdateSession(ctx, session, &ensured.Day); err != nil {
		return nil, err
	}
	return &pb, nil
}
