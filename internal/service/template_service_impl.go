package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/alexanderramin/liftlog/internal/repository"
	"github.com/google/uuid"
)

type templateService struct {
	templates *repository.TemplateRepo
	days      *repository.DayRepo
}

// NewTemplateService creates a TemplateService over the given repositories.
func NewTemplateService(templates *repository.TemplateRepo, days *repository.DayRepo) TemplateService {
	return &templateService{templates: templates, days: days}
}

func (s *templateService) Instantiate(ctx context.Context, name string) (*domain.WorkoutSession, error) {
	var tmpl *domain.SessionTemplate
	for _, t := range s.templates.All(ctx) {
		if domain.EqualName(t.Name, name) {
			tmpl = &t
			break
		}
	}
	if tmpl == nil {
		return nil, fmt.Errorf("template %q: %w", name, repository.ErrNotFound)
	}

	session := &domain.WorkoutSession{
		ID:        uuid.New().String(),
		Name:      tmpl.Name,
		Exercises: make([]domain.Exercise, len(tmpl.Exercises)),
	}
	for i, ex := range tmpl.Exercises {
		session.Exercises[i] = domain.Exercise{
			ID:   uuid.New().String(),
			Name: ex.Name,
			PBs:  []domain.PersonalBest{},
		}
	}
	return session, nil
}

func (s *templateService) InstantiateToDate(ctx context.Context, name string, date time.Time) (*domain.WorkoutDay, *domain.WorkoutSession, error) {
	session, err := s.Instantiate(ctx, name)
	if err != nil {
		return nil, nil, err
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

	day.Sessions = append(day.Sessions, *session)
	s.days.Upsert(ctx, *day)
	return day, session, nil
}
