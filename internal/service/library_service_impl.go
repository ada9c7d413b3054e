package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/alexanderramin/liftlog/internal/repository"
)

type libraryService struct {
	library *repository.LibraryRepo
	days    *repository.DayRepo
}

// NewLibraryService creates a LibraryService over the given repositories.
func NewLibraryService(library *repository.LibraryRepo, days *repository.DayRepo) LibraryService {
	return &libraryService{library: library, days: days}
}

// Rename is the one cross-entity cascading mutation in the system: it
// renames the library entry in place, then rewrites every exercise
// instance with a matching name across every session of every day.
func (s *libraryService) Rename(ctx context.Context, oldName, newName string) error {
	trimmed := strings.TrimSpace(newName)
	if trimmed == "" {
		return fmt.Errorf("exercise name cannot be empty")
	}

	for _, e := range s.library.All(ctx) {
		if domain.EqualName(e.Name, trimmed) && !domain.EqualName(e.Name, oldName) {
			return fmt.Errorf("an exercise with this name already exists")
		}
	}

	s.library.RenameEntry(ctx, oldName, trimmed)

	days := s.days.ReadAll(ctx)
	for di, day := range days {
		for si, session := range day.Sessions {
			for ei, ex := range session.Exercises {
				if domain.EqualName(ex.Name, oldName) {
					days[di].Sessions[si].Exercises[ei].Name = trimmed
				}
			}
		}
	}
	if !s.days.WriteAll(ctx, days) {
		return fmt.Errorf("rename failed: could not persist workout days")
	}
	return nil
}

// SyncMetadata refreshes the denormalized color/type copies on exercise
// instances from the current library entries.
func (s *libraryService) SyncMetadata(ctx context.Context) error {
	library := s.library.All(ctx)
	byName := make(map[string]domain.GlobalExercise, len(library))
	for _, e := range library {
		byName[strings.ToLower(e.Name)] = e
	}

	days := s.days.ReadAll(ctx)
	changed := false
	for di, day := range days {
		for si, session := range day.Sessions {
			for ei, ex := range session.Exercises {
				entry, ok := byName[strings.ToLower(ex.Name)]
				if !ok {
					continue
				}
				if ex.Color != entry.Color || ex.Type != entry.Type {
					days[di].Sessions[si].Exercises[ei].Color = entry.Color
					days[di].Sessions[si].Exercises[ei].Type = entry.Type
					changed = true
				}
			}
		}
	}
	if changed && !s.days.WriteAll(ctx, days) {
		return fmt.Errorf("could not persist workout days")
	}
	return nil
}
