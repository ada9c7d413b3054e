package repository

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/alexanderramin/liftlog/internal/storage"
	log "github.com/sirupsen/logrus"
)

// LibraryRepo is the repository over the global exercise library. Entries
// are keyed by case-insensitive name.
type LibraryRepo struct {
	store storage.Store
}

// NewLibraryRepo creates a LibraryRepo backed by the given store.
func NewLibraryRepo(store storage.Store) *LibraryRepo {
	return &LibraryRepo{store: store}
}

// All returns every library entry sorted by name.
func (r *LibraryRepo) All(ctx context.Context) []domain.GlobalExercise {
	raw, ok := r.store.Read(ctx, storage.KeyExercises)
	if !ok {
		return []domain.GlobalExercise{}
	}
	exercises, dropped, ok := decodeExercises(raw)
	if !ok {
		return []domain.GlobalExercise{}
	}
	if dropped > 0 {
		log.Warnf("[storage] filtered out %d invalid exercise(s)", dropped)
		r.writeAll(ctx, exercises)
	}
	sort.Slice(exercises, func(i, j int) bool {
		return exercises[i].Name < exercises[j].Name
	})
	return exercises
}

// Names returns all exercise names, sorted.
func (r *LibraryRepo) Names(ctx context.Context) []string {
	all := r.All(ctx)
	names := make([]string, len(all))
	for i, e := range all {
		names[i] = e.Name
	}
	return names
}

// Get returns the entry matching name case-insensitively.
func (r *LibraryRepo) Get(ctx context.Context, name string) (*domain.GlobalExercise, bool) {
	for _, e := range r.All(ctx) {
		if domain.EqualName(e.Name, name) {
			return &e, true
		}
	}
	return nil, false
}

// Color returns the stored color for an exercise, or "" when unset.
func (r *LibraryRepo) Color(ctx context.Context, name string) string {
	if e, ok := r.Get(ctx, name); ok {
		return e.Color
	}
	return ""
}

// Type returns the stored muscle-group type for an exercise, or "".
func (r *LibraryRepo) Type(ctx context.Context, name string) string {
	if e, ok := r.Get(ctx, name); ok {
		return e.Type
	}
	return ""
}

// Add creates a library entry the first time a name is used, or updates
// color/type on the existing entry. When no color is given but a type is,
// the color defaults from the muscle-group catalog.
func (r *LibraryRepo) Add(ctx context.Context, name, color, typ string) bool {
	exercises := r.All(ctx)

	finalColor := color
	if finalColor == "" && typ != "" {
		finalColor = domain.MuscleGroupColor(typ)
	}

	for i, e := range exercises {
		if domain.EqualName(e.Name, name) {
			if finalColor != "" {
				exercises[i].Color = finalColor
			}
			if typ != "" {
				exercises[i].Type = typ
			}
			return r.writeAll(ctx, exercises)
		}
	}

	exercises = append(exercises, domain.GlobalExercise{
		Name:      strings.TrimSpace(name),
		CreatedAt: domain.Timestamp(time.Now()),
		Color:     finalColor,
		Type:      typ,
	})
	return r.writeAll(ctx, exercises)
}

// SetColor updates an exercise's color; an empty color removes it. Setting
// a color on an unknown exercise creates the entry.
func (r *LibraryRepo) SetColor(ctx context.Context, name, color string) bool {
	exercises := r.All(ctx)
	for i, e := range exercises {
		if domain.EqualName(e.Name, name) {
			exercises[i].Color = color
			return r.writeAll(ctx, exercises)
		}
	}
	if color == "" {
		return true
	}
	exercises = append(exercises, domain.GlobalExercise{
		Name:      strings.TrimSpace(name),
		CreatedAt: domain.Timestamp(time.Now()),
		Color:     color,
	})
	return r.writeAll(ctx, exercises)
}

// RenameEntry renames the library entry matching oldName in place.
// Reports whether an entry was found. Collision checks belong to the
// caller; this is the storage primitive only.
func (r *LibraryRepo) RenameEntry(ctx context.Context, oldName, newName string) bool {
	exercises := r.All(ctx)
	for i, e := range exercises {
		if domain.EqualName(e.Name, oldName) {
			exercises[i].Name = newName
			return r.writeAll(ctx, exercises)
		}
	}
	return false
}

func (r *LibraryRepo) writeAll(ctx context.Context, exercises []domain.GlobalExercise) bool {
	data, err := json.Marshal(exercises)
	if err != nil {
		log.Errorf("[storage] encoding exercises: %v", err)
		return false
	}
	return r.store.Write(ctx, storage.KeyExercises, string(data))
}
