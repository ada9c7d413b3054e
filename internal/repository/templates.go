package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/alexanderramin/liftlog/internal/storage"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// TemplateRepo is the repository over saved session templates. Templates
// are keyed by case-insensitive name.
type TemplateRepo struct {
	store storage.Store
}

// NewTemplateRepo creates a TemplateRepo backed by the given store.
func NewTemplateRepo(store storage.Store) *TemplateRepo {
	return &TemplateRepo{store: store}
}

// All returns every saved template.
func (r *TemplateRepo) All(ctx context.Context) []domain.SessionTemplate {
	raw, ok := r.store.Read(ctx, storage.KeyTemplates)
	if !ok {
		return []domain.SessionTemplate{}
	}
	templates, dropped, ok := decodeTemplates(raw)
	if !ok {
		return []domain.SessionTemplate{}
	}
	if dropped > 0 {
		log.Warnf("[storage] filtered out %d invalid template(s)", dropped)
		r.writeAll(ctx, templates)
	}
	return templates
}

// SaveFromSession snapshots a session's exercise list as a template,
// stripping PBs and assigning fresh exercise ids. A template with the same
// name (case-insensitive) is updated in place, keeping its id and creation
// date. Reports whether an existing template was updated.
func (r *TemplateRepo) SaveFromSession(ctx context.Context, session domain.WorkoutSession) (saved, isUpdate bool) {
	templates := r.All(ctx)

	existing := -1
	for i, t := range templates {
		if domain.EqualName(t.Name, session.Name) {
			existing = i
			break
		}
	}

	tmpl := domain.SessionTemplate{
		ID:        uuid.New().String(),
		Name:      session.Name,
		Exercises: make([]domain.TemplateExercise, len(session.Exercises)),
		CreatedAt: domain.Timestamp(time.Now()),
	}
	for i, ex := range session.Exercises {
		tmpl.Exercises[i] = domain.TemplateExercise{
			ID:   uuid.New().String(),
			Name: ex.Name,
		}
	}

	if existing >= 0 {
		tmpl.ID = templates[existing].ID
		tmpl.CreatedAt = templates[existing].CreatedAt
		templates[existing] = tmpl
		return r.writeAll(ctx, templates), true
	}

	templates = append(templates, tmpl)
	return r.writeAll(ctx, templates), false
}

// Exists reports whether a template with the given name is saved.
func (r *TemplateRepo) Exists(ctx context.Context, name string) bool {
	_, ok := r.IDByName(ctx, name)
	return ok
}

// IDByName returns the id of the template matching name case-insensitively.
func (r *TemplateRepo) IDByName(ctx context.Context, name string) (string, bool) {
	for _, t := range r.All(ctx) {
		if domain.EqualName(t.Name, name) {
			return t.ID, true
		}
	}
	return "", false
}

// Delete removes the template with the given id.
func (r *TemplateRepo) Delete(ctx context.Context, id string) {
	templates := r.All(ctx)
	kept := templates[:0]
	for _, t := range templates {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	r.writeAll(ctx, kept)
}

// Unsave removes the template matching the given session name, reporting
// whether one was removed.
func (r *TemplateRepo) Unsave(ctx context.Context, name string) bool {
	id, ok := r.IDByName(ctx, name)
	if !ok {
		return false
	}
	r.Delete(ctx, id)
	return true
}

func (r *TemplateRepo) writeAll(ctx context.Context, templates []domain.SessionTemplate) bool {
	data, err := json.Marshal(templates)
	if err != nil {
		log.Errorf("[storage] encoding templates: %v", err)
		return false
	}
	return r.store.Write(ctx, storage.KeyTemplates, string(data))
}
