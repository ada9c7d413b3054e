package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/alexanderramin/liftlog/internal/storage"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// DayRepo is the repository over the workout-days record. Every operation
// loads the full collection fresh from the store and writes the full
// collection back; there is no cache across calls. Mutations keep two
// invariants: at most one day per calendar date, and descending date order.
type DayRepo struct {
	store storage.Store
}

// NewDayRepo creates a DayRepo backed by the given store.
func NewDayRepo(store storage.Store) *DayRepo {
	return &DayRepo{store: store}
}

// ReadAll returns all workout days. Always returns a valid slice: missing
// or malformed data yields an empty collection. If structurally invalid
// entries were filtered out, the cleaned collection is written back
// immediately.
func (r *DayRepo) ReadAll(ctx context.Context) []domain.WorkoutDay {
	raw, ok := r.store.Read(ctx, storage.KeyDays)
	if !ok {
		return []domain.WorkoutDay{}
	}

	days, dropped, ok := decodeDays(raw)
	if !ok {
		return []domain.WorkoutDay{}
	}
	if dropped > 0 {
		log.Warnf("[storage] filtered out %d invalid workout day(s)", dropped)
		r.WriteAll(ctx, days)
	}
	return days
}

// WriteAll persists the full day collection, reporting success. Nil nested
// collections are normalized to empty ones so the stored form always
// round-trips through the shape check.
func (r *DayRepo) WriteAll(ctx context.Context, days []domain.WorkoutDay) bool {
	normalized := make([]domain.WorkoutDay, len(days))
	for i, d := range days {
		normalized[i] = normalizeDay(d)
	}

	data, err := json.Marshal(normalized)
	if err != nil {
		log.Errorf("[storage] encoding days: %v", err)
		return false
	}
	return r.store.Write(ctx, storage.KeyDays, string(data))
}

func normalizeDay(d domain.WorkoutDay) domain.WorkoutDay {
	if d.Sessions == nil {
		d.Sessions = []domain.WorkoutSession{}
	}
	for i, s := range d.Sessions {
		if s.Exercises == nil {
			d.Sessions[i].Exercises = []domain.Exercise{}
		}
		for j, ex := range s.Exercises {
			if ex.PBs == nil {
				d.Sessions[i].Exercises[j].PBs = []domain.PersonalBest{}
			}
		}
	}
	return d
}

func sortDaysDescending(days []domain.WorkoutDay) {
	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Time().After(days[j].Time())
	})
}

// GetByDate returns the day whose calendar date matches dateStr
// (YYYY-MM-DD).
func (r *DayRepo) GetByDate(ctx context.Context, dateStr string) (*domain.WorkoutDay, error) {
	for _, d := range r.ReadAll(ctx) {
		if d.DateKey() == dateStr {
			return &d, nil
		}
	}
	return nil, fmt.Errorf("day for date %s: %w", dateStr, ErrNotFound)
}

// GetByID returns the day with the given id.
func (r *DayRepo) GetByID(ctx context.Context, id string) (*domain.WorkoutDay, error) {
	for _, d := range r.ReadAll(ctx) {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, fmt.Errorf("day %s: %w", id, ErrNotFound)
}

// FindBySessionID returns the day owning the given session.
func (r *DayRepo) FindBySessionID(ctx context.Context, sessionID string) (*domain.WorkoutDay, error) {
	for _, d := range r.ReadAll(ctx) {
		for _, s := range d.Sessions {
			if s.ID == sessionID {
				return &d, nil
			}
		}
	}
	return nil, fmt.Errorf("day owning session %s: %w", sessionID, ErrNotFound)
}

// Upsert creates or replaces a day. A day with the same id is replaced in
// place; otherwise a day occupying the same calendar date is replaced (the
// id may change); otherwise the day is appended. The collection is
// re-sorted descending by date before being persisted. Returns the new
// full collection.
func (r *DayRepo) Upsert(ctx context.Context, day domain.WorkoutDay) []domain.WorkoutDay {
	if day.ID == "" || day.Date == "" {
		log.Errorf("[storage] refusing to upsert day without id/date")
		return r.ReadAll(ctx)
	}

	days := r.ReadAll(ctx)
	dateKey := day.DateKey()

	replaced := false
	for i, d := range days {
		if d.ID == day.ID {
			days[i] = day
			replaced = true
			break
		}
	}
	if !replaced {
		for i, d := range days {
			if d.DateKey() == dateKey {
				days[i] = day
				replaced = true
				break
			}
		}
	}
	if !replaced {
		days = append(days, day)
	}

	sortDaysDescending(days)
	r.WriteAll(ctx, days)
	return days
}

// Delete removes the day with the given id. Deleting an absent day is a
// no-op, not an error. Returns the new full collection.
func (r *DayRepo) Delete(ctx context.Context, id string) []domain.WorkoutDay {
	days := r.ReadAll(ctx)
	kept := days[:0]
	for _, d := range days {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	r.WriteAll(ctx, kept)
	return kept
}

// Clear removes the entire days record from the store.
func (r *DayRepo) Clear(ctx context.Context) {
	r.store.Delete(ctx, storage.KeyDays)
}

// resolveOwningDay finds the day containing sessionID in days. When the
// fresh collection does not contain the session but the caller's
// last-known day does, that fallback is used instead, inserting it into
// the collection first if it is not already present. Returns the
// (possibly extended) collection, the owning day's index, and whether an
// owner was found.
func resolveOwningDay(days []domain.WorkoutDay, sessionID string, fallback *domain.WorkoutDay) ([]domain.WorkoutDay, int, bool) {
	for i, d := range days {
		for _, s := range d.Sessions {
			if s.ID == sessionID {
				return days, i, true
			}
		}
	}

	if fallback == nil {
		return days, -1, false
	}
	inFallback := false
	for _, s := range fallback.Sessions {
		if s.ID == sessionID {
			inFallback = true
			break
		}
	}
	if !inFallback {
		return days, -1, false
	}

	for i, d := range days {
		if d.ID == fallback.ID {
			return days, i, true
		}
	}

	// The caller's day vanished from storage entirely; re-insert it.
	days = append(days, *fallback)
	sortDaysDescending(days)
	for i, d := range days {
		if d.ID == fallback.ID {
			return days, i, true
		}
	}
	return days, -1, false
}

// UpdateSession replaces a session inside its owning day and persists the
// collection. The owning day is located by scanning for the session id;
// when that fails, fallback (the caller's last-known day) is consulted.
// If no owner can be determined, returns ErrNotFound without mutating
// storage. On success returns the updated day and the full collection.
func (r *DayRepo) UpdateSession(ctx context.Context, session domain.WorkoutSession, fallback *domain.WorkoutDay) (*domain.WorkoutDay, []domain.WorkoutDay, error) {
	if !validSession(session) {
		return nil, r.ReadAll(ctx), fmt.Errorf("session missing id: %w", ErrNotFound)
	}

	days := r.ReadAll(ctx)
	days, idx, found := resolveOwningDay(days, session.ID, fallback)
	if !found {
		log.Warnf("[storage] could not find day for session %s", session.ID)
		return nil, days, fmt.Errorf("day owning session %s: %w", session.ID, ErrNotFound)
	}

	day := days[idx]
	sessions := make([]domain.WorkoutSession, len(day.Sessions))
	for i, s := range day.Sessions {
		if s.ID == session.ID {
			sessions[i] = session
		} else {
			sessions[i] = s
		}
	}
	day.Sessions = sessions
	days[idx] = day

	r.WriteAll(ctx, days)
	return &day, days, nil
}

// DeleteSession removes a session from its owning day, using the same
// ownership resolution as UpdateSession. If the removal empties the day's
// session list, the day itself is deleted. Returns the full collection and
// whether the day was removed; an unresolvable session is a no-op.
func (r *DayRepo) DeleteSession(ctx context.Context, sessionID string, fallback *domain.WorkoutDay) ([]domain.WorkoutDay, bool) {
	days := r.ReadAll(ctx)
	days, idx, found := resolveOwningDay(days, sessionID, fallback)
	if !found {
		return days, false
	}

	day := days[idx]
	remaining := make([]domain.WorkoutSession, 0, len(day.Sessions))
	for _, s := range day.Sessions {
		if s.ID != sessionID {
			remaining = append(remaining, s)
		}
	}

	if len(remaining) == 0 {
		days = append(days[:idx], days[idx+1:]...)
		r.WriteAll(ctx, days)
		return days, true
	}

	day.Sessions = remaining
	days[idx] = day
	r.WriteAll(ctx, days)
	return days, false
}

// EnsureResult is the outcome of EnsureDayWithSession.
type EnsureResult struct {
	Days    []domain.WorkoutDay
	Day     domain.WorkoutDay
	Session domain.WorkoutSession
	Created bool
}

// EnsureDayWithSession is the idempotent get-or-create for a calendar
// date: the day is created if absent (time-of-day zeroed, fresh id), and a
// default session is appended if the day has none. Persists only when
// something was created.
func (r *DayRepo) EnsureDayWithSession(ctx context.Context, date time.Time) EnsureResult {
	dateKey := date.UTC().Format("2006-01-02")
	days := r.ReadAll(ctx)

	var day *domain.WorkoutDay
	for i := range days {
		if days[i].DateKey() == dateKey {
			day = &days[i]
			break
		}
	}

	created := false
	var result domain.WorkoutDay
	if day == nil {
		midnight := time.Date(date.UTC().Year(), date.UTC().Month(), date.UTC().Day(), 0, 0, 0, 0, time.UTC)
		result = domain.WorkoutDay{
			ID:       uuid.New().String(),
			Date:     domain.Timestamp(midnight),
			Sessions: []domain.WorkoutSession{},
		}
		created = true
	} else {
		result = *day
	}

	if len(result.Sessions) == 0 {
		result.Sessions = []domain.WorkoutSession{{
			ID:        uuid.New().String(),
			Name:      domain.DefaultSessionName,
			Exercises: []domain.Exercise{},
		}}
		created = true
	}

	if created {
		days = r.Upsert(ctx, result)
	}

	return EnsureResult{
		Days:    days,
		Day:     result,
		Session: result.Sessions[0],
		Created: created,
	}
}
