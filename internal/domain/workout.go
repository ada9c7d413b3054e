package domain

import (
	"strings"
	"time"
)

// DefaultSessionName is the name given to a session created implicitly when
// a day is opened with no sessions.
const DefaultSessionName = "Workout"

// PersonalBest is a single recorded reps x weight performance. Immutable once
// created except for deletion.
type PersonalBest struct {
	ID     string  `json:"id"`
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
	Date   string  `json:"date"`
}

// Score is the value PBs are ranked by.
func (p PersonalBest) Score() float64 {
	return float64(p.Reps) * p.Weight
}

// Exercise is one movement tracked within a session, with its own PB history.
// Color and Type are denormalized copies of the library entry at the time of
// addition.
type Exercise struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	PBs   []PersonalBest `json:"pbs"`
	Color string         `json:"color,omitempty"`
	Type  string         `json:"type,omitempty"`
}

// BestPB returns the PB with the highest reps x weight score within this
// exercise instance. Ties keep the first-seen PB. Returns nil when there are
// no PBs.
func (e Exercise) BestPB() *PersonalBest {
	if len(e.PBs) == 0 {
		return nil
	}
	best := e.PBs[0]
	for _, pb := range e.PBs[1:] {
		if pb.Score() > best.Score() {
			best = pb
		}
	}
	return &best
}

// WorkoutSession is a named collection of exercises performed together,
// belonging to exactly one day.
type WorkoutSession struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Exercises []Exercise `json:"exercises"`
}

// WorkoutDay is a calendar-date container for zero or more sessions.
// At most one day exists per calendar date.
type WorkoutDay struct {
	ID       string           `json:"id"`
	Date     string           `json:"date"`
	Sessions []WorkoutSession `json:"sessions"`
}

// DateKey returns the calendar-date portion of the day's timestamp
// (YYYY-MM-DD), ignoring time-of-day.
func (d WorkoutDay) DateKey() string {
	return DateKey(d.Date)
}

// Time parses the day's timestamp. Returns the zero time if it does not
// parse, which sorts such days last.
func (d WorkoutDay) Time() time.Time {
	return ParseTimestamp(d.Date)
}

// TotalExercises counts exercises across all sessions of the day.
func (d WorkoutDay) TotalExercises() int {
	total := 0
	for _, s := range d.Sessions {
		total += len(s.Exercises)
	}
	return total
}

// DateKey extracts the YYYY-MM-DD portion of an ISO-8601 timestamp string.
func DateKey(timestamp string) string {
	if i := strings.IndexByte(timestamp, 'T'); i >= 0 {
		return timestamp[:i]
	}
	return timestamp
}

// ParseTimestamp parses an ISO-8601 timestamp, accepting both full RFC3339
// timestamps and bare YYYY-MM-DD dates. Returns the zero time on failure.
func ParseTimestamp(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return time.Time{}
}

// Timestamp formats a time as the ISO-8601 string stored on entities.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
