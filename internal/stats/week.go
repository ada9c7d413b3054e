package stats

import "time"

// Weeks are anchored to Monday: Sunday counts as the seventh day of the
// prior week.

// WeekStart returns the most recent Monday at 00:00:00 for the given time,
// in the time's location.
func WeekStart(t time.Time) time.Time {
	offset := 1 - int(t.Weekday())
	if t.Weekday() == time.Sunday {
		offset = -6
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, offset)
}

// WeekEnd returns the last instant counted as part of the week starting at
// weekStart: the following Sunday at 23:59:59.999.
func WeekEnd(weekStart time.Time) time.Time {
	return weekStart.AddDate(0, 0, 7).Add(-time.Millisecond)
}

// inWeek reports whether t falls within [weekStart, WeekEnd(weekStart)].
func inWeek(t, weekStart time.Time) bool {
	return !t.Before(weekStart) && !t.After(WeekEnd(weekStart))
}
