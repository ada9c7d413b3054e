package stats

import (
	"time"

	"github.com/alexanderramin/liftlog/internal/domain"
)

// frequencyWindowWeeks is the fixed window of the recent-frequency chart.
const frequencyWindowWeeks = 12

// WeekBucket is one bar of the weekly frequency histogram.
type WeekBucket struct {
	WeekStart time.Time
	Workouts  int
	MetTarget bool
}

// Frequency buckets workout days into the last 12 calendar weeks, oldest
// first, ending with the week containing now.
func Frequency(days []domain.WorkoutDay, targetPerWeek int, now time.Time) []WeekBucket {
	buckets := make([]WeekBucket, 0, frequencyWindowWeeks)
	currentWeek := WeekStart(now)

	for i := frequencyWindowWeeks - 1; i >= 0; i-- {
		weekStart := currentWeek.AddDate(0, 0, -7*i)
		count := 0
		for _, day := range days {
			if inWeek(day.Time(), weekStart) {
				count++
			}
		}
		buckets = append(buckets, WeekBucket{
			WeekStart: weekStart,
			Workouts:  count,
			MetTarget: count >= targetPerWeek,
		})
	}
	return buckets
}

// FrequencyAllTime buckets workout days into every week from the first
// workout's week through the week containing now. Days with timestamps in
// the future relative to now are not counted.
func FrequencyAllTime(days []domain.WorkoutDay, targetPerWeek int, now time.Time) []WeekBucket {
	if len(days) == 0 {
		return nil
	}

	earliest := time.Time{}
	for _, day := range days {
		t := day.Time()
		if t.IsZero() || t.After(now) {
			continue
		}
		if earliest.IsZero() || t.Before(earliest) {
			earliest = t
		}
	}
	if earliest.IsZero() {
		return nil
	}

	var buckets []WeekBucket
	currentWeek := WeekStart(now)
	for weekStart := WeekStart(earliest); !weekStart.After(currentWeek); weekStart = weekStart.AddDate(0, 0, 7) {
		count := 0
		for _, day := range days {
			t := day.Time()
			if t.After(now) {
				continue
			}
			if inWeek(t, weekStart) {
				count++
			}
		}
		buckets = append(buckets, WeekBucket{
			WeekStart: weekStart,
			Workouts:  count,
			MetTarget: count >= targetPerWeek,
		})
	}
	return buckets
}
