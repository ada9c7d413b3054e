package stats

import (
	"time"

	"github.com/alexanderramin/liftlog/internal/domain"
)

// streakWindowWeeks is how far back streaks are computed.
const streakWindowWeeks = 52

// Streak is the result of a streak computation. A week qualifies when its
// workout-day count meets the weekly target.
type Streak struct {
	Current int
	Longest int
}

// CalculateStreak computes the current and longest runs of consecutive
// qualifying weeks over the trailing year, ending at the week containing
// now. The current streak counts backward from the present week and stops
// at the first non-qualifying week.
func CalculateStreak(days []domain.WorkoutDay, targetPerWeek int, now time.Time) Streak {
	if len(days) == 0 {
		return Streak{}
	}

	currentWeek := WeekStart(now)
	counts := make([]int, streakWindowWeeks)
	for i := 0; i < streakWindowWeeks; i++ {
		weekStart := currentWeek.AddDate(0, 0, -7*(streakWindowWeeks-1-i))
		for _, day := range days {
			if inWeek(day.Time(), weekStart) {
				counts[i]++
			}
		}
	}

	var s Streak
	for i := len(counts) - 1; i >= 0; i-- {
		if counts[i] >= targetPerWeek {
			s.Current++
		} else {
			break
		}
	}

	run := 0
	for i := len(counts) - 1; i >= 0; i-- {
		if counts[i] >= targetPerWeek {
			run++
			if run > s.Longest {
				s.Longest = run
			}
		} else {
			run = 0
		}
	}

	return s
}
