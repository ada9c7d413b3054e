package stats

import (
	"sort"

	"github.com/alexanderramin/liftlog/internal/domain"
)

// AllPBsForExercise collects every PB recorded for the named exercise
// across all sessions of all days, matched case-insensitively, sorted
// newest first.
func AllPBsForExercise(name string, days []domain.WorkoutDay) []domain.PersonalBest {
	var pbs []domain.PersonalBest
	for _, day := range days {
		for _, session := range day.Sessions {
			for _, ex := range session.Exercises {
				if domain.EqualName(ex.Name, name) {
					pbs = append(pbs, ex.PBs...)
				}
			}
		}
	}

	sort.SliceStable(pbs, func(i, j int) bool {
		return domain.ParseTimestamp(pbs[i].Date).After(domain.ParseTimestamp(pbs[j].Date))
	})
	return pbs
}

// BestPBForExercise returns the PB maximizing reps x weight for the named
// exercise. Ties keep the first PB encountered in the reduction. Returns
// nil when the exercise has no PBs.
func BestPBForExercise(name string, days []domain.WorkoutDay) *domain.PersonalBest {
	pbs := AllPBsForExercise(name, days)
	if len(pbs) == 0 {
		return nil
	}

	best := pbs[0]
	for _, pb := range pbs[1:] {
		if pb.Score() > best.Score() {
			best = pb
		}
	}
	return &best
}
