package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/liftlog/internal/stats"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderFrequencyChart renders the weekly workout histogram as horizontal
// bars, one row per week, with the target marked. Weeks that met the
// target render green, the rest yellow.
func RenderFrequencyChart(buckets []stats.WeekBucket, target int) string {
	if len(buckets) == 0 {
		return Dim("No workouts recorded yet.")
	}

	maxCount := target
	for _, b := range buckets {
		if b.Workouts > maxCount {
			maxCount = b.Workouts
		}
	}

	var sb strings.Builder
	for _, b := range buckets {
		label := b.WeekStart.Format("Jan 2")
		bar := strings.Repeat(filledBlock, b.Workouts)
		pad := strings.Repeat(emptyBlock, maxCount-b.Workouts)

		style := StyleYellow
		if b.MetTarget {
			style = StyleGreen
		}
		sb.WriteString(fmt.Sprintf("%6s  %s%s  %d\n", label, style.Render(bar), Dim(pad), b.Workouts))
	}
	sb.WriteString(fmt.Sprintf("\n%s\n", Dim(fmt.Sprintf("target: %d/week", target))))
	return sb.String()
}

// RenderStreak renders the streak summary line.
func RenderStreak(s stats.Streak) string {
	flame := StyleHeader.Render("🔥")
	return fmt.Sprintf("%s %s %s",
		flame,
		Bold(fmt.Sprintf("%d-week streak", s.Current)),
		Dim(fmt.Sprintf("(best: %d)", s.Longest)))
}
