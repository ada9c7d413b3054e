package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/liftlog/internal/cli/formatter"
	"github.com/alexanderramin/liftlog/internal/stats"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	var allTime bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show streak and weekly frequency",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			days := app.Days.ReadAll(ctx)
			target := app.Settings.Target(ctx)
			now := time.Now()

			streak := stats.CalculateStreak(days, target, now)
			fmt.Println(formatter.RenderStreak(streak))
			fmt.Println()

			var buckets []stats.WeekBucket
			title := "Last 12 Weeks"
			if allTime {
				buckets = stats.FrequencyAllTime(days, target, now)
				title = "All Time"
			} else {
				buckets = stats.Frequency(days, target, now)
			}
			fmt.Print(formatter.RenderBox(title, formatter.RenderFrequencyChart(buckets, target)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&allTime, "all-time", false, "Chart every week since the first workout")
	return cmd
}
