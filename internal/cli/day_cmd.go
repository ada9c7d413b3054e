package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/liftlog/internal/cli/formatter"
	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/alexanderramin/liftlog/internal/stats"
	"github.com/spf13/cobra"
)

func newDayCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day",
		Short: "Manage workout days",
	}

	cmd.AddCommand(
		newDayListCmd(app),
		newDayAddCmd(app),
		newDayShowCmd(app),
		newDayRemoveCmd(app),
		newDayClearCmd(app),
	)

	return cmd
}

func newDayListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List workout days, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			days := app.Days.ReadAll(context.Background())
			if len(days) == 0 {
				fmt.Println("No workout days yet.")
				return nil
			}

			headers := []string{"ID", "DATE", "SESSIONS", "EXERCISES"}
			rows := make([][]string, 0, len(days))
			for _, d := range days {
				rows = append(rows, []string{
					formatter.TruncID(d.ID),
					formatter.HumanDate(d.Time()),
					fmt.Sprintf("%d", len(d.Sessions)),
					fmt.Sprintf("%d", d.TotalExercises()),
				})
			}
			fmt.Print(formatter.RenderBox("Workout Days", formatter.RenderTable(headers, rows)))
			return nil
		},
	}
}

func newDayAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add [DATE]",
		Short: "Open a workout day, creating it (with a default session) if needed",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := ""
			if len(args) == 1 {
				arg = args[0]
			}
			date, err := parseDate(arg)
			if err != nil {
				return err
			}

			result := app.Days.EnsureDayWithSession(context.Background(), date)
			if result.Created {
				fmt.Printf("Opened %s with session %q (%s)\n",
					result.Day.DateKey(), result.Session.Name, formatter.TruncID(result.Session.ID))
			} else {
				fmt.Printf("Day %s already exists with %d %s\n",
					result.Day.DateKey(), len(result.Day.Sessions),
					formatter.Plural(len(result.Day.Sessions), "session", "sessions"))
			}
			return nil
		},
	}
}

func newDayShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show DATE",
		Short: "Show the sessions and exercises of a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			date, err := parseDate(args[0])
			if err != nil {
				return err
			}
			day, err := app.Days.GetByDate(ctx, date.UTC().Format("2006-01-02"))
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderBox(day.DateKey(), renderDayDetail(day, app.Days.ReadAll(ctx))))
			return nil
		},
	}
}

func renderDayDetail(day *domain.WorkoutDay, allDays []domain.WorkoutDay) string {
	out := ""
	for _, s := range day.Sessions {
		out += fmt.Sprintf("%s %s\n", formatter.Bold(s.Name), formatter.Dim(formatter.TruncID(s.ID)))
		for _, ex := range s.Exercises {
			line := fmt.Sprintf("  %s %s", formatter.Swatch(ex.Color), ex.Name)
			if best := ex.BestPB(); best != nil {
				line += "  " + formatter.Dim(formatter.FormatPB(best.Reps, best.Weight))
				// Session best vs all-time best for the same movement.
				if allTime := stats.BestPBForExercise(ex.Name, allDays); allTime != nil && allTime.ID == best.ID {
					line += " " + formatter.StyleGreen.Render("★")
				}
			}
			out += line + "\n"
		}
	}
	return out
}

func newDayRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a workout day and all its sessions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Days.Delete(context.Background(), args[0])
			fmt.Printf("Removed day %s\n", args[0])
			return nil
		},
	}
}

func newDayClearCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all workout days",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				confirmed, err := confirmForm("Delete ALL workout days? This cannot be undone.")
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Println("Aborted.")
					return nil
				}
			}
			app.Days.Clear(context.Background())
			fmt.Println("All workout days deleted.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip confirmation")
	return cmd
}
