package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/liftlog/internal/cli/formatter"
	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/alexanderramin/liftlog/internal/stats"
	"github.com/spf13/cobra"
)

func newPBCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pb",
		Short: "Log and inspect personal bests",
	}

	cmd.AddCommand(
		newPBLogCmd(app),
		newPBListCmd(app),
		newPBBestCmd(app),
	)

	return cmd
}

func newPBLogCmd(app *App) *cobra.Command {
	var dateFlag string
	var reps int
	var weight float64

	cmd := &cobra.Command{
		Use:   "log [EXERCISE]",
		Short: "Record a personal best",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}

			// Fall back to a form when the numbers weren't given as flags.
			if reps <= 0 || weight <= 0 {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("--reps and --weight are required in non-interactive mode")
				}
				repsStr, weightStr := "", ""
				if err := pbForm(&name, &repsStr, &weightStr).Run(); err != nil {
					return err
				}
				reps, _ = strconv.Atoi(strings.TrimSpace(repsStr))
				weight, _ = strconv.ParseFloat(strings.TrimSpace(weightStr), 64)
			}

			date, err := parseDate(dateFlag)
			if err != nil {
				return err
			}
			pb, err := app.Workouts.LogPB(context.Background(), date, name, reps, weight)
			if err != nil {
				return err
			}
			fmt.Printf("Logged %s for %q on %s\n",
				formatter.FormatPB(pb.Reps, pb.Weight), strings.TrimSpace(name), domain.DateKey(pb.Date))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Day to log the PB on (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&reps, "reps", 0, "Repetitions")
	cmd.Flags().Float64Var(&weight, "weight", 0, "Weight in kg")
	return cmd
}

func newPBListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list EXERCISE",
		Short: "List all PBs recorded for an exercise, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			days := app.Days.ReadAll(context.Background())
			pbs := stats.AllPBsForExercise(args[0], days)
			if len(pbs) == 0 {
				fmt.Printf("No PBs recorded for %q.\n", args[0])
				return nil
			}

			best := stats.BestPBForExercise(args[0], days)
			rows := make([][]string, 0, len(pbs))
			for _, pb := range pbs {
				marker := ""
				if best != nil && pb.ID == best.ID {
					marker = formatter.StyleGreen.Render("★")
				}
				rows = append(rows, []string{
					formatter.HumanDate(domain.ParseTimestamp(pb.Date)),
					formatter.FormatPB(pb.Reps, pb.Weight),
					marker,
				})
			}
			fmt.Print(formatter.RenderBox(args[0], formatter.RenderTable([]string{"DATE", "PB", ""}, rows)))
			return nil
		},
	}
}

func newPBBestCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "best EXERCISE",
		Short: "Show the best PB (reps x weight) for an exercise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			days := app.Days.ReadAll(context.Background())
			best := stats.BestPBForExercise(args[0], days)
			if best == nil {
				fmt.Printf("No PBs recorded for %q.\n", args[0])
				return nil
			}
			fmt.Printf("%s %s %s\n",
				formatter.Bold(args[0]),
				formatter.FormatPB(best.Reps, best.Weight),
				formatter.Dim(formatter.HumanDate(domain.ParseTimestamp(best.Date))))
			return nil
		},
	}
}
