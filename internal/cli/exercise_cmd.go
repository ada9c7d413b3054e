package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/liftlog/internal/cli/formatter"
	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/spf13/cobra"
)

func newExerciseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exercise",
		Short: "Manage the exercise library",
	}

	cmd.AddCommand(
		newExerciseListCmd(app),
		newExerciseAddCmd(app),
		newExerciseRenameCmd(app),
		newExerciseColorCmd(app),
		newExerciseTypesCmd(),
	)

	return cmd
}

func newExerciseListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List library exercises",
		RunE: func(cmd *cobra.Command, args []string) error {
			exercises := app.Library.All(context.Background())
			if len(exercises) == 0 {
				fmt.Println("No exercises in the library yet.")
				return nil
			}

			headers := []string{"", "NAME", "TYPE", "SINCE"}
			rows := make([][]string, 0, len(exercises))
			for _, e := range exercises {
				rows = append(rows, []string{
					formatter.Swatch(e.Color),
					e.Name,
					formatter.MuscleTag(e.Type, domain.MuscleGroupColor(e.Type)),
					formatter.Dim(formatter.HumanDate(domain.ParseTimestamp(e.CreatedAt))),
				})
			}
			fmt.Print(formatter.RenderBox("Exercise Library", formatter.RenderTable(headers, rows)))
			return nil
		},
	}
}

func newExerciseAddCmd(app *App) *cobra.Command {
	var typ, color string

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add an exercise to the library (or update its color/type)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if typ != "" && domain.MuscleGroupColor(typ) == "" {
				return fmt.Errorf("unknown muscle group %q (see: liftlog exercise types)", typ)
			}
			if !app.Library.Add(ctx, args[0], color, typ) {
				return fmt.Errorf("could not save exercise %q", args[0])
			}
			// Keep denormalized copies on past sessions in step.
			if err := app.LibrarySvc.SyncMetadata(ctx); err != nil {
				return err
			}
			fmt.Printf("Saved exercise %q\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&typ, "type", "", "Muscle group (Chest, Back, Legs, ...)")
	cmd.Flags().StringVar(&color, "color", "", "Display color as #rrggbb (defaults from the muscle group)")
	return cmd
}

func newExerciseRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename OLD NEW",
		Short: "Rename a library exercise everywhere it appears",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.LibrarySvc.Rename(context.Background(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("Renamed %q to %q\n", args[0], args[1])
			return nil
		},
	}
}

func newExerciseColorCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "color NAME [HEX]",
		Short: "Set or clear an exercise's display color",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			color := ""
			if len(args) == 2 {
				color = args[1]
			}
			if !app.Library.SetColor(ctx, args[0], color) {
				return fmt.Errorf("could not update color for %q", args[0])
			}
			if err := app.LibrarySvc.SyncMetadata(ctx); err != nil {
				return err
			}
			if color == "" {
				fmt.Printf("Cleared color for %q\n", args[0])
			} else {
				fmt.Printf("Set color of %q to %s\n", args[0], color)
			}
			return nil
		},
	}
}

func newExerciseTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the muscle-group types and their colors",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(domain.MuscleGroups))
			for _, g := range domain.MuscleGroups {
				rows = append(rows, []string{formatter.Swatch(g.Color), g.Name, formatter.Dim(g.Color)})
			}
			fmt.Print(formatter.RenderTable([]string{"", "TYPE", "COLOR"}, rows))
			return nil
		},
	}
}
