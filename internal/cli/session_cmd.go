package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/liftlog/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage workout sessions",
	}

	cmd.AddCommand(
		newSessionAddCmd(app),
		newSessionRenameCmd(app),
		newSessionRemoveCmd(app),
		newSessionSaveTemplateCmd(app),
		newSessionLoadTemplateCmd(app),
	)

	return cmd
}

func newSessionAddCmd(app *App) *cobra.Command {
	var dateFlag, name string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a session to a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDate(dateFlag)
			if err != nil {
				return err
			}
			day, err := app.Workouts.AddSession(context.Background(), date, name)
			if err != nil {
				return err
			}
			added := day.Sessions[len(day.Sessions)-1]
			fmt.Printf("Added session %q (%s) to %s\n", added.Name, formatter.TruncID(added.ID), day.DateKey())
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Day to add the session to (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&name, "name", "", "Session name")
	return cmd
}

func newSessionRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename ID NAME",
		Short: "Rename a session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Workouts.RenameSession(context.Background(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("Renamed session %s to %q\n", args[0], args[1])
			return nil
		},
	}
}

func newSessionRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a session; its day is removed too when this was the last one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, dayRemoved := app.Days.DeleteSession(context.Background(), args[0], nil)
			if dayRemoved {
				fmt.Printf("Removed session %s and its now-empty day\n", args[0])
			} else {
				fmt.Printf("Removed session %s\n", args[0])
			}
			return nil
		},
	}
}

func newSessionSaveTemplateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "save-template SESSION_ID",
		Short: "Save a session's exercise list as a reusable template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			day, err := app.Days.FindBySessionID(ctx, args[0])
			if err != nil {
				return err
			}
			for _, s := range day.Sessions {
				if s.ID == args[0] {
					saved, isUpdate := app.Templates.SaveFromSession(ctx, s)
					if !saved {
						return fmt.Errorf("could not save template %q", s.Name)
					}
					if isUpdate {
						fmt.Printf("Updated template %q\n", s.Name)
					} else {
						fmt.Printf("Saved template %q\n", s.Name)
					}
					return nil
				}
			}
			return fmt.Errorf("session %s not found in its day", args[0])
		},
	}
}

func newSessionLoadTemplateCmd(app *App) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "load-template NAME",
		Short: "Instantiate a template as a new session on a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDate(dateFlag)
			if err != nil {
				return err
			}
			day, session, err := app.TemplateSvc.InstantiateToDate(context.Background(), args[0], date)
			if err != nil {
				return err
			}
			fmt.Printf("Loaded template %q as session %s on %s (%d %s)\n",
				session.Name, formatter.TruncID(session.ID), day.DateKey(),
				len(session.Exercises), formatter.Plural(len(session.Exercises), "exercise", "exercises"))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Day to load the template onto (YYYY-MM-DD, default today)")
	return cmd
}
