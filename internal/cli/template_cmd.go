package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/liftlog/internal/cli/formatter"
	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/spf13/cobra"
)

func newTemplateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Manage session templates",
	}

	cmd.AddCommand(
		newTemplateListCmd(app),
		newTemplateShowCmd(app),
		newTemplateRemoveCmd(app),
	)

	return cmd
}

func newTemplateListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			templates := app.Templates.All(context.Background())
			if len(templates) == 0 {
				fmt.Println("No templates saved yet.")
				return nil
			}

			rows := make([][]string, 0, len(templates))
			for _, t := range templates {
				rows = append(rows, []string{
					t.Name,
					fmt.Sprintf("%d", len(t.Exercises)),
					formatter.Dim(formatter.HumanDate(domain.ParseTimestamp(t.CreatedAt))),
				})
			}
			fmt.Print(formatter.RenderBox("Templates", formatter.RenderTable([]string{"NAME", "EXERCISES", "SAVED"}, rows)))
			return nil
		},
	}
}

func newTemplateShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Show a template's exercise list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, t := range app.Templates.All(context.Background()) {
				if domain.EqualName(t.Name, args[0]) {
					out := ""
					for _, ex := range t.Exercises {
						out += fmt.Sprintf("  %s\n", ex.Name)
					}
					if out == "" {
						out = formatter.Dim("  (no exercises)") + "\n"
					}
					fmt.Print(formatter.RenderBox(t.Name, out))
					return nil
				}
			}
			return fmt.Errorf("template %q not found", args[0])
		},
	}
}

func newTemplateRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Delete a saved template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Templates.Unsave(context.Background(), args[0]) {
				return fmt.Errorf("template %q not found", args[0])
			}
			fmt.Printf("Removed template %q\n", args[0])
			return nil
		},
	}
}
