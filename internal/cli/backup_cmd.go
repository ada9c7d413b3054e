package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/liftlog/internal/backup"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export [PATH]",
		Short: "Export all data to a backup JSON file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			doc := backup.Export(context.Background(), app.Store, now)
			path := out
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				path = backup.DefaultFilename(now)
			}
			if err := doc.WriteFile(path); err != nil {
				return err
			}
			fmt.Printf("Exported backup to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "Output file (default workout-tracker-backup-<date>.json)")
	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	var replace, yes bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import data from a backup JSON file",
		Long: `Import data from a backup JSON file.

By default imported records are merged into the existing data; records
with the same id (days) or name (exercises, templates) are taken from
the backup. With --replace the existing data is overwritten wholesale.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := backup.Load(args[0])
			if err != nil {
				return err
			}

			if replace && !yes {
				if app.IsInteractive != nil && app.IsInteractive() {
					confirmed, err := confirmForm("Replace ALL existing data with the backup? This cannot be undone.")
					if err != nil {
						return err
					}
					if !confirmed {
						fmt.Println("Aborted.")
						return nil
					}
				} else {
					return fmt.Errorf("--replace requires --yes in non-interactive mode")
				}
			}

			if err := backup.Import(context.Background(), app.Store, doc, replace); err != nil {
				return err
			}
			if replace {
				fmt.Println("Backup imported (existing data replaced).")
			} else {
				fmt.Println("Backup imported (merged with existing data).")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "Overwrite existing data instead of merging")
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip confirmation")
	return cmd
}
