package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/liftlog/internal/repository"
	"github.com/alexanderramin/liftlog/internal/service"
	"github.com/alexanderramin/liftlog/internal/storage"
	"github.com/spf13/cobra"
)

// App holds the repositories and services used by CLI commands.
type App struct {
	Store     storage.Store
	Days      *repository.DayRepo
	Library   *repository.LibraryRepo
	Templates *repository.TemplateRepo
	Settings  *repository.SettingsRepo

	Workouts    service.WorkoutService
	LibrarySvc  service.LibraryService
	TemplateSvc service.TemplateService

	// IsInteractive reports whether stdin is an interactive terminal;
	// when true, running liftlog with no subcommand opens the dashboard.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "liftlog" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "liftlog",
		Short: "Personal workout tracker",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runDashboard(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newDayCmd(app),
		newSessionCmd(app),
		newExerciseCmd(app),
		newPBCmd(app),
		newTemplateCmd(app),
		newTargetCmd(app),
		newStatsCmd(app),
		newExportCmd(app),
		newImportCmd(app),
	)

	return root
}

// parseDate parses a user-supplied date argument. Empty means today.
func parseDate(s string) (time.Time, error) {
	switch s {
	case "", "today":
		return time.Now(), nil
	case "yesterday":
		return time.Now().AddDate(0, 0, -1), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return t, nil
}
