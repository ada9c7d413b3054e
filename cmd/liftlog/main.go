package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/liftlog/internal/cli"
	"github.com/alexanderramin/liftlog/internal/repository"
	"github.com/alexanderramin/liftlog/internal/service"
	"github.com/alexanderramin/liftlog/internal/storage"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.liftlog/liftlog.db
	dbPath := os.Getenv("LIFTLOG_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".liftlog", "liftlog.db")
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	// Wire repositories
	days := repository.NewDayRepo(store)
	library := repository.NewLibraryRepo(store)
	templates := repository.NewTemplateRepo(store)
	settings := repository.NewSettingsRepo(store)

	app := &cli.App{
		Store:     store,
		Days:      days,
		Library:   library,
		Templates: templates,
		Settings:  settings,

		Workouts:    service.NewWorkoutService(days, library),
		LibrarySvc:  service.NewLibraryService(library, days),
		TemplateSvc: service.NewTemplateService(templates, days),
	}

	// Detect interactive terminal for the dashboard entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
