package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/routinerunner/internal/cli"
	"github.com/alexanderramin/routinerunner/internal/db"
	"github.com/alexanderramin/routinerunner/internal/repository"
	"github.com/alexanderramin/routinerunner/internal/service"
	"github.com/alexanderramin/routinerunner/internal/timer"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine data directory: env var or default ~/.routine
	dataDir := os.Getenv("ROUTINE_DATA_DIR")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".routine")
	}

	dbPath := os.Getenv("ROUTINE_DB")
	if dbPath == "" {
		dbPath = filepath.Join(dataDir, "routine.db")
	}

	// Calendar days are computed in a fixed location so the schedule does
	// not shift while travelling. Defaults to the system zone.
	loc := time.Local
	if tz := os.Getenv("ROUTINE_TZ"); tz != "" {
		parsed, err := time.LoadLocation(tz)
		if err != nil {
			return fmt.Errorf("loading timezone %q: %w", tz, err)
		}
		loc = parsed
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	userRepo := repository.NewSQLiteUserRepo(database)
	recordRepo := repository.NewSQLiteDailyRecordRepo(database)
	setRepo := repository.NewSQLitePushupSetRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	clock := service.SystemClock(loc)

	// Wire services
	pushupSvc := service.NewPushupService(userRepo, recordRepo, setRepo, uow, clock)

	app := &cli.App{
		Settings:  service.NewSettingsService(userRepo, clock),
		Days:      service.NewDayService(userRepo, recordRepo, pushupSvc, clock),
		Pushups:   pushupSvc,
		Summaries: service.NewSummaryService(recordRepo, clock),

		Clock:  clock,
		Timers: timer.NewStore(dataDir),
	}

	// Detect interactive terminal for wizard and timer screens.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
