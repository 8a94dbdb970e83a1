package cli

import (
	"github.com/alexanderramin/routinerunner/internal/service"
	"github.com/alexanderramin/routinerunner/internal/timer"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Settings  service.SettingsService
	Days      service.DayService
	Pushups   service.PushupService
	Summaries service.SummaryService

	Clock  service.Clock
	Timers *timer.Store

	// IsInteractive reports whether stdin is a terminal. Wizard and timer
	// screens are only offered when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "routine" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "routine",
		Short: "Daily detox, run and push-up routine tracker",
	}

	root.AddCommand(
		newOnboardCmd(app),
		newTodayCmd(app),
		newDetoxCmd(app),
		newRunCmd(app),
		newPushupCmd(app),
		newSummaryCmd(app),
		newSettingsCmd(app),
	)

	return root
}
