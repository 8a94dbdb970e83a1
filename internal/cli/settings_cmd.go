package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/routinerunner/internal/cli/formatter"
	"github.com/alexanderramin/routinerunner/internal/domain"
	"github.com/alexanderramin/routinerunner/internal/service"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the configuration",
	}

	cmd.AddCommand(newSettingsShowCmd(app), newSettingsSetCmd(app))

	return cmd
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := app.Settings.EnsureUser(context.Background(), service.DefaultUserID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSettings(u))
			return nil
		},
	}
}

func newSettingsSetCmd(app *App) *cobra.Command {
	var runStartKm float64
	var restTimerSec, level int
	var daysCSV string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change configuration values",
		Long: `Change configuration values. Already-created days keep their frozen
run target and session assignment; changes apply from the next day on.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if _, err := app.Settings.EnsureUser(ctx, service.DefaultUserID); err != nil {
				return err
			}

			var patch domain.UserSettingsPatch
			if cmd.Flags().Changed("run-start") {
				patch.RunStartKm = &runStartKm
			}
			if cmd.Flags().Changed("rest-timer") {
				patch.RestTimerDefaultSec = &restTimerSec
			}
			if cmd.Flags().Changed("level") {
				patch.PushupLevel = &level
			}
			if cmd.Flags().Changed("days") {
				days, err := domain.ParseWeekdaySet(daysCSV)
				if err != nil {
					return err
				}
				patch.PushupSessionDays = days
			}

			u, err := app.Settings.Update(ctx, service.DefaultUserID, patch)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSettings(u))
			return nil
		},
	}

	cmd.Flags().Float64Var(&runStartKm, "run-start", 0, "Starting run distance in km")
	cmd.Flags().IntVar(&restTimerSec, "rest-timer", 0, "Rest timer duration in seconds")
	cmd.Flags().IntVar(&level, "level", 0, "Curriculum level (1-7)")
	cmd.Flags().StringVar(&daysCSV, "days", "", "Session weekdays (names or ISO numbers, comma separated)")

	return cmd
}
