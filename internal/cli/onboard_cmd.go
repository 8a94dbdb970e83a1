package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/routinerunner/internal/domain"
	"github.com/alexanderramin/routinerunner/internal/service"
	"github.com/spf13/cobra"
)

func newOnboardCmd(app *App) *cobra.Command {
	var maxReps, restTimerSec int
	var daysCSV, startStr string
	var runStartKm float64

	cmd := &cobra.Command{
		Use:   "onboard",
		Short: "Set up the push-up program and run baseline",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if _, err := app.Settings.EnsureUser(ctx, service.DefaultUserID); err != nil {
				return err
			}

			req := service.OnboardRequest{
				MaxReps:      maxReps,
				RunStartKm:   runStartKm,
				RestTimerSec: restTimerSec,
				StartDate:    app.Clock.Today(),
			}

			if startStr != "" {
				start, err := time.ParseInLocation(domain.DateLayout, startStr, app.Clock.Loc)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", startStr, err)
				}
				req.StartDate = start
			}

			if daysCSV != "" {
				days, err := domain.ParseWeekdaySet(daysCSV)
				if err != nil {
					return err
				}
				req.SessionDays = days
			}

			// Without flags the wizard collects the answers, terminal
			// permitting.
			if !cmd.Flags().Changed("max-reps") {
				if !app.interactive() {
					return fmt.Errorf("no terminal for the wizard; pass --max-reps, --days, --run-start and --rest-timer")
				}
				if err := runOnboardWizard(&req); err != nil {
					return err
				}
			}

			u, err := app.Settings.Onboard(ctx, service.DefaultUserID, req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Onboarded at level %d, first session on %s\n",
				u.PushupLevel, firstSessionDate(u).Format(domain.DateLayout))
			return nil
		},
	}

	cmd.Flags().IntVar(&maxReps, "max-reps", 0, "Push-ups completed in one go during the max-rep test")
	cmd.Flags().StringVar(&daysCSV, "days", "mon,wed,fri", "Session weekdays (names or ISO numbers, comma separated)")
	cmd.Flags().Float64Var(&runStartKm, "run-start", 1.0, "Starting run distance in km")
	cmd.Flags().IntVar(&restTimerSec, "rest-timer", 60, "Rest timer duration in seconds")
	cmd.Flags().StringVar(&startStr, "start", "", "Program start date (YYYY-MM-DD, default today)")

	return cmd
}

// firstSessionDate finds the first active weekday on or after the start date.
func firstSessionDate(u *domain.User) time.Time {
	d := *u.PushupStartDate
	for i := 0; i < 7; i++ {
		wd := domain.ISOWeekday(d)
		for _, active := range u.PushupSessionDays {
			if wd == active {
				return d
			}
		}
		d = d.AddDate(0, 0, 1)
	}
	return *u.PushupStartDate
}
