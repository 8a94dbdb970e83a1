package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/routinerunner/internal/cli/formatter"
	"github.com/alexanderramin/routinerunner/internal/domain"
	"github.com/alexanderramin/routinerunner/internal/service"
	"github.com/spf13/cobra"
)

func newDetoxCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "detox [success|fail|clear]",
		Short:     "Record today's detox outcome",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"success", "fail", "clear"},
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := domain.ParseDetoxStatus(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()
			if _, err := app.Settings.EnsureUser(ctx, service.DefaultUserID); err != nil {
				return err
			}

			rec, err := app.Days.GetOrCreate(ctx, service.DefaultUserID, app.Clock.Today())
			if err != nil {
				return err
			}

			if _, err := app.Days.SetDetoxStatus(ctx, rec.ID, status); err != nil {
				return err
			}

			streak, err := app.Days.DetoxStreak(ctx, service.DefaultUserID, app.Clock.Today())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Detox %s", formatter.DetoxPill(status))
			if status == domain.DetoxSuccess {
				// The streak counts completed days, so today extends it by one.
				fmt.Fprintf(cmd.OutOrStdout(), "  %s", formatter.Dim(fmt.Sprintf("streak %dd", streak+1)))
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	return cmd
}
