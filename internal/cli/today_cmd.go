package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/routinerunner/internal/cli/formatter"
	"github.com/alexanderramin/routinerunner/internal/service"
	"github.com/spf13/cobra"
)

func newTodayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's routines",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if _, err := app.Settings.EnsureUser(ctx, service.DefaultUserID); err != nil {
				return err
			}

			view, err := app.Days.View(ctx, service.DefaultUserID, app.Clock.Today())
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatToday(view, app.Clock.Now()))
			return nil
		},
	}
}
