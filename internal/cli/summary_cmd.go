package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/routinerunner/internal/cli/formatter"
	"github.com/alexanderramin/routinerunner/internal/domain"
	"github.com/alexanderramin/routinerunner/internal/service"
	"github.com/spf13/cobra"
)

func newSummaryCmd(app *App) *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the weekly rollup",
		RunE: func(cmd *cobra.Command, args []string) error {
			refDate := app.Clock.Today()
			if dateStr != "" {
				parsed, err := time.ParseInLocation(domain.DateLayout, dateStr, app.Clock.Loc)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", dateStr, err)
				}
				refDate = parsed
			}

			ctx := context.Background()
			if _, err := app.Settings.EnsureUser(ctx, service.DefaultUserID); err != nil {
				return err
			}

			summary, err := app.Summaries.Weekly(ctx, service.DefaultUserID, refDate)
			if err != nil {
				return err
			}

			weekStart, weekEnd := domain.ISOWeekBounds(refDate, app.Clock.Loc)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWeekly(summary, weekStart, weekEnd))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Any date inside the week to summarize (YYYY-MM-DD, default today)")

	return cmd
}
