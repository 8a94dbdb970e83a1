package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alexanderramin/routinerunner/internal/cli/formatter"
	"github.com/alexanderramin/routinerunner/internal/service"
	"github.com/spf13/cobra"
)

func newRunCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Track the daily run",
	}

	cmd.AddCommand(newRunLogCmd(app))

	return cmd
}

func newRunLogCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "log <km>",
		Short: "Log today's run distance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			km, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid distance %q: %w", args[0], err)
			}

			ctx := context.Background()
			if _, err := app.Settings.EnsureUser(ctx, service.DefaultUserID); err != nil {
				return err
			}

			rec, err := app.Days.GetOrCreate(ctx, service.DefaultUserID, app.Clock.Today())
			if err != nil {
				return err
			}

			rec, err = app.Days.SubmitRunDistance(ctx, rec.ID, km)
			if err != nil {
				return err
			}

			if rec.RunCompleted {
				fmt.Fprintf(cmd.OutOrStdout(), "Logged %s, target %s met %s\n",
					formatter.Km(km), formatter.Km(rec.RunTargetKm), formatter.CheckMark(true))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Logged %s, short of the %s target\n",
					formatter.Km(km), formatter.Km(rec.RunTargetKm))
			}
			return nil
		},
	}
}
