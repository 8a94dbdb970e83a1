package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alexanderramin/routinerunner/internal/cli/formatter"
	"github.com/alexanderramin/routinerunner/internal/service"
	"github.com/alexanderramin/routinerunner/internal/timer"
	"github.com/spf13/cobra"
)

func newPushupCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pushup",
		Short: "Track the push-up session",
	}

	cmd.AddCommand(
		newPushupSetsCmd(app),
		newPushupDoneCmd(app),
		newPushupTimerCmd(app),
	)

	return cmd
}

// todayRecord ensures the user exists and returns today's record.
func todayRecord(ctx context.Context, app *App) (string, error) {
	if _, err := app.Settings.EnsureUser(ctx, service.DefaultUserID); err != nil {
		return "", err
	}
	rec, err := app.Days.GetOrCreate(ctx, service.DefaultUserID, app.Clock.Today())
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func newPushupSetsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sets",
		Short: "Show today's sets",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			recordID, err := todayRecord(ctx, app)
			if err != nil {
				return err
			}

			sets, err := app.Pushups.SetsForRecord(ctx, recordID)
			if err != nil {
				return err
			}
			if sets == nil {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Rest day, no sets scheduled."))
				return nil
			}

			rows := make([][]string, 0, len(sets))
			for _, set := range sets {
				rows = append(rows, []string{
					strconv.Itoa(set.SetIndex),
					fmt.Sprintf("%d reps", set.TargetReps),
					formatter.CheckMark(set.Completed),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable([]string{"Set", "Target", "Done"}, rows))
			return nil
		},
	}
}

func newPushupDoneCmd(app *App) *cobra.Command {
	var noTimer bool

	cmd := &cobra.Command{
		Use:   "done <set>",
		Short: "Complete a set and start the rest timer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setIndex, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid set index %q: %w", args[0], err)
			}

			ctx := context.Background()
			recordID, err := todayRecord(ctx, app)
			if err != nil {
				return err
			}

			res, err := app.Pushups.CompleteSet(ctx, recordID, setIndex)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Set %d done %s\n", res.Set.SetIndex, formatter.CheckMark(true))

			if res.AllDone {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("Session complete, all five sets finished."))
				return nil
			}

			if !res.StartTimer || noTimer {
				return nil
			}

			state := timer.NewState(res.Set.SetIndex, res.TimerSec, app.Clock.Now())
			if err := app.Timers.Save(state); err != nil {
				return err
			}
			if app.interactive() {
				return runTimerView(app, state)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Rest for %ds, resume the countdown with %s\n",
				res.TimerSec, formatter.Bold("routine pushup timer"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noTimer, "no-timer", false, "Skip the rest timer countdown")

	return cmd
}

func newPushupTimerCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "timer",
		Short: "Resume a running rest timer",
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := app.Timers.Load(app.Clock.Now())
			if err != nil {
				return err
			}
			if state == nil {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No rest timer running."))
				return nil
			}
			if app.interactive() {
				return runTimerView(app, *state)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s left after set %d\n",
				state.Remaining(app.Clock.Now()).Round(timerTickInterval), state.SetIndex)
			return nil
		},
	}
}
