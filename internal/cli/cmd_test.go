package cli

import (
	"bytes"
	"strconv"
	"testing"
	"time"

	"github.com/alexanderramin/routinerunner/internal/repository"
	"github.com/alexanderramin/routinerunner/internal/service"
	"github.com/alexanderramin/routinerunner/internal/testutil"
	"github.com/alexanderramin/routinerunner/internal/timer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB for CLI integration
// tests. The clock is frozen on a Monday so push-up scheduling is stable.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	userRepo := repository.NewSQLiteUserRepo(database)
	recordRepo := repository.NewSQLiteDailyRecordRepo(database)
	setRepo := repository.NewSQLitePushupSetRepo(database)
	uow := testutil.NewTestUoW(database)

	clock := service.FixedClock(time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC))
	pushupSvc := service.NewPushupService(userRepo, recordRepo, setRepo, uow, clock)

	return &App{
		Settings:  service.NewSettingsService(userRepo, clock),
		Days:      service.NewDayService(userRepo, recordRepo, pushupSvc, clock),
		Pushups:   pushupSvc,
		Summaries: service.NewSummaryService(recordRepo, clock),

		Clock:  clock,
		Timers: timer.NewStore(t.TempDir()),

		// Wizard and timer screens stay off in tests.
		IsInteractive: func() bool { return false },
	}
}

// exec runs the root command with the given args and returns its output.
func exec(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := NewRootCmd(app)
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	root.SilenceUsage = true
	err := root.Execute()
	return buf.String(), err
}

func onboard(t *testing.T, app *App) {
	t.Helper()
	_, err := exec(t, app, "onboard", "--max-reps", "3", "--days", "mon,wed,fri", "--run-start", "1.0", "--rest-timer", "90")
	require.NoError(t, err)
}

func TestOnboardCmd_AssignsLevelAndFirstSession(t *testing.T) {
	app := testApp(t)

	out, err := exec(t, app, "onboard", "--max-reps", "3", "--days", "mon,wed,fri")
	require.NoError(t, err)
	// 2024-01-08 is a Monday and an active day.
	assert.Contains(t, out, "level 1")
	assert.Contains(t, out, "2024-01-08")
}

func TestOnboardCmd_NonInteractiveWithoutFlags(t *testing.T) {
	app := testApp(t)

	_, err := exec(t, app, "onboard")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--max-reps")
}

func TestTodayCmd_ShowsSessionAndSets(t *testing.T) {
	app := testApp(t)
	onboard(t, app)

	out, err := exec(t, app, "today")
	require.NoError(t, err)
	assert.Contains(t, out, "TODAY")
	assert.Contains(t, out, "week 1, session 1")
	assert.Contains(t, out, "reps")
	assert.Contains(t, out, "target 1.0 km")
}

func TestDetoxCmd_RecordsOutcome(t *testing.T) {
	app := testApp(t)
	onboard(t, app)

	out, err := exec(t, app, "detox", "success")
	require.NoError(t, err)
	assert.Contains(t, out, "SUCCESS")
	assert.Contains(t, out, "streak 1d")

	out, err = exec(t, app, "detox", "fail")
	require.NoError(t, err)
	assert.Contains(t, out, "FAIL")
	assert.NotContains(t, out, "streak")

	_, err = exec(t, app, "detox", "maybe")
	require.Error(t, err)
}

func TestRunLogCmd_ComparesAgainstTarget(t *testing.T) {
	app := testApp(t)
	onboard(t, app)

	out, err := exec(t, app, "run", "log", "1.2")
	require.NoError(t, err)
	assert.Contains(t, out, "target 1.0 km met")

	out, err = exec(t, app, "run", "log", "0.5")
	require.NoError(t, err)
	assert.Contains(t, out, "short of the 1.0 km target")
}

func TestPushupDoneCmd_InOrderAndTimerState(t *testing.T) {
	app := testApp(t)
	onboard(t, app)

	out, err := exec(t, app, "pushup", "done", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Set 1 done")
	assert.Contains(t, out, "routine pushup timer")

	// The persisted countdown uses the onboarded rest duration.
	state, err := app.Timers.Load(app.Clock.Now())
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Equal(t, 1, state.SetIndex)
	assert.Equal(t, 90, state.DurationSec)

	out, err = exec(t, app, "pushup", "timer")
	require.NoError(t, err)
	assert.Contains(t, out, "after set 1")

	// Out of order completion is rejected.
	_, err = exec(t, app, "pushup", "done", "3")
	require.Error(t, err)
}

func TestPushupDoneCmd_FinalSetFinishesSession(t *testing.T) {
	app := testApp(t)
	onboard(t, app)

	for i := 1; i <= 5; i++ {
		out, err := exec(t, app, "pushup", "done", strconv.Itoa(i))
		require.NoError(t, err)
		if i == 5 {
			assert.Contains(t, out, "Session complete")
		}
	}

	out, err := exec(t, app, "today")
	require.NoError(t, err)
	assert.Contains(t, out, "3 of 3 done")
}

func TestPushupSetsCmd_RestDay(t *testing.T) {
	app := testApp(t)
	// Active days exclude Monday, so the frozen today is a rest day.
	_, err := exec(t, app, "onboard", "--max-reps", "3", "--days", "tue,thu")
	require.NoError(t, err)

	out, err := exec(t, app, "pushup", "sets")
	require.NoError(t, err)
	assert.Contains(t, out, "Rest day")
}

func TestSummaryCmd_RollsUpWeek(t *testing.T) {
	app := testApp(t)
	onboard(t, app)

	_, err := exec(t, app, "run", "log", "1.2")
	require.NoError(t, err)
	_, err = exec(t, app, "detox", "success")
	require.NoError(t, err)

	out, err := exec(t, app, "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "WEEK OF JAN 8")
	assert.Contains(t, out, "1.2 km")
	assert.Contains(t, out, "1 of 7")
	assert.Contains(t, out, "Week 1")
}

func TestSettingsCmds_ShowAndSet(t *testing.T) {
	app := testApp(t)
	onboard(t, app)

	out, err := exec(t, app, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Mon, Wed, Fri")
	assert.Contains(t, out, "90s")

	out, err = exec(t, app, "settings", "set", "--run-start", "2.5", "--rest-timer", "45")
	require.NoError(t, err)
	assert.Contains(t, out, "2.5 km")
	assert.Contains(t, out, "45s")

	_, err = exec(t, app, "settings", "set", "--level", "9")
	require.Error(t, err)
}
