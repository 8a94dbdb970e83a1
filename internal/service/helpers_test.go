package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/routinerunner/internal/domain"
	"github.com/alexanderramin/routinerunner/internal/repository"
	"github.com/alexanderramin/routinerunner/internal/testutil"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	users    repository.UserRepo
	records  repository.DailyRecordRepo
	sets     repository.PushupSetRepo
	settings SettingsService
	days     DayService
	pushups  PushupService
	summary  SummaryService
	clock    Clock
}

// newTestEnv wires all services against an in-memory database with the clock
// frozen at the given instant.
func newTestEnv(t *testing.T, at time.Time) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)

	users := repository.NewSQLiteUserRepo(database)
	records := repository.NewSQLiteDailyRecordRepo(database)
	sets := repository.NewSQLitePushupSetRepo(database)
	clock := FixedClock(at)

	pushups := NewPushupService(users, records, sets, uow, clock)
	return &testEnv{
		users:    users,
		records:  records,
		sets:     sets,
		settings: NewSettingsService(users, clock),
		days:     NewDayService(users, records, pushups, clock),
		pushups:  pushups,
		summary:  NewSummaryService(records, clock),
		clock:    clock,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// seedUser inserts an onboarded Mon/Wed/Fri user starting 2024-01-01.
func seedUser(t *testing.T, env *testEnv, opts ...testutil.UserOption) *domain.User {
	t.Helper()
	u := testutil.NewTestUser(opts...)
	require.NoError(t, env.users.Create(context.Background(), u))
	return u
}
