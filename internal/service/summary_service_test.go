package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/routinerunner/internal/domain"
	"github.com/alexanderramin/routinerunner/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekly_RollsUpIsoWeek(t *testing.T) {
	// 2024-01-10 is a Wednesday; its ISO week runs Mon 2024-01-08 through
	// Sun 2024-01-14.
	ref := day(2024, 1, 10)
	env := newTestEnv(t, ref)
	u := seedUser(t, env)
	ctx := context.Background()

	// Inside the week.
	require.NoError(t, env.records.Create(ctx, testutil.NewTestRecord(u.ID, day(2024, 1, 8),
		testutil.WithRun(3.2, true), testutil.WithDetox(domain.DetoxSuccess), testutil.WithPushupCoord(2, 1))))
	require.NoError(t, env.records.Create(ctx, testutil.NewTestRecord(u.ID, day(2024, 1, 10),
		testutil.WithRun(3.4, true), testutil.WithDetox(domain.DetoxFail), testutil.WithPushupCoord(2, 2))))
	require.NoError(t, env.records.Create(ctx, testutil.NewTestRecord(u.ID, day(2024, 1, 11),
		testutil.WithRun(5.0, false))))

	// Outside the week: previous Sunday and next Monday.
	require.NoError(t, env.records.Create(ctx, testutil.NewTestRecord(u.ID, day(2024, 1, 7),
		testutil.WithRun(9.0, true), testutil.WithDetox(domain.DetoxSuccess), testutil.WithPushupCoord(1, 3))))
	require.NoError(t, env.records.Create(ctx, testutil.NewTestRecord(u.ID, day(2024, 1, 15),
		testutil.WithRun(9.0, true), testutil.WithPushupCoord(3, 1))))

	s, err := env.summary.Weekly(ctx, u.ID, ref)
	require.NoError(t, err)
	assert.InDelta(t, 6.6, s.TotalRunKm, 1e-9, "only completed runs inside the week count")
	assert.Equal(t, 1, s.DetoxSuccessDays)
	assert.Equal(t, "Week 2", s.PushupWeekLabel())
}

func TestWeekly_SundayReferenceStaysInSameWeek(t *testing.T) {
	// Sunday belongs to the week that started the previous Monday.
	ref := day(2024, 1, 14)
	env := newTestEnv(t, ref)
	u := seedUser(t, env)
	ctx := context.Background()

	require.NoError(t, env.records.Create(ctx, testutil.NewTestRecord(u.ID, day(2024, 1, 8),
		testutil.WithDetox(domain.DetoxSuccess))))

	s, err := env.summary.Weekly(ctx, u.ID, ref)
	require.NoError(t, err)
	assert.Equal(t, 1, s.DetoxSuccessDays)
}

func TestWeekly_EmptyWeek(t *testing.T) {
	env := newTestEnv(t, day(2024, 1, 10))
	u := seedUser(t, env)

	s, err := env.summary.Weekly(context.Background(), u.ID, day(2024, 1, 10))
	require.NoError(t, err)
	assert.Zero(t, s.TotalRunKm)
	assert.Zero(t, s.DetoxSuccessDays)
	assert.Equal(t, "Not started", s.PushupWeekLabel())
}
