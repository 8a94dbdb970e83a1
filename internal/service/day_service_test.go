package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/routinerunner/internal/domain"
	"github.com/alexanderramin/routinerunner/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreate_FirstDayUsesStartDistance(t *testing.T) {
	env := newTestEnv(t, day(2024, 1, 1))
	u := seedUser(t, env, testutil.WithRunStartKm(1.0))
	ctx := context.Background()

	rec, err := env.days.GetOrCreate(ctx, u.ID, day(2024, 1, 1))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, rec.RunTargetKm, 1e-9)
	require.NotNil(t, rec.PushupWeek)
	assert.Equal(t, 1, *rec.PushupWeek)
	require.NotNil(t, rec.PushupSession)
	assert.Equal(t, 1, *rec.PushupSession)
}

func TestGetOrCreate_RestDayHasNoCoordinate(t *testing.T) {
	env := newTestEnv(t, day(2024, 1, 2))
	u := seedUser(t, env)
	ctx := context.Background()

	// Tuesday with a Mon/Wed/Fri pattern.
	rec, err := env.days.GetOrCreate(ctx, u.ID, day(2024, 1, 2))
	require.NoError(t, err)
	assert.Nil(t, rec.PushupWeek)
	assert.Nil(t, rec.PushupSession)
	assert.False(t, rec.IsPushupDay())
}

func TestGetOrCreate_NotOnboardedSkipsScheduling(t *testing.T) {
	env := newTestEnv(t, day(2024, 1, 1))
	ctx := context.Background()

	u, err := env.settings.EnsureUser(ctx, DefaultUserID)
	require.NoError(t, err)
	require.False(t, u.Onboarded())

	rec, err := env.days.GetOrCreate(ctx, u.ID, day(2024, 1, 1))
	require.NoError(t, err)
	assert.Nil(t, rec.PushupWeek)
	assert.Nil(t, rec.PushupSession)
}

func TestGetOrCreate_TargetFromLastCompletedRun(t *testing.T) {
	env := newTestEnv(t, day(2024, 1, 5))
	u := seedUser(t, env)
	ctx := context.Background()

	require.NoError(t, env.records.Create(ctx, testutil.NewTestRecord(u.ID, day(2024, 1, 3),
		testutil.WithRun(3.4, true))))

	rec, err := env.days.GetOrCreate(ctx, u.ID, day(2024, 1, 5))
	require.NoError(t, err)
	assert.InDelta(t, 3.6, rec.RunTargetKm, 1e-9)
}

func TestGetOrCreate_RefetchKeepsFrozenValues(t *testing.T) {
	env := newTestEnv(t, day(2024, 1, 1))
	u := seedUser(t, env)
	ctx := context.Background()

	first, err := env.days.GetOrCreate(ctx, u.ID, day(2024, 1, 1))
	require.NoError(t, err)

	// Settings changes after creation must not alter the stored day.
	newKm := 5.0
	_, err = env.settings.Update(ctx, u.ID, domain.UserSettingsPatch{
		RunStartKm:        &newKm,
		PushupSessionDays: []domain.Weekday{domain.Sunday},
	})
	require.NoError(t, err)

	again, err := env.days.GetOrCreate(ctx, u.ID, day(2024, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
	assert.InDelta(t, first.RunTargetKm, again.RunTargetKm, 1e-9)
	require.NotNil(t, again.PushupWeek)
	assert.Equal(t, *first.PushupWeek, *again.PushupWeek)
}

func TestSubmitRunDistance_CompletionAndIdempotence(t *testing.T) {
	env := newTestEnv(t, day(2024, 1, 1))
	u := seedUser(t, env)
	ctx := context.Background()

	rec, err := env.days.GetOrCreate(ctx, u.ID, day(2024, 1, 1))
	require.NoError(t, err)

	updated, err := env.days.SubmitRunDistance(ctx, rec.ID, 0.8)
	require.NoError(t, err)
	assert.False(t, updated.RunCompleted)

	updated, err = env.days.SubmitRunDistance(ctx, rec.ID, 1.0)
	require.NoError(t, err)
	assert.True(t, updated.RunCompleted, "meeting the target exactly counts")

	// Resubmitting the same value changes nothing.
	updated, err = env.days.SubmitRunDistance(ctx, rec.ID, 1.0)
	require.NoError(t, err)
	assert.True(t, updated.RunCompleted)
	require.NotNil(t, updated.RunActualKm)
	assert.InDelta(t, 1.0, *updated.RunActualKm, 1e-9)
}

func TestSubmitRunDistance_NegativeRejected(t *testing.T) {
	env := newTestEnv(t, day(2024, 1, 1))
	u := seedUser(t, env)
	ctx := context.Background()

	rec, err := env.days.GetOrCreate(ctx, u.ID, day(2024, 1, 1))
	require.NoError(t, err)

	_, err = env.days.SubmitRunDistance(ctx, rec.ID, -1.0)
	assert.Error(t, err)
}

func TestSetDetoxStatus_TriState(t *testing.T) {
	env := newTestEnv(t, day(2024, 1, 1))
	u := seedUser(t, env)
	ctx := context.Background()

	rec, err := env.days.GetOrCreate(ctx, u.ID, day(2024, 1, 1))
	require.NoError(t, err)

	updated, err := env.days.SetDetoxStatus(ctx, rec.ID, domain.DetoxSuccess)
	require.NoError(t, err)
	assert.Equal(t, domain.DetoxSuccess, updated.DetoxStatus)

	updated, err = env.days.SetDetoxStatus(ctx, rec.ID, domain.DetoxUnset)
	require.NoError(t, err)
	assert.Equal(t, domain.DetoxUnset, updated.DetoxStatus)
}

func TestDetoxStreak_EndToEnd(t *testing.T) {
	today := day(2024, 1, 10)
	env := newTestEnv(t, today)
	u := seedUser(t, env)
	ctx := context.Background()

	// Success on the three days before today, gap on day 4, success further
	// back: only the unbroken run counts.
	for _, off := range []int{1, 2, 3, 6, 7} {
		require.NoError(t, env.records.Create(ctx, testutil.NewTestRecord(
			u.ID, today.AddDate(0, 0, -off), testutil.WithDetox(domain.DetoxSuccess))))
	}

	streak, err := env.days.DetoxStreak(ctx, u.ID, today)
	require.NoError(t, err)
	assert.Equal(t, 3, streak)
}

func TestView_AssemblesDay(t *testing.T) {
	env := newTestEnv(t, day(2024, 1, 1))
	u := seedUser(t, env, testutil.WithLevel(2))
	ctx := context.Background()

	view, err := env.days.View(ctx, u.ID, day(2024, 1, 1))
	require.NoError(t, err)
	require.NotNil(t, view.Record)
	require.Len(t, view.Sets, 5)
	assert.Equal(t, []int{3, 4, 2, 3, 4}, view.Targets)
	assert.Equal(t, 3, view.Completion.Total)
	assert.Equal(t, 0, view.Completion.Completed)
	assert.Zero(t, view.Streak)
}
