package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFromMaxReps_Boundaries(t *testing.T) {
	cases := []struct {
		maxReps int
		level   int
	}{
		{0, 1},
		{5, 1},
		{6, 2},
		{10, 2},
		{11, 3},
		{20, 3},
		{21, 4},
		{25, 4},
		{26, 5},
		{30, 5},
		{31, 6},
		{35, 6},
		{36, 7},
		{100, 7},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.level, LevelFromMaxReps(tc.maxReps), "maxReps=%d", tc.maxReps)
	}
}

func TestLevelFromMaxReps_Monotone(t *testing.T) {
	prev := LevelFromMaxReps(0)
	for reps := 1; reps <= 60; reps++ {
		level := LevelFromMaxReps(reps)
		assert.GreaterOrEqual(t, level, prev, "level dropped at maxReps=%d", reps)
		prev = level
	}
}

func TestSessionTargets_AllCellsValid(t *testing.T) {
	for level := 1; level <= 7; level++ {
		for week := 1; week <= ProgramWeeks; week++ {
			for session := 1; session <= SessionsPerWeek; session++ {
				sets, err := SessionTargets(level, week, session)
				require.NoError(t, err, "level=%d week=%d session=%d", level, week, session)
				require.Len(t, sets, SetsPerSession)
				for i, reps := range sets {
					assert.Positive(t, reps, "level=%d week=%d session=%d set=%d", level, week, session, i+1)
				}
			}
		}
	}
}

func TestSessionTargets_KnownValues(t *testing.T) {
	sets, err := SessionTargets(1, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 2, 2, 3}, sets)

	sets, err = SessionTargets(7, 6, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{65, 70, 58, 58, 80}, sets)

	sets, err = SessionTargets(4, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{14, 14, 10, 10, 15}, sets)
}

func TestSessionTargets_OutOfRange(t *testing.T) {
	cases := []struct {
		name                 string
		level, week, session int
	}{
		{"week zero", 1, 0, 1},
		{"week seven", 1, 7, 1},
		{"session zero", 1, 1, 0},
		{"session four", 1, 1, 4},
		{"level zero", 0, 1, 1},
		{"level eight", 8, 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := SessionTargets(tc.level, tc.week, tc.session)
			assert.ErrorIs(t, err, ErrOutOfRange)
		})
	}
}

func TestSessionTargets_ReturnsCopy(t *testing.T) {
	sets, err := SessionTargets(2, 3, 1)
	require.NoError(t, err)
	sets[0] = 999

	again, err := SessionTargets(2, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, 12, again[0])
}
