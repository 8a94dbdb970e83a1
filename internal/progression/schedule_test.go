package progression

import (
	"testing"
	"time"

	"github.com/alexanderramin/routinerunner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var monWedFri = []domain.Weekday{domain.Monday, domain.Wednesday, domain.Friday}

func TestCurrentSession_FirstDay(t *testing.T) {
	// 2024-01-01 is a Monday.
	coord, err := CurrentSession(day(2024, 1, 1), day(2024, 1, 1), monWedFri)
	require.NoError(t, err)
	require.NotNil(t, coord)
	assert.Equal(t, 1, coord.Week)
	assert.Equal(t, 1, coord.Session)
}

func TestCurrentSession_SecondSessionOfWeek(t *testing.T) {
	coord, err := CurrentSession(day(2024, 1, 1), day(2024, 1, 3), monWedFri)
	require.NoError(t, err)
	require.NotNil(t, coord)
	assert.Equal(t, 1, coord.Week)
	assert.Equal(t, 2, coord.Session)
}

func TestCurrentSession_RestDay(t *testing.T) {
	// Tuesday is not in the active set.
	coord, err := CurrentSession(day(2024, 1, 1), day(2024, 1, 2), monWedFri)
	require.NoError(t, err)
	assert.Nil(t, coord)
}

func TestCurrentSession_BeforeStart(t *testing.T) {
	coord, err := CurrentSession(day(2024, 1, 1), day(2023, 12, 29), monWedFri)
	require.NoError(t, err)
	assert.Nil(t, coord)
}

func TestCurrentSession_FullProgramWalk(t *testing.T) {
	// Walk every Mon/Wed/Fri from the start: the 18 active days cover weeks
	// 1-6 with sessions 1-3, and the 19th active day falls off the program.
	start := day(2024, 1, 1)
	active := 0
	for d := start; active < 18; d = d.AddDate(0, 0, 1) {
		coord, err := CurrentSession(start, d, monWedFri)
		require.NoError(t, err)
		wd := domain.ISOWeekday(d)
		if wd != domain.Monday && wd != domain.Wednesday && wd != domain.Friday {
			assert.Nil(t, coord, "expected rest day on %s", d.Format(domain.DateLayout))
			continue
		}
		require.NotNil(t, coord, "expected session on %s", d.Format(domain.DateLayout))
		assert.Equal(t, active/3+1, coord.Week)
		assert.Equal(t, active%3+1, coord.Session)
		active++
	}

	// 18th active day is Friday 2024-02-09; the next Monday is past week 6.
	coord, err := CurrentSession(start, day(2024, 2, 9), monWedFri)
	require.NoError(t, err)
	require.NotNil(t, coord)
	assert.Equal(t, 6, coord.Week)
	assert.Equal(t, 3, coord.Session)

	coord, err = CurrentSession(start, day(2024, 2, 12), monWedFri)
	require.NoError(t, err)
	assert.Nil(t, coord, "program should be complete on the 19th active day")
}

func TestCurrentSession_StartMidWeekPattern(t *testing.T) {
	// Start on a Wednesday with a Mon/Wed/Fri set: the Wednesday itself is
	// occurrence 1, so the following Monday is occurrence 3 (week 1).
	start := day(2024, 1, 3)

	coord, err := CurrentSession(start, day(2024, 1, 8), monWedFri)
	require.NoError(t, err)
	require.NotNil(t, coord)
	assert.Equal(t, 1, coord.Week)
	assert.Equal(t, 3, coord.Session)

	coord, err = CurrentSession(start, day(2024, 1, 10), monWedFri)
	require.NoError(t, err)
	require.NotNil(t, coord)
	assert.Equal(t, 2, coord.Week)
	assert.Equal(t, 1, coord.Session)
}

func TestCurrentSession_SingleDayPattern(t *testing.T) {
	// One active weekday means one session per curriculum week.
	sundays := []domain.Weekday{domain.Sunday}
	start := day(2024, 1, 7) // a Sunday

	coord, err := CurrentSession(start, day(2024, 1, 21), sundays)
	require.NoError(t, err)
	require.NotNil(t, coord)
	assert.Equal(t, 3, coord.Week)
	assert.Equal(t, 1, coord.Session)
}

func TestCurrentSession_EmptyWeekdaySet(t *testing.T) {
	_, err := CurrentSession(day(2024, 1, 1), day(2024, 1, 1), nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCurrentSession_InvalidWeekday(t *testing.T) {
	_, err := CurrentSession(day(2024, 1, 1), day(2024, 1, 1), []domain.Weekday{domain.Weekday(9)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
