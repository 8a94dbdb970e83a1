package service

import (
	"time"

	"github.com/alexanderramin/routinerunner/internal/domain"
)

// Clock supplies the current instant and the fixed reference location used
// for calendar-day arithmetic. Tests substitute a frozen Now.
type Clock struct {
	Now func() time.Time
	Loc *time.Location
}

// SystemClock returns a wall-clock Clock in the given location.
func SystemClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return Clock{Now: time.Now, Loc: loc}
}

// FixedClock returns a Clock frozen at the given instant, for tests.
func FixedClock(at time.Time) Clock {
	return Clock{Now: func() time.Time { return at }, Loc: at.Location()}
}

// Today returns the current calendar day, midnight-normalized, so that two
// calls on the same day always agree regardless of time-of-day.
func (c Clock) Today() time.Time {
	return domain.DayOf(c.Now(), c.Loc)
}
