package progression

import (
	"fmt"
	"time"

	"github.com/alexanderramin/routinerunner/internal/domain"
)

// SessionCoord is a 1-based (week, session) coordinate in the curriculum grid.
type SessionCoord struct {
	Week    int
	Session int
}

// CurrentSession determines the push-up session owed on a given calendar day.
// It returns nil when today is a rest day (not an active weekday, before the
// start date, or past the 6-week program).
//
// The algorithm counts active-weekday occurrences n in the inclusive range
// [startDate, today]; week = ceil(n/k) and session = ((n-1) mod k)+1 where
// k is the number of active weekdays. Both inputs must be
// midnight-normalized; the caller freezes the result at record-creation time
// so later settings changes never rewrite history.
func CurrentSession(startDate, today time.Time, activeDays []domain.Weekday) (*SessionCoord, error) {
	if len(activeDays) == 0 {
		return nil, fmt.Errorf("active weekday set is empty: %w", ErrInvalidInput)
	}
	active := make(map[domain.Weekday]bool, len(activeDays))
	for _, d := range activeDays {
		if d < domain.Monday || d > domain.Sunday {
			return nil, fmt.Errorf("weekday %d: %w", int(d), ErrInvalidInput)
		}
		active[d] = true
	}

	if today.Before(startDate) {
		return nil, nil
	}
	if !active[domain.ISOWeekday(today)] {
		return nil, nil // rest day
	}

	n := 0
	for cursor := startDate; !cursor.After(today); cursor = cursor.AddDate(0, 0, 1) {
		if active[domain.ISOWeekday(cursor)] {
			n++
		}
	}

	k := len(active)
	week := (n + k - 1) / k
	if week > ProgramWeeks {
		return nil, nil // program complete
	}
	return &SessionCoord{Week: week, Session: (n-1)%k + 1}, nil
}
