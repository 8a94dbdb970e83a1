package progression

import (
	"time"

	"github.com/alexanderramin/routinerunner/internal/domain"
)

// DayStatus pairs a calendar date with its recorded detox outcome.
type DayStatus struct {
	Date   time.Time // midnight-normalized
	Status domain.DetoxStatus
}

// CurrentStreak counts consecutive detox-success days immediately preceding
// today. Today itself is excluded because it is still in progress.
//
// history must be ordered by date descending and contain only days before
// today. The walk requires a record for exactly each expected date: a missing
// day breaks the streak rather than being bridged by the next record in the
// list, so sparse history (days the app was never opened) is never silently
// skipped over.
func CurrentStreak(history []DayStatus, today time.Time) int {
	streak := 0
	expected := today.AddDate(0, 0, -1)
	for _, rec := range history {
		if !domain.SameDay(rec.Date, expected) {
			break
		}
		if rec.Status != domain.DetoxSuccess {
			break
		}
		streak++
		expected = expected.AddDate(0, 0, -1)
	}
	return streak
}
