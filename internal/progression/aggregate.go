package progression

import (
	"fmt"

	"github.com/alexanderramin/routinerunner/internal/domain"
)

// CompletionCount is a day's completed-vs-total routine tally. Rest days
// exclude push-ups from the denominator entirely.
type CompletionCount struct {
	Completed int
	Total     int
}

// DailyCompletion tallies the day's routines: detox success, run completed,
// and (only on push-up days) push-up completed.
func DailyCompletion(rec *domain.DailyRecord) CompletionCount {
	c := CompletionCount{Total: 2}
	if rec.IsPushupDay() {
		c.Total = 3
		if rec.PushupDone {
			c.Completed++
		}
	}
	if rec.DetoxStatus == domain.DetoxSuccess {
		c.Completed++
	}
	if rec.RunCompleted {
		c.Completed++
	}
	return c
}

// WeekSummary is the Monday-Sunday rollup shown by the weekly view.
type WeekSummary struct {
	TotalRunKm       float64
	DetoxSuccessDays int

	// LatestPushupWeek is the maximum push-up week seen in the range;
	// PushupWeekReached is false when no record carries an assignment.
	LatestPushupWeek  int
	PushupWeekReached bool
}

// PushupWeekLabel renders the week progress as "Week N" or "Not started".
func (s WeekSummary) PushupWeekLabel() string {
	if !s.PushupWeekReached {
		return "Not started"
	}
	return fmt.Sprintf("Week %d", s.LatestPushupWeek)
}

// SummarizeWeek rolls up the records of one ISO week: total distance over
// days with a completed run (rounded to one decimal), detox success count,
// and the maximum push-up week seen.
func SummarizeWeek(records []*domain.DailyRecord) WeekSummary {
	var s WeekSummary
	var totalKm float64
	for _, rec := range records {
		if rec.RunCompleted && rec.RunActualKm != nil {
			totalKm += *rec.RunActualKm
		}
		if rec.DetoxStatus == domain.DetoxSuccess {
			s.DetoxSuccessDays++
		}
		if rec.PushupWeek != nil && *rec.PushupWeek > s.LatestPushupWeek {
			s.LatestPushupWeek = *rec.PushupWeek
			s.PushupWeekReached = true
		}
	}
	s.TotalRunKm = Round1(totalKm)
	return s
}

// NextPendingSet returns the lowest-indexed incomplete set, or nil when all
// sets are complete. sets must be ordered by set index.
func NextPendingSet(sets []*domain.PushupSetRecord) *domain.PushupSetRecord {
	for _, s := range sets {
		if !s.Completed {
			return s
		}
	}
	return nil
}

// AllSetsDone re-derives session completion from the persisted set states so
// duplicate completion calls stay idempotent.
func AllSetsDone(sets []*domain.PushupSetRecord) bool {
	if len(sets) < SetsPerSession {
		return false
	}
	for _, s := range sets {
		if !s.Completed {
			return false
		}
	}
	return true
}
