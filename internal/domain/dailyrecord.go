package domain

import "time"

// DailyRecord is the per-(user, calendar date) row, created lazily on first
// access to that date. RunTargetKm, PushupWeek and PushupSession are fixed at
// creation time and never re-derived.
type DailyRecord struct {
	ID            string
	UserID        string
	Date          time.Time // midnight-normalized calendar date
	DetoxStatus   DetoxStatus
	RunTargetKm   float64
	RunActualKm   *float64
	RunCompleted  bool
	PushupWeek    *int // nil together with PushupSession = rest day
	PushupSession *int
	PushupDone    bool
	CreatedAt     time.Time
}

// IsPushupDay reports whether the record carries a push-up assignment.
func (r *DailyRecord) IsPushupDay() bool {
	return r.PushupWeek != nil && r.PushupSession != nil
}

type PushupSetRecord struct {
	ID            string
	DailyRecordID string
	SetIndex      int // 1-based, 1..5
	TargetReps    int
	Completed     bool
	CompletedAt   *time.Time
}
