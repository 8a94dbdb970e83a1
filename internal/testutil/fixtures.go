package testutil

import (
	"time"

	"github.com/alexanderramin/routinerunner/internal/domain"
	"github.com/google/uuid"
)

// User options
type UserOption func(*domain.User)

func WithStartDate(d time.Time) UserOption {
	return func(u *domain.User) {
		u.PushupStartDate = &d
	}
}

func WithSessionDays(days ...domain.Weekday) UserOption {
	return func(u *domain.User) {
		u.PushupSessionDays = days
	}
}

func WithLevel(level int) UserOption {
	return func(u *domain.User) {
		u.PushupLevel = level
	}
}

func WithRunStartKm(km float64) UserOption {
	return func(u *domain.User) {
		u.RunStartKm = km
	}
}

func WithRestTimerSec(sec int) UserOption {
	return func(u *domain.User) {
		u.RestTimerDefaultSec = sec
	}
}

// NewTestUser builds an onboarded user with Mon/Wed/Fri sessions starting
// 2024-01-01 (a Monday) unless overridden.
func NewTestUser(opts ...UserOption) *domain.User {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Now().UTC()
	u := &domain.User{
		ID:                  uuid.New().String(),
		RunStartKm:          1.0,
		RestTimerDefaultSec: 60,
		PushupLevel:         1,
		PushupStartDate:     &start,
		PushupSessionDays:   []domain.Weekday{domain.Monday, domain.Wednesday, domain.Friday},
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// DailyRecord options
type RecordOption func(*domain.DailyRecord)

func WithDetox(s domain.DetoxStatus) RecordOption {
	return func(r *domain.DailyRecord) {
		r.DetoxStatus = s
	}
}

func WithRun(actualKm float64, completed bool) RecordOption {
	return func(r *domain.DailyRecord) {
		r.RunActualKm = &actualKm
		r.RunCompleted = completed
	}
}

func WithPushupCoord(week, session int) RecordOption {
	return func(r *domain.DailyRecord) {
		r.PushupWeek = &week
		r.PushupSession = &session
	}
}

func WithRunTarget(km float64) RecordOption {
	return func(r *domain.DailyRecord) {
		r.RunTargetKm = km
	}
}

// NewTestRecord builds a rest-day record for the given user and date.
func NewTestRecord(userID string, date time.Time, opts ...RecordOption) *domain.DailyRecord {
	r := &domain.DailyRecord{
		ID:          uuid.New().String(),
		UserID:      userID,
		Date:        date,
		RunTargetKm: 1.0,
		CreatedAt:   time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewTestSets builds five pending set rows with the given targets.
func NewTestSets(dailyRecordID string, targets []int) []*domain.PushupSetRecord {
	sets := make([]*domain.PushupSetRecord, len(targets))
	for i, reps := range targets {
		sets[i] = &domain.PushupSetRecord{
			ID:            uuid.New().String(),
			DailyRecordID: dailyRecordID,
			SetIndex:      i + 1,
			TargetReps:    reps,
		}
	}
	return sets
}
