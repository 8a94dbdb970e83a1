package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/routinerunner/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
}

// DailyRecordRepo persists the one-row-per-(user,date) daily state. The
// UNIQUE(user_id, date) constraint guarantees at-most-one row per day under
// concurrent creation attempts; run_target_km and the push-up coordinate are
// written once at Create and never touched by Update.
type DailyRecordRepo interface {
	Create(ctx context.Context, r *domain.DailyRecord) error
	GetByID(ctx context.Context, id string) (*domain.DailyRecord, error)
	GetByUserDate(ctx context.Context, userID string, date time.Time) (*domain.DailyRecord, error)
	// Update persists the mutable fields only: detox status, actual
	// distance, and the two derived completion flags.
	Update(ctx context.Context, r *domain.DailyRecord) error
	// ListRange returns records with from <= date <= to, ordered by date
	// ascending.
	ListRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.DailyRecord, error)
	// ListBefore returns records strictly before the given date, ordered by
	// date descending, for the streak walk.
	ListBefore(ctx context.Context, userID string, date time.Time) ([]*domain.DailyRecord, error)
	// LastCompletedRun returns the actual distance of the most recent record
	// with a completed run, or ErrNotFound.
	LastCompletedRun(ctx context.Context, userID string) (float64, error)
}

type PushupSetRepo interface {
	// CreateBatch inserts the five set rows of one session together.
	CreateBatch(ctx context.Context, sets []*domain.PushupSetRecord) error
	GetByID(ctx context.Context, id string) (*domain.PushupSetRecord, error)
	ListByRecord(ctx context.Context, dailyRecordID string) ([]*domain.PushupSetRecord, error)
	MarkCompleted(ctx context.Context, id string, completedAt time.Time) error
}
