package service

import (
	"context"
	"time"

	"github.com/alexanderramin/routinerunner/internal/domain"
	"github.com/alexanderramin/routinerunner/internal/progression"
)

// DefaultUserID is the identity of the single local user. The storage
// collaborator keys everything by user ID so a future multi-user surface
// only has to supply different IDs.
const DefaultUserID = "default"

// OnboardRequest carries the answers of the onboarding wizard.
type OnboardRequest struct {
	MaxReps      int
	SessionDays  []domain.Weekday
	RunStartKm   float64
	RestTimerSec int
	StartDate    time.Time
}

type SettingsService interface {
	// EnsureUser returns the local user row, creating a not-yet-onboarded
	// one on first use.
	EnsureUser(ctx context.Context, userID string) (*domain.User, error)
	Get(ctx context.Context, userID string) (*domain.User, error)
	// Onboard assigns the curriculum level from the max-rep test and
	// activates push-up scheduling by setting the program start date.
	Onboard(ctx context.Context, userID string, req OnboardRequest) (*domain.User, error)
	Update(ctx context.Context, userID string, patch domain.UserSettingsPatch) (*domain.User, error)
}

// TodayView is the assembled state of one calendar day for presentation.
type TodayView struct {
	Record     *domain.DailyRecord
	Sets       []*domain.PushupSetRecord
	Streak     int
	Completion progression.CompletionCount
	Targets    []int // session targets; nil on rest days
}

type DayService interface {
	// GetOrCreate returns the record for the given day, lazily creating it
	// with a frozen run target and push-up coordinate.
	GetOrCreate(ctx context.Context, userID string, today time.Time) (*domain.DailyRecord, error)
	// View assembles the record, its set rows, the streak and the
	// completion count for one day.
	View(ctx context.Context, userID string, today time.Time) (*TodayView, error)
	SetDetoxStatus(ctx context.Context, recordID string, status domain.DetoxStatus) (*domain.DailyRecord, error)
	// SubmitRunDistance records the actual distance and re-derives the
	// completion flag against the frozen target. Resubmission is idempotent.
	SubmitRunDistance(ctx context.Context, recordID string, actualKm float64) (*domain.DailyRecord, error)
	DetoxStreak(ctx context.Context, userID string, today time.Time) (int, error)
}

// CompleteSetResult reports the outcome of completing one set.
type CompleteSetResult struct {
	Set        *domain.PushupSetRecord
	AllDone    bool
	StartTimer bool // true after a non-final set
	TimerSec   int
}

type PushupService interface {
	// SetsForRecord returns the five set rows for a push-up day, creating
	// them atomically from the curriculum on first access. Returns nil on
	// rest days.
	SetsForRecord(ctx context.Context, recordID string) ([]*domain.PushupSetRecord, error)
	// CompleteSet marks a set done. Only the lowest-indexed incomplete set
	// may be completed; re-completing an already-completed set is a no-op.
	CompleteSet(ctx context.Context, recordID string, setIndex int) (*CompleteSetResult, error)
	// CheckCompletion re-derives session completion from the persisted set
	// rows and marks the daily record when all five are done.
	CheckCompletion(ctx context.Context, recordID string) (bool, error)
}

type SummaryService interface {
	// Weekly rolls up the ISO week (Monday-Sunday) containing refDate.
	Weekly(ctx context.Context, userID string, refDate time.Time) (*progression.WeekSummary, error)
}
