package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/routinerunner/internal/domain"
	"github.com/alexanderramin/routinerunner/internal/progression"
	"github.com/alexanderramin/routinerunner/internal/repository"
	"github.com/google/uuid"
)

type dayService struct {
	users   repository.UserRepo
	records repository.DailyRecordRepo
	pushups PushupService
	clock   Clock
}

func NewDayService(
	users repository.UserRepo,
	records repository.DailyRecordRepo,
	pushups PushupService,
	clock Clock,
) DayService {
	return &dayService{users: users, records: records, pushups: pushups, clock: clock}
}

func (s *dayService) GetOrCreate(ctx context.Context, userID string, today time.Time) (*domain.DailyRecord, error) {
	today = domain.DayOf(today, s.clock.Loc)

	rec, err := s.records.GetByUserDate(ctx, userID, today)
	if err == nil {
		// The frozen target and coordinate are never re-derived on re-fetch.
		return rec, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	target, err := s.runTargetFor(ctx, u)
	if err != nil {
		return nil, err
	}

	rec = &domain.DailyRecord{
		ID:          uuid.New().String(),
		UserID:      userID,
		Date:        today,
		RunTargetKm: target,
		CreatedAt:   s.clock.Now().UTC(),
	}

	// Scheduling is undefined until onboarding sets the start date.
	if u.Onboarded() {
		coord, err := progression.CurrentSession(domain.DayOf(*u.PushupStartDate, s.clock.Loc), today, u.PushupSessionDays)
		if err != nil {
			return nil, fmt.Errorf("deriving session coordinate: %w", err)
		}
		if coord != nil {
			rec.PushupWeek = &coord.Week
			rec.PushupSession = &coord.Session
		}
	}

	if err := s.records.Create(ctx, rec); err != nil {
		// A concurrent creator may have won the unique constraint race;
		// re-read before reporting failure.
		if existing, getErr := s.records.GetByUserDate(ctx, userID, today); getErr == nil {
			return existing, nil
		}
		return nil, fmt.Errorf("creating daily record: %w", err)
	}
	return rec, nil
}

func (s *dayService) runTargetFor(ctx context.Context, u *domain.User) (float64, error) {
	last, err := s.records.LastCompletedRun(ctx, u.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return progression.NextRunTarget(nil, u.RunStartKm)
		}
		return 0, err
	}
	return progression.NextRunTarget(&last, u.RunStartKm)
}

func (s *dayService) View(ctx context.Context, userID string, today time.Time) (*TodayView, error) {
	today = domain.DayOf(today, s.clock.Loc)

	rec, err := s.GetOrCreate(ctx, userID, today)
	if err != nil {
		return nil, err
	}

	view := &TodayView{
		Record:     rec,
		Completion: progression.DailyCompletion(rec),
	}

	if rec.IsPushupDay() {
		if view.Sets, err = s.pushups.SetsForRecord(ctx, rec.ID); err != nil {
			return nil, err
		}
		u, err := s.users.GetByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if view.Targets, err = progression.SessionTargets(u.PushupLevel, *rec.PushupWeek, *rec.PushupSession); err != nil {
			return nil, err
		}
	}

	if view.Streak, err = s.DetoxStreak(ctx, userID, today); err != nil {
		return nil, err
	}
	return view, nil
}

func (s *dayService) SetDetoxStatus(ctx context.Context, recordID string, status domain.DetoxStatus) (*domain.DailyRecord, error) {
	rec, err := s.records.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	rec.DetoxStatus = status
	if err := s.records.Update(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *dayService) SubmitRunDistance(ctx context.Context, recordID string, actualKm float64) (*domain.DailyRecord, error) {
	if actualKm < 0 {
		return nil, fmt.Errorf("distance %.2f must not be negative: %w", actualKm, progression.ErrInvalidInput)
	}

	rec, err := s.records.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}

	rec.RunActualKm = &actualKm
	rec.RunCompleted = progression.RunCompleted(actualKm, rec.RunTargetKm)
	if err := s.records.Update(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *dayService) DetoxStreak(ctx context.Context, userID string, today time.Time) (int, error) {
	today = domain.DayOf(today, s.clock.Loc)

	records, err := s.records.ListBefore(ctx, userID, today)
	if err != nil {
		return 0, err
	}
	history := make([]progression.DayStatus, len(records))
	for i, rec := range records {
		history[i] = progression.DayStatus{Date: rec.Date, Status: rec.DetoxStatus}
	}
	return progression.CurrentStreak(history, today), nil
}
