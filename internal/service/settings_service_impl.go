package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/routinerunner/internal/domain"
	"github.com/alexanderramin/routinerunner/internal/progression"
	"github.com/alexanderramin/routinerunner/internal/repository"
)

type settingsService struct {
	users repository.UserRepo
	clock Clock
}

func NewSettingsService(users repository.UserRepo, clock Clock) SettingsService {
	return &settingsService{users: users, clock: clock}
}

func (s *settingsService) EnsureUser(ctx context.Context, userID string) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	now := s.clock.Now().UTC()
	u = &domain.User{
		ID:                  userID,
		RunStartKm:          1.0,
		RestTimerDefaultSec: 60,
		PushupLevel:         1,
		PushupSessionDays:   []domain.Weekday{domain.Monday, domain.Wednesday, domain.Friday},
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("creating local user: %w", err)
	}
	return u, nil
}

func (s *settingsService) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *settingsService) Onboard(ctx context.Context, userID string, req OnboardRequest) (*domain.User, error) {
	if req.MaxReps < 0 {
		return nil, fmt.Errorf("max reps %d must not be negative: %w", req.MaxReps, progression.ErrInvalidInput)
	}
	if req.StartDate.IsZero() {
		return nil, fmt.Errorf("start date is required: %w", progression.ErrInvalidInput)
	}

	u, err := s.EnsureUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	start := domain.DayOf(req.StartDate, s.clock.Loc)
	u.PushupLevel = progression.LevelFromMaxReps(req.MaxReps)
	u.PushupStartDate = &start
	u.PushupSessionDays = append([]domain.Weekday(nil), req.SessionDays...)
	if req.RunStartKm != 0 {
		u.RunStartKm = req.RunStartKm
	}
	if req.RestTimerSec != 0 {
		u.RestTimerDefaultSec = req.RestTimerSec
	}

	if err := u.Validate(); err != nil {
		return nil, fmt.Errorf("%v: %w", err, progression.ErrInvalidInput)
	}
	if err := s.users.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("saving onboarding settings: %w", err)
	}
	return u, nil
}

// Update applies a partial settings change. Already-created daily records
// keep their frozen targets and coordinates; only future days see the new
// settings.
func (s *settingsService) Update(ctx context.Context, userID string, patch domain.UserSettingsPatch) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	patch.Apply(u)
	u.UpdatedAt = s.clock.Now().UTC()

	if err := u.Validate(); err != nil {
		return nil, fmt.Errorf("%v: %w", err, progression.ErrInvalidInput)
	}
	if err := s.users.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("saving settings: %w", err)
	}
	return u, nil
}
