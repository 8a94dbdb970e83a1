package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/routinerunner/internal/db"
	"github.com/alexanderramin/routinerunner/internal/domain"
	"github.com/alexanderramin/routinerunner/internal/progression"
	"github.com/alexanderramin/routinerunner/internal/repository"
	"github.com/google/uuid"
)

type pushupService struct {
	users   repository.UserRepo
	records repository.DailyRecordRepo
	sets    repository.PushupSetRepo
	uow     db.UnitOfWork
	clock   Clock
}

func NewPushupService(
	users repository.UserRepo,
	records repository.DailyRecordRepo,
	sets repository.PushupSetRepo,
	uow db.UnitOfWork,
	clock Clock,
) PushupService {
	return &pushupService{users: users, records: records, sets: sets, uow: uow, clock: clock}
}

func (s *pushupService) SetsForRecord(ctx context.Context, recordID string) ([]*domain.PushupSetRecord, error) {
	rec, err := s.records.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if !rec.IsPushupDay() {
		return nil, nil
	}

	existing, err := s.sets.ListByRecord(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return existing, nil
	}

	u, err := s.users.GetByID(ctx, rec.UserID)
	if err != nil {
		return nil, err
	}
	targets, err := progression.SessionTargets(u.PushupLevel, *rec.PushupWeek, *rec.PushupSession)
	if err != nil {
		return nil, fmt.Errorf("looking up session targets: %w", err)
	}

	batch := make([]*domain.PushupSetRecord, len(targets))
	for i, reps := range targets {
		batch[i] = &domain.PushupSetRecord{
			ID:            uuid.New().String(),
			DailyRecordID: recordID,
			SetIndex:      i + 1,
			TargetReps:    reps,
		}
	}

	// The five rows are created together; a concurrent creator loses on the
	// unique index, in which case the stored rows win.
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLitePushupSetRepo(tx).CreateBatch(ctx, batch)
	})
	if err != nil {
		if stored, listErr := s.sets.ListByRecord(ctx, recordID); listErr == nil && len(stored) > 0 {
			return stored, nil
		}
		return nil, fmt.Errorf("creating pushup sets: %w", err)
	}
	return batch, nil
}

func (s *pushupService) CompleteSet(ctx context.Context, recordID string, setIndex int) (*CompleteSetResult, error) {
	if setIndex < 1 || setIndex > progression.SetsPerSession {
		return nil, fmt.Errorf("set index %d: %w", setIndex, progression.ErrOutOfRange)
	}

	sets, err := s.SetsForRecord(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if sets == nil {
		return nil, fmt.Errorf("record %s is a rest day: %w", recordID, progression.ErrInvalidInput)
	}

	target := sets[setIndex-1]
	marked := false
	if !target.Completed {
		pending := progression.NextPendingSet(sets)
		if pending == nil || pending.SetIndex != setIndex {
			return nil, fmt.Errorf("set %d is not the next pending set: %w", setIndex, progression.ErrInvalidInput)
		}
		now := s.clock.Now().UTC()
		if err := s.sets.MarkCompleted(ctx, target.ID, now); err != nil {
			return nil, err
		}
		target.Completed = true
		target.CompletedAt = &now
		marked = true
	}

	allDone, err := s.CheckCompletion(ctx, recordID)
	if err != nil {
		return nil, err
	}

	result := &CompleteSetResult{Set: target, AllDone: allDone}
	if marked && !allDone && setIndex < progression.SetsPerSession {
		rec, err := s.records.GetByID(ctx, recordID)
		if err != nil {
			return nil, err
		}
		u, err := s.users.GetByID(ctx, rec.UserID)
		if err != nil {
			return nil, err
		}
		result.StartTimer = true
		result.TimerSec = u.RestTimerDefaultSec
	}
	return result, nil
}

// CheckCompletion re-derives the session state from the stored rows so that
// duplicate or concurrent completion calls settle on the same answer.
func (s *pushupService) CheckCompletion(ctx context.Context, recordID string) (bool, error) {
	sets, err := s.sets.ListByRecord(ctx, recordID)
	if err != nil {
		return false, err
	}
	if !progression.AllSetsDone(sets) {
		return false, nil
	}

	rec, err := s.records.GetByID(ctx, recordID)
	if err != nil {
		return false, err
	}
	if !rec.PushupDone {
		rec.PushupDone = true
		if err := s.records.Update(ctx, rec); err != nil {
			return false, err
		}
	}
	return true, nil
}
