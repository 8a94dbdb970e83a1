package service

import (
	"context"
	"time"

	"github.com/alexanderramin/routinerunner/internal/domain"
	"github.com/alexanderramin/routinerunner/internal/progression"
	"github.com/alexanderramin/routinerunner/internal/repository"
)

type summaryService struct {
	records repository.DailyRecordRepo
	clock   Clock
}

func NewSummaryService(records repository.DailyRecordRepo, clock Clock) SummaryService {
	return &summaryService{records: records, clock: clock}
}

func (s *summaryService) Weekly(ctx context.Context, userID string, refDate time.Time) (*progression.WeekSummary, error) {
	monday, sunday := domain.ISOWeekBounds(refDate, s.clock.Loc)

	records, err := s.records.ListRange(ctx, userID, monday, sunday)
	if err != nil {
		return nil, err
	}
	summary := progression.SummarizeWeek(records)
	return &summary, nil
}
