package workday

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/workledger/workledger-backend-go/internal/domain/workday"
	"github.com/workledger/workledger-backend-go/internal/pkg/clock"
	"github.com/workledger/workledger-backend-go/internal/pkg/worktime"
)

type WorkDayServiceImpl struct {
	workDayRepo workday.WorkDayRepository
	clock       clock.Clock
}

func NewWorkDayService(workDayRepo workday.WorkDayRepository, clk clock.Clock) workday.WorkDayService {
	return &WorkDayServiceImpl{
		workDayRepo: workDayRepo,
		clock:       clk,
	}
}

// Create implements workday.WorkDayService.
func (s *WorkDayServiceImpl) Create(ctx context.Context, req workday.CreateWorkDayRequest) (workday.WorkDay, error) {
	if err := req.Validate(); err != nil {
		return workday.WorkDay{}, err
	}

	date, err := worktime.ParseDate(req.Date)
	if err != nil {
		return workday.WorkDay{}, err
	}

	return s.workDayRepo.Create(ctx, workday.WorkDay{
		ID:        uuid.Must(uuid.NewV7()).String(),
		Date:      date,
		CreatedAt: s.clock.Now().UTC(),
	})
}

// List implements workday.WorkDayService.
func (s *WorkDayServiceImpl) List(ctx context.Context, req workday.ListWorkDayRequest) ([]workday.WorkDay, error) {
	filter, err := req.ToFilter()
	if err != nil {
		return nil, err
	}
	return s.workDayRepo.List(ctx, filter)
}

// Delete implements workday.WorkDayService.
func (s *WorkDayServiceImpl) Delete(ctx context.Context, id string) error {
	return s.workDayRepo.Delete(ctx, id)
}

// Generate implements workday.WorkDayService.
func (s *WorkDayServiceImpl) Generate(ctx context.Context, today time.Time) (workday.GenerateResult, error) {
	dates := workday.UpcomingDates(today)
	now := s.clock.Now().UTC()

	days := make([]workday.WorkDay, 0, len(dates))
	for _, d := range dates {
		days = append(days, workday.WorkDay{
			ID:        uuid.Must(uuid.NewV7()).String(),
			Date:      d,
			CreatedAt: now,
		})
	}

	created, err := s.workDayRepo.CreateMany(ctx, days)
	if err != nil {
		return workday.GenerateResult{}, fmt.Errorf("failed to generate work days: %w", err)
	}

	slog.Info("work days generated", "created", created, "considered", len(dates))
	return workday.GenerateResult{Created: created, Considered: len(dates)}, nil
}

// Resolve implements workday.WorkDayService.
func (s *WorkDayServiceImpl) Resolve(ctx context.Context, date time.Time) (workday.WorkDay, error) {
	day, err := s.workDayRepo.GetByDate(ctx, date)
	if err != nil {
		if errors.Is(err, workday.ErrWorkDayNotFound) {
			return workday.WorkDay{}, workday.ErrNotAWorkDay
		}
		return workday.WorkDay{}, err
	}
	return day, nil
}
