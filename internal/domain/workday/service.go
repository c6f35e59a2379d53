package workday

import (
	"context"
	"time"
)

type WorkDayService interface {
	Create(ctx context.Context, req CreateWorkDayRequest) (WorkDay, error)
	List(ctx context.Context, req ListWorkDayRequest) ([]WorkDay, error)
	Delete(ctx context.Context, id string) error
	// Generate registers the upcoming weekdays relative to today.
	Generate(ctx context.Context, today time.Time) (GenerateResult, error)
	// Resolve returns the work day for date or ErrNotAWorkDay.
	Resolve(ctx context.Context, date time.Time) (WorkDay, error)
}
