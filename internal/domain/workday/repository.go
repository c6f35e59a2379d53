package workday

import (
	"context"
	"time"
)

type WorkDayRepository interface {
	// Create fails with ErrWorkDayExists when the date is already registered.
	Create(ctx context.Context, day WorkDay) (WorkDay, error)
	// CreateMany skips dates that already exist and returns how many were inserted.
	CreateMany(ctx context.Context, days []WorkDay) (int, error)
	GetByID(ctx context.Context, id string) (WorkDay, error)
	GetByDate(ctx context.Context, date time.Time) (WorkDay, error)
	// GetByIDs returns the work days that exist among ids, ordered by date.
	GetByIDs(ctx context.Context, ids []string) ([]WorkDay, error)
	List(ctx context.Context, filter WorkDayFilter) ([]WorkDay, error)
	Delete(ctx context.Context, id string) error
}
