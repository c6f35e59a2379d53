package attendance

import (
	"context"
)

type AttendanceRepository interface {
	// Create fails with ErrAlreadyCheckedIn when the employee already has a
	// record for the work day.
	Create(ctx context.Context, record Record) (Record, error)
	GetByID(ctx context.Context, id string) (Record, error)
	GetByIDForUpdate(ctx context.Context, id string) (Record, error)
	GetByEmployeeAndDayForUpdate(ctx context.Context, employeeID, workDayID string) (Record, error)
	// Close persists a record closed with Record.Close. It only applies to open records.
	Close(ctx context.Context, record Record) (Record, error)
	// MarkPaid flips paid and reports false when the record was already paid.
	MarkPaid(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, filter Filter) ([]Record, error)
}
