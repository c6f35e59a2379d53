package overtime

import (
	"context"
)

type OvertimeRepository interface {
	// Create fails with ErrOvertimeAlreadyOpen when an open session exists
	// for the same employee and work day.
	Create(ctx context.Context, record Record) (Record, error)
	GetByID(ctx context.Context, id string) (Record, error)
	GetByIDForUpdate(ctx context.Context, id string) (Record, error)
	GetOpenForUpdate(ctx context.Context, employeeID, workDayID string) (Record, error)
	Close(ctx context.Context, record Record) (Record, error)
	AttachProof(ctx context.Context, id string, text, evidence *string) (Record, error)
	MarkPaid(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, filter Filter) ([]Record, error)
}
