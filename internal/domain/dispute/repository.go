package dispute

import (
	"context"
	"time"
)

type DisputeRepository interface {
	Create(ctx context.Context, d Dispute) (Dispute, error)
	GetByID(ctx context.Context, id string) (Dispute, error)
	// MarkResolved reports false when the dispute was already resolved.
	MarkResolved(ctx context.Context, id string, at time.Time) (bool, error)
	List(ctx context.Context, filter Filter) ([]Dispute, error)
}
