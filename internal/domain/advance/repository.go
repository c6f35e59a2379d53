package advance

import (
	"context"
	"time"
)

type AdvanceRepository interface {
	Create(ctx context.Context, req AdvanceRequest) (AdvanceRequest, error)
	GetByID(ctx context.Context, id string) (AdvanceRequest, error)
	GetByIDForUpdate(ctx context.Context, id string) (AdvanceRequest, error)
	// MarkAccepted reports false when the request was already accepted.
	MarkAccepted(ctx context.Context, id string, at time.Time) (bool, error)
	List(ctx context.Context, filter Filter) ([]AdvanceRequest, error)
}
