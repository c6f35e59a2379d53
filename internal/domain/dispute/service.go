package dispute

import (
	"context"
)

type DisputeService interface {
	Create(ctx context.Context, req CreateDisputeRequest) (Dispute, error)
	Resolve(ctx context.Context, id string) (Dispute, error)
	List(ctx context.Context, req ListDisputeRequest) ([]Dispute, error)
}
