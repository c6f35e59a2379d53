package overtime

import (
	"context"
)

type OvertimeService interface {
	Start(ctx context.Context, req SessionRequest) (Record, error)
	End(ctx context.Context, req SessionRequest) (Record, error)
	AttachProof(ctx context.Context, id string, req ProofRequest) (Record, error)
	List(ctx context.Context, req ListOvertimeRequest) ([]Record, error)
}
