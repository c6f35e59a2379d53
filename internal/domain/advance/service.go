package advance

import (
	"context"
)

// AdvanceService records advance requests. Acceptance lives in the payroll
// ledger because it moves the employee balance.
type AdvanceService interface {
	Create(ctx context.Context, req CreateAdvanceRequest) (AdvanceRequest, error)
	Get(ctx context.Context, id string) (AdvanceRequest, error)
	List(ctx context.Context, req ListAdvanceRequest) ([]AdvanceRequest, error)
}
