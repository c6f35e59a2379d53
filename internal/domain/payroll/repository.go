package payroll

import (
	"context"

	"github.com/shopspring/decimal"
)

type RateRepository interface {
	GetGlobalRate(ctx context.Context) (RateConfig, error)
	SetGlobalRate(ctx context.Context, rate decimal.Decimal) (RateConfig, error)
}
