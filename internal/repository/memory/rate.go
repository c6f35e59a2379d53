package memory

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/workledger/workledger-backend-go/internal/domain/payroll"
)

type rateRepository struct {
	store *Store
}

func NewRateRepository(store *Store) payroll.RateRepository {
	return &rateRepository{store: store}
}

func (r *rateRepository) GetGlobalRate(ctx context.Context) (payroll.RateConfig, error) {
	defer r.store.acquire(ctx)()

	return r.store.data.rate, nil
}

func (r *rateRepository) SetGlobalRate(ctx context.Context, rate decimal.Decimal) (payroll.RateConfig, error) {
	defer r.store.acquire(ctx)()

	r.store.data.rate = payroll.RateConfig{HourlyRate: rate, UpdatedAt: r.store.clock.Now()}
	return r.store.data.rate, nil
}
