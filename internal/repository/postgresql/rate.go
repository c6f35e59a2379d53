package postgresql

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/workledger/workledger-backend-go/internal/domain/payroll"
	"github.com/workledger/workledger-backend-go/internal/pkg/database"
)

type rateRepository struct {
	db *database.DB
}

func NewRateRepository(db *database.DB) payroll.RateRepository {
	return &rateRepository{db: db}
}

// GetGlobalRate implements payroll.RateRepository. The row is seeded by the schema.
func (r *rateRepository) GetGlobalRate(ctx context.Context) (payroll.RateConfig, error) {
	q := GetQuerier(ctx, r.db)

	var cfg payroll.RateConfig
	err := q.QueryRow(ctx, `SELECT hourly_rate, updated_at FROM rate_config WHERE id = 1`).Scan(&cfg.HourlyRate, &cfg.UpdatedAt)
	if err != nil {
		return payroll.RateConfig{}, fmt.Errorf("failed to get global rate: %w", err)
	}

	return cfg, nil
}

// SetGlobalRate implements payroll.RateRepository.
func (r *rateRepository) SetGlobalRate(ctx context.Context, rate decimal.Decimal) (payroll.RateConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO rate_config (id, hourly_rate, updated_at) VALUES (1, $1, NOW())
		ON CONFLICT (id) DO UPDATE SET hourly_rate = EXCLUDED.hourly_rate, updated_at = EXCLUDED.updated_at
		RETURNING hourly_rate, updated_at
	`

	var cfg payroll.RateConfig
	if err := q.QueryRow(ctx, query, rate).Scan(&cfg.HourlyRate, &cfg.UpdatedAt); err != nil {
		return payroll.RateConfig{}, fmt.Errorf("failed to set global rate: %w", err)
	}

	return cfg, nil
}
