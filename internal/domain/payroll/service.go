package payroll

import (
	"context"

	"github.com/workledger/workledger-backend-go/internal/domain/advance"
)

// PayrollService is the only writer of employee balances.
type PayrollService interface {
	GetRate(ctx context.Context) (RateConfig, error)
	SetRate(ctx context.Context, req SetRateRequest) (RateConfig, error)

	// MarkPaid credits one closed session to its employee's balance.
	MarkPaid(ctx context.Context, kind RecordKind, recordID string) (LedgerEntry, error)
	// BulkMarkPaid credits every unpaid closed session of the given employees.
	BulkMarkPaid(ctx context.Context, req BulkPayRequest) (BulkPayResult, error)

	// AcceptAdvance debits an advance request from its employee's balance.
	AcceptAdvance(ctx context.Context, id string) (advance.AdvanceRequest, error)
	BulkAcceptAdvances(ctx context.Context, req BulkAcceptRequest) (BulkAcceptResult, error)

	Statement(ctx context.Context, employeeID string) (Statement, error)
}
