package advance

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdvanceRequest is an employee's request to draw money ahead of payroll.
type AdvanceRequest struct {
	ID         string
	EmployeeID string
	Amount     decimal.Decimal
	Reason     string
	Accepted   bool
	AcceptedAt *time.Time
	CreatedAt  time.Time
}

// AmountPlaces is the number of decimal places an amount may carry.
const AmountPlaces = 2

// maxAmount is the first value that no longer fits NUMERIC(14, 2).
var maxAmount = decimal.New(1, 12)

// ValidAmount reports whether amount is positive, has at most AmountPlaces
// decimal places and fits the ledger column.
func ValidAmount(amount decimal.Decimal) bool {
	return amount.IsPositive() &&
		amount.Equal(amount.Round(AmountPlaces)) &&
		amount.LessThan(maxAmount)
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
)

type Filter struct {
	EmployeeIDs []string
	Accepted    *bool
	// CreatedFrom and CreatedTo bound CreatedAt, inclusive and exclusive.
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}
