package payroll

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/workledger/workledger-backend-go/internal/pkg/validator"
)

type SetRateRequest struct {
	HourlyRate *decimal.Decimal `json:"hourly_rate"`
}

func (r *SetRateRequest) Validate() error {
	if r.HourlyRate == nil {
		return validator.ValidationErrors{{Field: "hourly_rate", Message: "hourly_rate is required"}}
	}
	if r.HourlyRate.IsNegative() {
		return ErrInvalidRate
	}
	return nil
}

type BulkPayRequest struct {
	EmployeeIDs []string   `json:"employee_ids"`
	Kind        RecordKind `json:"kind,omitempty"`
}

func (r *BulkPayRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.IDs("employee_ids", r.EmployeeIDs)
	if r.Kind != "" && !r.Kind.IsValid() {
		errs.Add("kind", "kind must be attendance or overtime")
	}

	return errs.Err()
}

// Kinds returns the record kinds the request covers.
func (r *BulkPayRequest) Kinds() []RecordKind {
	if r.Kind != "" {
		return []RecordKind{r.Kind}
	}
	return []RecordKind{KindAttendance, KindOvertime}
}

type BulkPayResult struct {
	Paid     int             `json:"paid"`
	Skipped  int             `json:"skipped"`
	Credited decimal.Decimal `json:"credited"`

	// UnknownEmployeeIDs lists selected employees that do not exist; each counts as skipped.
	UnknownEmployeeIDs []string `json:"unknown_employee_ids,omitempty"`
}

type BulkAcceptRequest struct {
	IDs []string `json:"ids"`
}

func (r *BulkAcceptRequest) Validate() error {
	var errs validator.ValidationErrors
	errs.IDs("ids", r.IDs)
	return errs.Err()
}

type BulkAcceptResult struct {
	Accepted int `json:"accepted"`
	Skipped  int `json:"skipped"`
}

type RateResponse struct {
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func NewRateResponse(c RateConfig) RateResponse {
	return RateResponse{HourlyRate: c.HourlyRate, UpdatedAt: c.UpdatedAt}
}
