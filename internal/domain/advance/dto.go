package advance

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/workledger/workledger-backend-go/internal/pkg/validator"
)

type CreateAdvanceRequest struct {
	EmployeeID string          `json:"employee_id"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     string          `json:"reason"`
}

func (r *CreateAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.RequiredID("employee_id", r.EmployeeID)

	return errs.Err()
}

type ListAdvanceRequest struct {
	EmployeeID string
	Status     string
}

func (r *ListAdvanceRequest) ToFilter() (Filter, error) {
	var filter Filter

	if r.EmployeeID != "" {
		if !validator.IsValidUUID(r.EmployeeID) {
			return Filter{}, validator.ValidationErrors{{Field: "employee_id", Message: "employee_id must be a valid id"}}
		}
		filter.EmployeeIDs = []string{r.EmployeeID}
	}

	switch Status(r.Status) {
	case "":
	case StatusPending:
		accepted := false
		filter.Accepted = &accepted
	case StatusAccepted:
		accepted := true
		filter.Accepted = &accepted
	default:
		return Filter{}, validator.ValidationErrors{{Field: "status", Message: "status must be pending or accepted"}}
	}

	return filter, nil
}

type AdvanceResponse struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employee_id"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     string          `json:"reason"`
	Status     Status          `json:"status"`
	AcceptedAt *time.Time      `json:"accepted_at"`
	CreatedAt  time.Time       `json:"created_at"`
}

func NewAdvanceResponse(a AdvanceRequest) AdvanceResponse {
	status := StatusPending
	if a.Accepted {
		status = StatusAccepted
	}
	return AdvanceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Amount:     a.Amount,
		Reason:     a.Reason,
		Status:     status,
		AcceptedAt: a.AcceptedAt,
		CreatedAt:  a.CreatedAt,
	}
}

func NewAdvanceResponses(list []AdvanceRequest) []AdvanceResponse {
	out := make([]AdvanceResponse, 0, len(list))
	for _, a := range list {
		out = append(out, NewAdvanceResponse(a))
	}
	return out
}
