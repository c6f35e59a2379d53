package dispute

import (
	"time"

	"github.com/workledger/workledger-backend-go/internal/pkg/validator"
)

type CreateDisputeRequest struct {
	EmployeeID string `json:"employee_id"`
	Reason     string `json:"reason"`
}

func (r *CreateDisputeRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.RequiredID("employee_id", r.EmployeeID)
	if validator.IsEmpty(r.Reason) {
		errs.Add("reason", "reason is required")
	}

	return errs.Err()
}

type ListDisputeRequest struct {
	EmployeeID string
	Status     string
}

func (r *ListDisputeRequest) ToFilter() (Filter, error) {
	var filter Filter

	if r.EmployeeID != "" {
		if !validator.IsValidUUID(r.EmployeeID) {
			return Filter{}, validator.ValidationErrors{{Field: "employee_id", Message: "employee_id must be a valid id"}}
		}
		filter.EmployeeIDs = []string{r.EmployeeID}
	}

	switch Status(r.Status) {
	case "":
	case StatusOpen:
		resolved := false
		filter.Resolved = &resolved
	case StatusResolved:
		resolved := true
		filter.Resolved = &resolved
	default:
		return Filter{}, validator.ValidationErrors{{Field: "status", Message: "status must be open or resolved"}}
	}

	return filter, nil
}

type DisputeResponse struct {
	ID         string     `json:"id"`
	EmployeeID string     `json:"employee_id"`
	Reason     string     `json:"reason"`
	Status     Status     `json:"status"`
	ResolvedAt *time.Time `json:"resolved_at"`
	CreatedAt  time.Time  `json:"created_at"`
}

func NewDisputeResponse(d Dispute) DisputeResponse {
	status := StatusOpen
	if d.Resolved {
		status = StatusResolved
	}
	return DisputeResponse{
		ID:         d.ID,
		EmployeeID: d.EmployeeID,
		Reason:     d.Reason,
		Status:     status,
		ResolvedAt: d.ResolvedAt,
		CreatedAt:  d.CreatedAt,
	}
}

func NewDisputeResponses(list []Dispute) []DisputeResponse {
	out := make([]DisputeResponse, 0, len(list))
	for _, d := range list {
		out = append(out, NewDisputeResponse(d))
	}
	return out
}
