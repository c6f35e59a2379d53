package workday

import (
	"github.com/workledger/workledger-backend-go/internal/pkg/validator"
	"github.com/workledger/workledger-backend-go/internal/pkg/worktime"
)

type CreateWorkDayRequest struct {
	Date string `json:"date"`
}

func (r *CreateWorkDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs.Add("date", "date is required")
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs.Add("date", "date must be in YYYY-MM-DD format")
	}

	return errs.Err()
}

type ListWorkDayRequest struct {
	From string
	To   string
}

// ToFilter validates and converts the query parameters.
func (r *ListWorkDayRequest) ToFilter() (WorkDayFilter, error) {
	var errs validator.ValidationErrors
	var filter WorkDayFilter

	if r.From != "" {
		if d, ok := validator.IsValidDate(r.From); ok {
			filter.From = &d
		} else {
			errs.Add("from", "from must be in YYYY-MM-DD format")
		}
	}
	if r.To != "" {
		if d, ok := validator.IsValidDate(r.To); ok {
			filter.To = &d
		} else {
			errs.Add("to", "to must be in YYYY-MM-DD format")
		}
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		errs.Add("to", "to must not be before from")
	}

	if err := errs.Err(); err != nil {
		return WorkDayFilter{}, err
	}
	return filter, nil
}

type GenerateResult struct {
	Created    int `json:"created"`
	Considered int `json:"considered"`
}

type WorkDayResponse struct {
	ID   string `json:"id"`
	Date string `json:"date"`
}

func NewWorkDayResponse(d WorkDay) WorkDayResponse {
	return WorkDayResponse{ID: d.ID, Date: worktime.FormatDate(d.Date)}
}

func NewWorkDayResponses(days []WorkDay) []WorkDayResponse {
	out := make([]WorkDayResponse, 0, len(days))
	for _, d := range days {
		out = append(out, NewWorkDayResponse(d))
	}
	return out
}
