package report

import (
	"github.com/workledger/workledger-backend-go/internal/pkg/validator"
)

type AggregateRequest struct {
	WorkDayIDs []string `json:"work_day_ids"`
}

func (r *AggregateRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.WorkDayIDs) == 0 {
		errs.Add("work_day_ids", ErrNoWorkDaysSelected.Error())
	}
	for _, id := range r.WorkDayIDs {
		if !validator.IsValidUUID(id) {
			errs.Add("work_day_ids", "work_day_ids must contain valid ids")
			break
		}
	}

	return errs.Err()
}
