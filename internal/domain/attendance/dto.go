package attendance

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/workledger/workledger-backend-go/internal/pkg/validator"
	"github.com/workledger/workledger-backend-go/internal/pkg/worktime"
)

type CheckInRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date,omitempty"`
	Location   *string `json:"location,omitempty"`
	Evidence   *string `json:"evidence,omitempty"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	validateSession(&errs, r.EmployeeID, r.Date)

	return errs.Err()
}

type CheckOutRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date,omitempty"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	validateSession(&errs, r.EmployeeID, r.Date)

	return errs.Err()
}

func validateSession(errs *validator.ValidationErrors, employeeID, date string) {
	errs.RequiredID("employee_id", employeeID)
	if date != "" {
		if _, ok := validator.IsValidDate(date); !ok {
			errs.Add("date", "date must be in YYYY-MM-DD format")
		}
	}
}

type ListAttendanceRequest struct {
	EmployeeID string
	From       string
	To         string
	State      string
	Paid       string
}

func (r *ListAttendanceRequest) ToFilter() (Filter, error) {
	var errs validator.ValidationErrors
	var filter Filter

	errs.OptionalID("employee_id", r.EmployeeID)
	if r.EmployeeID != "" {
		filter.EmployeeIDs = []string{r.EmployeeID}
	}
	filter.From = errs.OptionalDate("from", r.From)
	filter.To = errs.OptionalDate("to", r.To)

	if r.State != "" {
		state := worktime.SessionState(r.State)
		if !state.IsValid() {
			errs.Add("state", "state must be open or closed")
		} else {
			filter.State = &state
		}
	}
	if r.Paid != "" {
		paid, err := strconv.ParseBool(r.Paid)
		if err != nil {
			errs.Add("paid", "paid must be true or false")
		} else {
			filter.Paid = &paid
		}
	}

	if err := errs.Err(); err != nil {
		return Filter{}, err
	}
	return filter, nil
}

type RecordResponse struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employee_id"`
	WorkDayID  string          `json:"work_day_id"`
	Date       string          `json:"date"`
	State      string          `json:"state"`
	CheckIn    time.Time       `json:"check_in"`
	CheckOut   *time.Time      `json:"check_out"`
	Hours      decimal.Decimal `json:"hours"`
	Location   *string         `json:"location"`
	Evidence   *string         `json:"evidence"`
	Paid       bool            `json:"paid"`
}

func NewRecordResponse(r Record) RecordResponse {
	return RecordResponse{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		WorkDayID:  r.WorkDayID,
		Date:       worktime.FormatDate(r.Date),
		State:      string(r.State),
		CheckIn:    r.CheckIn,
		CheckOut:   r.CheckOut,
		Hours:      r.Hours,
		Location:   r.Location,
		Evidence:   r.Evidence,
		Paid:       r.Paid,
	}
}

func NewRecordResponses(records []Record) []RecordResponse {
	out := make([]RecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, NewRecordResponse(r))
	}
	return out
}
