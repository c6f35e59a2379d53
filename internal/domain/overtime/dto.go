package overtime

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/workledger/workledger-backend-go/internal/pkg/validator"
	"github.com/workledger/workledger-backend-go/internal/pkg/worktime"
)

type SessionRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date,omitempty"`
}

func (r *SessionRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.RequiredID("employee_id", r.EmployeeID)
	errs.OptionalDate("date", r.Date)

	return errs.Err()
}

type ProofRequest struct {
	Text     *string `json:"text,omitempty"`
	Evidence *string `json:"evidence,omitempty"`
}

// Normalize drops blank fields and fails with ErrEmptyProof when nothing is left.
func (r *ProofRequest) Normalize() error {
	r.Text = trimmedOrNil(r.Text)
	r.Evidence = trimmedOrNil(r.Evidence)
	if r.Text == nil && r.Evidence == nil {
		return ErrEmptyProof
	}
	return nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

type ListOvertimeRequest struct {
	EmployeeID string
	From       string
	To         string
	State      string
	Paid       string
}

func (r *ListOvertimeRequest) ToFilter() (Filter, error) {
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
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	WorkDayID     string          `json:"work_day_id"`
	Date          string          `json:"date"`
	State         string          `json:"state"`
	StartedAt     time.Time       `json:"started_at"`
	EndedAt       *time.Time      `json:"ended_at"`
	Hours         decimal.Decimal `json:"hours"`
	ProofText     *string         `json:"proof_text"`
	ProofEvidence *string         `json:"proof_evidence"`
	Paid          bool            `json:"paid"`
}

func NewRecordResponse(r Record) RecordResponse {
	return RecordResponse{
		ID:            r.ID,
		EmployeeID:    r.EmployeeID,
		WorkDayID:     r.WorkDayID,
		Date:          worktime.FormatDate(r.Date),
		State:         string(r.State),
		StartedAt:     r.StartedAt,
		EndedAt:       r.EndedAt,
		Hours:         r.Hours,
		ProofText:     r.ProofText,
		ProofEvidence: r.ProofEvidence,
		Paid:          r.Paid,
	}
}

func NewRecordResponses(records []Record) []RecordResponse {
	out := make([]RecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, NewRecordResponse(r))
	}
	return out
}
