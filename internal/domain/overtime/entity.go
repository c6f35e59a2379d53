package overtime

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/workledger/workledger-backend-go/internal/pkg/worktime"
)

type Record struct {
	ID            string
	EmployeeID    string
	WorkDayID     string
	Date          time.Time
	State         worktime.SessionState
	StartedAt     time.Time
	EndedAt       *time.Time
	Hours         decimal.Decimal
	ProofText     *string
	ProofEvidence *string
	Paid          bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (r Record) IsOpen() bool {
	return r.State == worktime.StateOpen
}

func (r Record) HasProof() bool {
	return r.ProofText != nil || r.ProofEvidence != nil
}

// Close ends the session at end and derives its hours.
func (r *Record) Close(end time.Time, loc *time.Location) {
	if end.Before(r.StartedAt) {
		end = r.StartedAt
	}
	r.EndedAt = &end
	r.State = worktime.StateClosed
	r.Hours = worktime.ElapsedHours(r.StartedAt, end, loc)
}

type Filter struct {
	EmployeeIDs []string
	WorkDayIDs  []string
	From        *time.Time
	To          *time.Time
	State       *worktime.SessionState
	Paid        *bool
}
