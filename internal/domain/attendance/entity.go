package attendance

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/workledger/workledger-backend-go/internal/pkg/worktime"
)

type Record struct {
	ID         string
	EmployeeID string
	WorkDayID  string
	Date       time.Time
	State      worktime.SessionState
	CheckIn    time.Time
	CheckOut   *time.Time
	Hours      decimal.Decimal
	Location   *string
	Evidence   *string
	Paid       bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (r Record) IsOpen() bool {
	return r.State == worktime.StateOpen
}

// Close ends the session at end and derives its hours. An end before the
// check-in closes the session at the check-in with zero hours.
func (r *Record) Close(end time.Time, loc *time.Location) {
	if end.Before(r.CheckIn) {
		end = r.CheckIn
	}
	r.CheckOut = &end
	r.State = worktime.StateClosed
	r.Hours = worktime.ElapsedHours(r.CheckIn, end, loc)
}

type Filter struct {
	EmployeeIDs []string
	WorkDayIDs  []string
	From        *time.Time
	To          *time.Time
	// Before matches records whose work day is strictly earlier than this date.
	Before *time.Time
	State  *worktime.SessionState
	Paid   *bool
}

// Policy holds the clock rules of a working day.
type Policy struct {
	Location       *time.Location
	CheckoutCutoff worktime.TimeOfDay
	LateAfter      worktime.TimeOfDay
}

func DefaultPolicy() Policy {
	return Policy{
		Location:       time.UTC,
		CheckoutCutoff: worktime.MustParseTimeOfDay("19:00"),
		LateAfter:      worktime.MustParseTimeOfDay("09:00"),
	}
}

// Cutoff is the latest instant a session on date may end at.
func (p Policy) Cutoff(date time.Time) time.Time {
	return p.CheckoutCutoff.On(date, p.Location)
}

// CheckoutTime caps now at the cutoff of date.
func (p Policy) CheckoutTime(date, now time.Time) time.Time {
	cutoff := p.Cutoff(date)
	if now.Before(cutoff) {
		return now
	}
	return cutoff
}

// IsLate reports whether checkIn is strictly after the late threshold.
func (p Policy) IsLate(checkIn time.Time) bool {
	return worktime.Of(checkIn, p.Location) > p.LateAfter
}
