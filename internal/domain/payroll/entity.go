package payroll

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/workledger/workledger-backend-go/internal/domain/employee"
)

// RecordKind names the session type a ledger credit comes from.
type RecordKind string

const (
	KindAttendance RecordKind = "attendance"
	KindOvertime   RecordKind = "overtime"
)

func (k RecordKind) IsValid() bool {
	return k == KindAttendance || k == KindOvertime
}

// RateConfig is the company-wide hourly rate.
type RateConfig struct {
	HourlyRate decimal.Decimal
	UpdatedAt  time.Time
}

// EffectiveRate returns the employee override when present, else the global rate.
func EffectiveRate(emp employee.Employee, global decimal.Decimal) decimal.Decimal {
	if emp.HourlyRate != nil {
		return *emp.HourlyRate
	}
	return global
}

// Credit is the amount earned for hours at rate.
func Credit(hours, rate decimal.Decimal) decimal.Decimal {
	return hours.Mul(rate).Round(2)
}

// LedgerEntry describes one balance movement caused by paying a session.
type LedgerEntry struct {
	Kind       RecordKind      `json:"kind"`
	RecordID   string          `json:"record_id"`
	EmployeeID string          `json:"employee_id"`
	Hours      decimal.Decimal `json:"hours"`
	Rate       decimal.Decimal `json:"rate"`
	Amount     decimal.Decimal `json:"amount"`
	Balance    decimal.Decimal `json:"balance"`
}

// Statement is an employee's view of what they earned and what they drew.
type Statement struct {
	EmployeeID            string          `json:"employee_id"`
	PaidAttendanceHours   decimal.Decimal `json:"paid_attendance_hours"`
	UnpaidAttendanceHours decimal.Decimal `json:"unpaid_attendance_hours"`
	PaidOvertimeHours     decimal.Decimal `json:"paid_overtime_hours"`
	UnpaidOvertimeHours   decimal.Decimal `json:"unpaid_overtime_hours"`
	Rate                  decimal.Decimal `json:"rate"`
	TotalEarned           decimal.Decimal `json:"total_earned"`
	AdvancesTotal         decimal.Decimal `json:"advances_total"`
	Balance               decimal.Decimal `json:"balance"`
}
