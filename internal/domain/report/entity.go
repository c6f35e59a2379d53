package report

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/workledger/workledger-backend-go/internal/domain/advance"
	"github.com/workledger/workledger-backend-go/internal/domain/attendance"
	"github.com/workledger/workledger-backend-go/internal/domain/employee"
	"github.com/workledger/workledger-backend-go/internal/domain/overtime"
	"github.com/workledger/workledger-backend-go/internal/domain/workday"
)

// Input is everything Aggregate reads. Records outside Days are ignored.
type Input struct {
	Days       []workday.WorkDay
	Employees  []employee.Employee
	Attendance []attendance.Record
	Overtime   []overtime.Record
	Advances   []advance.AdvanceRequest
	GlobalRate decimal.Decimal
	Policy     attendance.Policy
}

type Report struct {
	Employees []EmployeeSummary `json:"employees"`
	Days      []DaySummary      `json:"days"`
}

type EmployeeSummary struct {
	EmployeeID        string          `json:"employee_id"`
	FullName          string          `json:"full_name"`
	Phone             string          `json:"phone"`
	WorkedDays        int             `json:"worked_days"`
	AttendanceHours   decimal.Decimal `json:"attendance_hours"`
	PaidOvertimeHours decimal.Decimal `json:"paid_overtime_hours"`
	TotalHours        decimal.Decimal `json:"total_hours"`
	Rate              decimal.Decimal `json:"rate"`
	Gross             decimal.Decimal `json:"gross"`
	Advances          decimal.Decimal `json:"advances"`
	Net               decimal.Decimal `json:"net"`
	Balance           decimal.Decimal `json:"balance"`
}

type DaySummary struct {
	WorkDayID        string          `json:"work_day_id"`
	Date             time.Time       `json:"-"`
	DateString       string          `json:"date"`
	Headcount        int             `json:"headcount"`
	Arrived          int             `json:"arrived"`
	Absent           int             `json:"absent"`
	Late             int             `json:"late"`
	OpenOvertime     int             `json:"open_overtime"`
	OvertimeSessions int             `json:"overtime_sessions"`
	AttendanceHours  decimal.Decimal `json:"attendance_hours"`
	AverageHours     decimal.Decimal `json:"average_hours"`
}
