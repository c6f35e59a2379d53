package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/workledger/workledger-backend-go/internal/domain/payroll"
	"github.com/workledger/workledger-backend-go/internal/pkg/worktime"
)

// Aggregate rolls records of the selected work days up into per-employee and
// per-day summaries. It does not touch any store.
func Aggregate(in Input) Report {
	if in.Policy.Location == nil {
		in.Policy.Location = time.UTC
	}

	days := make([]DaySummary, 0, len(in.Days))
	dayIndex := make(map[string]int, len(in.Days))
	selectedDates := make(map[string]struct{}, len(in.Days))

	sortedDays := append(in.Days[:0:0], in.Days...)
	sort.SliceStable(sortedDays, func(i, j int) bool {
		return sortedDays[i].Date.Before(sortedDays[j].Date)
	})

	for _, d := range sortedDays {
		if _, dup := dayIndex[d.ID]; dup {
			continue
		}
		dayIndex[d.ID] = len(days)
		selectedDates[worktime.FormatDate(d.Date)] = struct{}{}
		days = append(days, DaySummary{
			WorkDayID:       d.ID,
			Date:            d.Date,
			DateString:      worktime.FormatDate(d.Date),
			Headcount:       len(in.Employees),
			AttendanceHours: decimal.Zero,
			AverageHours:    decimal.Zero,
		})
	}

	type totals struct {
		workedDays      int
		attendanceHours decimal.Decimal
		overtimeHours   decimal.Decimal
		advances        decimal.Decimal
	}
	perEmployee := make(map[string]*totals, len(in.Employees))
	for _, e := range in.Employees {
		perEmployee[e.ID] = &totals{
			attendanceHours: decimal.Zero,
			overtimeHours:   decimal.Zero,
			advances:        decimal.Zero,
		}
	}

	for _, r := range in.Attendance {
		idx, ok := dayIndex[r.WorkDayID]
		if !ok {
			continue
		}
		day := &days[idx]
		day.Arrived++
		day.AttendanceHours = day.AttendanceHours.Add(r.Hours)
		if in.Policy.IsLate(r.CheckIn) {
			day.Late++
		}

		if t, ok := perEmployee[r.EmployeeID]; ok {
			t.workedDays++
			t.attendanceHours = t.attendanceHours.Add(r.Hours)
		}
	}

	for _, r := range in.Overtime {
		idx, ok := dayIndex[r.WorkDayID]
		if !ok {
			continue
		}
		day := &days[idx]
		day.OvertimeSessions++
		if r.IsOpen() {
			day.OpenOvertime++
		}

		if t, ok := perEmployee[r.EmployeeID]; ok && r.Paid {
			t.overtimeHours = t.overtimeHours.Add(r.Hours)
		}
	}

	for _, a := range in.Advances {
		if !a.Accepted {
			continue
		}
		created := worktime.FormatDate(worktime.DateOf(a.CreatedAt, in.Policy.Location))
		if _, ok := selectedDates[created]; !ok {
			continue
		}
		if t, ok := perEmployee[a.EmployeeID]; ok {
			t.advances = t.advances.Add(a.Amount)
		}
	}

	for i := range days {
		day := &days[i]
		day.Absent = day.Headcount - day.Arrived
		if day.Arrived > 0 {
			day.AverageHours = day.AttendanceHours.Div(decimal.NewFromInt(int64(day.Arrived))).Round(2)
		}
	}

	employees := make([]EmployeeSummary, 0, len(in.Employees))
	for _, e := range in.Employees {
		t := perEmployee[e.ID]
		rate := payroll.EffectiveRate(e, in.GlobalRate)
		total := t.attendanceHours.Add(t.overtimeHours)
		gross := payroll.Credit(total, rate)

		employees = append(employees, EmployeeSummary{
			EmployeeID:        e.ID,
			FullName:          e.FullName,
			Phone:             e.Phone,
			WorkedDays:        t.workedDays,
			AttendanceHours:   t.attendanceHours,
			PaidOvertimeHours: t.overtimeHours,
			TotalHours:        total,
			Rate:              rate,
			Gross:             gross,
			Advances:          t.advances,
			Net:               gross.Sub(t.advances),
			Balance:           e.Balance,
		})
	}

	return Report{Employees: employees, Days: days}
}
