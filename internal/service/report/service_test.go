package report

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workledger/workledger-backend-go/internal/domain/attendance"
	"github.com/workledger/workledger-backend-go/internal/domain/employee"
	"github.com/workledger/workledger-backend-go/internal/domain/report"
	"github.com/workledger/workledger-backend-go/internal/domain/workday"
	"github.com/workledger/workledger-backend-go/internal/pkg/clock"
	"github.com/workledger/workledger-backend-go/internal/pkg/worktime"
	"github.com/workledger/workledger-backend-go/internal/repository/memory"
)

func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

func TestReportService_Aggregate(t *testing.T) {
	ctx := context.Background()
	monday := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	clk := clock.NewFixed(monday.AddDate(0, 0, 7))
	store := memory.NewStore(clk)

	employeeRepo := memory.NewEmployeeRepository(store)
	workDayRepo := memory.NewWorkDayRepository(store)
	attendanceRepo := memory.NewAttendanceRepository(store)
	rateRepo := memory.NewRateRepository(store)
	_, err := rateRepo.SetGlobalRate(ctx, decimal.NewFromInt(100))
	require.NoError(t, err)

	emp, err := employeeRepo.Create(ctx, employee.Employee{ID: newID(), FullName: "Aida", Phone: "+996700000001", Balance: decimal.Zero})
	require.NoError(t, err)
	_, err = employeeRepo.Create(ctx, employee.Employee{ID: newID(), FullName: "Bakyt", Phone: "+996700000002", Balance: decimal.Zero})
	require.NoError(t, err)

	day, err := workDayRepo.Create(ctx, workday.WorkDay{ID: newID(), Date: monday})
	require.NoError(t, err)

	checkIn := monday.Add(9*time.Hour + 15*time.Minute)
	checkOut := monday.Add(17*time.Hour + 15*time.Minute)
	_, err = attendanceRepo.Create(ctx, attendance.Record{
		ID:         newID(),
		EmployeeID: emp.ID,
		WorkDayID:  day.ID,
		State:      worktime.StateClosed,
		CheckIn:    checkIn,
		CheckOut:   &checkOut,
		Hours:      decimal.NewFromInt(8),
	})
	require.NoError(t, err)

	svc := NewReportService(store, workDayRepo, employeeRepo, attendanceRepo,
		memory.NewOvertimeRepository(store), memory.NewAdvanceRepository(store), rateRepo, attendance.DefaultPolicy())

	got, err := svc.Aggregate(ctx, report.AggregateRequest{WorkDayIDs: []string{day.ID, day.ID}})
	require.NoError(t, err)

	require.Len(t, got.Days, 1)
	assert.Equal(t, "2025-03-03", got.Days[0].DateString)
	assert.Equal(t, 2, got.Days[0].Headcount)
	assert.Equal(t, 1, got.Days[0].Arrived)
	assert.Equal(t, 1, got.Days[0].Absent)
	assert.Equal(t, 1, got.Days[0].Late)

	require.Len(t, got.Employees, 2)
	var aida report.EmployeeSummary
	for _, s := range got.Employees {
		if s.EmployeeID == emp.ID {
			aida = s
		}
	}
	assert.Equal(t, 1, aida.WorkedDays)
	assert.True(t, aida.Gross.Equal(decimal.NewFromInt(800)), aida.Gross.String())
}

func TestReportService_AggregateErrors(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(nil)
	svc := NewReportService(store,
		memory.NewWorkDayRepository(store),
		memory.NewEmployeeRepository(store),
		memory.NewAttendanceRepository(store),
		memory.NewOvertimeRepository(store),
		memory.NewAdvanceRepository(store),
		memory.NewRateRepository(store),
		attendance.DefaultPolicy(),
	)

	_, err := svc.Aggregate(ctx, report.AggregateRequest{})
	assert.Error(t, err)

	_, err = svc.Aggregate(ctx, report.AggregateRequest{WorkDayIDs: []string{newID()}})
	assert.ErrorIs(t, err, workday.ErrWorkDayNotFound)
}
