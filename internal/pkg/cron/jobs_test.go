package cron

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workledger/workledger-backend-go/internal/domain/attendance"
	"github.com/workledger/workledger-backend-go/internal/domain/employee"
	"github.com/workledger/workledger-backend-go/internal/domain/workday"
	"github.com/workledger/workledger-backend-go/internal/pkg/clock"
	"github.com/workledger/workledger-backend-go/internal/pkg/worktime"
	"github.com/workledger/workledger-backend-go/internal/repository/memory"
	attendanceService "github.com/workledger/workledger-backend-go/internal/service/attendance"
	workdayService "github.com/workledger/workledger-backend-go/internal/service/workday"
)

func TestLedgerJobs(t *testing.T) {
	ctx := context.Background()
	monday := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	clk := clock.NewFixed(monday.Add(9 * time.Hour))
	store := memory.NewStore(clk)

	employeeRepo := memory.NewEmployeeRepository(store)
	workDayRepo := memory.NewWorkDayRepository(store)
	attendanceRepo := memory.NewAttendanceRepository(store)
	policy := attendance.DefaultPolicy()

	days := workdayService.NewWorkDayService(workDayRepo, clk)
	sessions := attendanceService.NewAttendanceService(store, attendanceRepo, employeeRepo, workDayRepo, policy, clk)

	emp, err := employeeRepo.Create(ctx, employee.Employee{ID: uuid.Must(uuid.NewV7()).String(), FullName: "Aida", Phone: "+996700000001", Balance: decimal.Zero})
	require.NoError(t, err)
	_, err = workDayRepo.Create(ctx, workday.WorkDay{ID: uuid.Must(uuid.NewV7()).String(), Date: monday})
	require.NoError(t, err)
	_, err = sessions.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: emp.ID})
	require.NoError(t, err)

	jobs := NewLedgerJobs(days, sessions, clk, policy.Location)
	scheduler := NewScheduler()
	jobs.RegisterJobs(scheduler)

	registered := scheduler.Jobs()
	require.Len(t, registered, 2)
	assert.Equal(t, JobGenerateWorkDays, registered[0].Name)
	assert.Equal(t, JobAutoCloseSessions, registered[1].Name)

	clk.Set(monday.AddDate(0, 0, 1).Add(2 * time.Hour))
	for _, job := range registered {
		require.NoError(t, job.Fn(ctx), job.Name)
	}

	upcoming, err := days.List(ctx, workday.ListWorkDayRequest{From: "2025-03-05"})
	require.NoError(t, err)
	assert.NotEmpty(t, upcoming)

	closed := worktime.StateClosed
	records, err := attendanceRepo.List(ctx, attendance.Filter{State: &closed})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, monday.Add(19*time.Hour), *records[0].CheckOut)
}

func TestScheduler_StartStop(t *testing.T) {
	var runs atomic.Int32
	scheduler := NewScheduler()
	scheduler.AddJob("tick", time.Hour, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	scheduler.Start(context.Background())
	assert.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 10*time.Millisecond)
	scheduler.Stop()
	scheduler.Stop()
}
