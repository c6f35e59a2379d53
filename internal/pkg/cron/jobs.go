package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/workledger/workledger-backend-go/internal/domain/attendance"
	"github.com/workledger/workledger-backend-go/internal/domain/workday"
	"github.com/workledger/workledger-backend-go/internal/pkg/clock"
	"github.com/workledger/workledger-backend-go/internal/pkg/worktime"
)

const (
	JobGenerateWorkDays  = "generate_work_days"
	JobAutoCloseSessions = "auto_close_open_attendance"
)

// LedgerJobs keeps the work-day calendar filled and closes forgotten sessions.
type LedgerJobs struct {
	workDayService    workday.WorkDayService
	attendanceService attendance.AttendanceService
	clock             clock.Clock
	location          *time.Location
}

func NewLedgerJobs(
	workDayService workday.WorkDayService,
	attendanceService attendance.AttendanceService,
	clk clock.Clock,
	location *time.Location,
) *LedgerJobs {
	return &LedgerJobs{
		workDayService:    workDayService,
		attendanceService: attendanceService,
		clock:             clk,
		location:          location,
	}
}

func (j *LedgerJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob(JobGenerateWorkDays, 24*time.Hour, j.GenerateWorkDays)
	scheduler.AddJob(JobAutoCloseSessions, time.Hour, j.AutoCloseOpenAttendance)
}

func (j *LedgerJobs) GenerateWorkDays(ctx context.Context) error {
	today := worktime.DateOf(j.clock.Now(), j.location)

	result, err := j.workDayService.Generate(ctx, today)
	if err != nil {
		return fmt.Errorf("failed to generate work days: %w", err)
	}

	slog.Info("cron: work days generated", "created", result.Created, "considered", result.Considered)
	return nil
}

// AutoCloseOpenAttendance closes sessions left open on earlier days at that day's cutoff.
func (j *LedgerJobs) AutoCloseOpenAttendance(ctx context.Context) error {
	closed, err := j.attendanceService.CloseStale(ctx)
	if err != nil {
		return fmt.Errorf("failed to close stale attendance: %w", err)
	}

	if closed > 0 {
		slog.Info("cron: stale attendance closed", "count", closed)
	}
	return nil
}
