package report

import (
	"context"
	"fmt"

	"github.com/workledger/workledger-backend-go/internal/domain/advance"
	"github.com/workledger/workledger-backend-go/internal/domain/attendance"
	"github.com/workledger/workledger-backend-go/internal/domain/employee"
	"github.com/workledger/workledger-backend-go/internal/domain/overtime"
	"github.com/workledger/workledger-backend-go/internal/domain/payroll"
	"github.com/workledger/workledger-backend-go/internal/domain/report"
	"github.com/workledger/workledger-backend-go/internal/domain/workday"
	"github.com/workledger/workledger-backend-go/internal/pkg/database"
)

type ReportServiceImpl struct {
	tx             database.Transactor
	workDayRepo    workday.WorkDayRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	overtimeRepo   overtime.OvertimeRepository
	advanceRepo    advance.AdvanceRepository
	rateRepo       payroll.RateRepository
	policy         attendance.Policy
}

func NewReportService(
	tx database.Transactor,
	workDayRepo workday.WorkDayRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	overtimeRepo overtime.OvertimeRepository,
	advanceRepo advance.AdvanceRepository,
	rateRepo payroll.RateRepository,
	policy attendance.Policy,
) report.ReportService {
	return &ReportServiceImpl{
		tx:             tx,
		workDayRepo:    workDayRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		overtimeRepo:   overtimeRepo,
		advanceRepo:    advanceRepo,
		rateRepo:       rateRepo,
		policy:         policy,
	}
}

// Aggregate implements report.ReportService.
func (s *ReportServiceImpl) Aggregate(ctx context.Context, req report.AggregateRequest) (report.Report, error) {
	if err := req.Validate(); err != nil {
		return report.Report{}, err
	}

	unique := make(map[string]struct{}, len(req.WorkDayIDs))
	for _, id := range req.WorkDayIDs {
		unique[id] = struct{}{}
	}

	var in report.Input
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		days, err := s.workDayRepo.GetByIDs(ctx, req.WorkDayIDs)
		if err != nil {
			return fmt.Errorf("failed to load work days: %w", err)
		}
		if len(days) != len(unique) {
			return workday.ErrWorkDayNotFound
		}

		dayIDs := make([]string, 0, len(days))
		for _, d := range days {
			dayIDs = append(dayIDs, d.ID)
		}

		employees, err := s.employeeRepo.List(ctx, employee.EmployeeFilter{})
		if err != nil {
			return fmt.Errorf("failed to list employees: %w", err)
		}
		records, err := s.attendanceRepo.List(ctx, attendance.Filter{WorkDayIDs: dayIDs})
		if err != nil {
			return fmt.Errorf("failed to list attendance: %w", err)
		}
		sessions, err := s.overtimeRepo.List(ctx, overtime.Filter{WorkDayIDs: dayIDs})
		if err != nil {
			return fmt.Errorf("failed to list overtime: %w", err)
		}

		// Aggregate narrows advances to the exact local dates; the query
		// only needs a window wide enough to cover every zone offset.
		from := days[0].Date.AddDate(0, 0, -1)
		to := days[len(days)-1].Date.AddDate(0, 0, 2)
		accepted := true
		advances, err := s.advanceRepo.List(ctx, advance.Filter{
			Accepted:    &accepted,
			CreatedFrom: &from,
			CreatedTo:   &to,
		})
		if err != nil {
			return fmt.Errorf("failed to list advances: %w", err)
		}

		cfg, err := s.rateRepo.GetGlobalRate(ctx)
		if err != nil {
			return err
		}

		in = report.Input{
			Days:       days,
			Employees:  employees,
			Attendance: records,
			Overtime:   sessions,
			Advances:   advances,
			GlobalRate: cfg.HourlyRate,
			Policy:     s.policy,
		}
		return nil
	})
	if err != nil {
		return report.Report{}, err
	}

	return report.Aggregate(in), nil
}
