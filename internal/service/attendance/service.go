package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/workledger/workledger-backend-go/internal/domain/attendance"
	"github.com/workledger/workledger-backend-go/internal/domain/employee"
	"github.com/workledger/workledger-backend-go/internal/domain/workday"
	"github.com/workledger/workledger-backend-go/internal/pkg/clock"
	"github.com/workledger/workledger-backend-go/internal/pkg/database"
	"github.com/workledger/workledger-backend-go/internal/pkg/worktime"
)

type AttendanceServiceImpl struct {
	tx             database.Transactor
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	workDayRepo    workday.WorkDayRepository
	policy         attendance.Policy
	clock          clock.Clock
}

func NewAttendanceService(
	tx database.Transactor,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	workDayRepo workday.WorkDayRepository,
	policy attendance.Policy,
	clk clock.Clock,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		tx:             tx,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		workDayRepo:    workDayRepo,
		policy:         policy,
		clock:          clk,
	}
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.Record, error) {
	if err := req.Validate(); err != nil {
		return attendance.Record{}, err
	}

	now := s.clock.Now().UTC()
	date, err := workday.SessionDate(req.Date, now, s.policy.Location)
	if err != nil {
		return attendance.Record{}, err
	}

	var record attendance.Record
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
			return err
		}

		day, err := s.workDayRepo.GetByDate(ctx, date)
		if err != nil {
			if errors.Is(err, workday.ErrWorkDayNotFound) {
				return workday.ErrNotAWorkDay
			}
			return err
		}

		record, err = s.attendanceRepo.Create(ctx, attendance.Record{
			ID:         uuid.Must(uuid.NewV7()).String(),
			EmployeeID: req.EmployeeID,
			WorkDayID:  day.ID,
			Date:       day.Date,
			State:      worktime.StateOpen,
			CheckIn:    now,
			Hours:      decimal.Zero,
			Location:   req.Location,
			Evidence:   req.Evidence,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
		return err
	})
	if err != nil {
		return attendance.Record{}, err
	}

	slog.Info("employee checked in", "employee_id", record.EmployeeID, "date", worktime.FormatDate(record.Date))
	return record, nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.Record, error) {
	if err := req.Validate(); err != nil {
		return attendance.Record{}, err
	}

	now := s.clock.Now().UTC()
	date, err := workday.SessionDate(req.Date, now, s.policy.Location)
	if err != nil {
		return attendance.Record{}, err
	}

	var record attendance.Record
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
			return err
		}

		day, err := s.workDayRepo.GetByDate(ctx, date)
		if err != nil {
			if errors.Is(err, workday.ErrWorkDayNotFound) {
				return attendance.ErrNoOpenSession
			}
			return err
		}

		current, err := s.attendanceRepo.GetByEmployeeAndDayForUpdate(ctx, req.EmployeeID, day.ID)
		if err != nil {
			if errors.Is(err, attendance.ErrAttendanceNotFound) {
				return attendance.ErrNoOpenSession
			}
			return err
		}
		if !current.IsOpen() {
			return attendance.ErrAlreadyCheckedOut
		}

		current.Close(s.policy.CheckoutTime(day.Date, now), s.policy.Location)
		record, err = s.attendanceRepo.Close(ctx, current)
		return err
	})
	if err != nil {
		return attendance.Record{}, err
	}

	slog.Info("employee checked out", "employee_id", record.EmployeeID, "hours", record.Hours.String())
	return record, nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, req attendance.ListAttendanceRequest) ([]attendance.Record, error) {
	filter, err := req.ToFilter()
	if err != nil {
		return nil, err
	}
	return s.attendanceRepo.List(ctx, filter)
}

// CloseStale implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CloseStale(ctx context.Context) (int, error) {
	today := worktime.DateOf(s.clock.Now(), s.policy.Location)
	open := worktime.StateOpen

	stale, err := s.attendanceRepo.List(ctx, attendance.Filter{State: &open, Before: &today})
	if err != nil {
		return 0, fmt.Errorf("failed to list open attendance: %w", err)
	}

	closed := 0
	for _, candidate := range stale {
		err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
			current, err := s.attendanceRepo.GetByIDForUpdate(ctx, candidate.ID)
			if err != nil {
				return err
			}
			if !current.IsOpen() {
				return attendance.ErrAlreadyCheckedOut
			}

			current.Close(s.policy.Cutoff(current.Date), s.policy.Location)
			_, err = s.attendanceRepo.Close(ctx, current)
			return err
		})
		switch {
		case err == nil:
			closed++
		case errors.Is(err, attendance.ErrAlreadyCheckedOut), errors.Is(err, attendance.ErrAttendanceNotFound):
			// closed or deleted concurrently
		default:
			return closed, fmt.Errorf("failed to close attendance %s: %w", candidate.ID, err)
		}
	}

	return closed, nil
}
