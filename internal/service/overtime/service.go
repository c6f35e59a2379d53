package overtime

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/workledger/workledger-backend-go/internal/domain/employee"
	"github.com/workledger/workledger-backend-go/internal/domain/overtime"
	"github.com/workledger/workledger-backend-go/internal/domain/workday"
	"github.com/workledger/workledger-backend-go/internal/pkg/clock"
	"github.com/workledger/workledger-backend-go/internal/pkg/database"
	"github.com/workledger/workledger-backend-go/internal/pkg/sse"
	"github.com/workledger/workledger-backend-go/internal/pkg/worktime"
)

type OvertimeServiceImpl struct {
	tx           database.Transactor
	overtimeRepo overtime.OvertimeRepository
	employeeRepo employee.EmployeeRepository
	workDayRepo  workday.WorkDayRepository
	location     *time.Location
	clock        clock.Clock
	events       sse.Publisher
}

func NewOvertimeService(
	tx database.Transactor,
	overtimeRepo overtime.OvertimeRepository,
	employeeRepo employee.EmployeeRepository,
	workDayRepo workday.WorkDayRepository,
	location *time.Location,
	clk clock.Clock,
	events sse.Publisher,
) overtime.OvertimeService {
	if events == nil {
		events = sse.NopPublisher()
	}
	return &OvertimeServiceImpl{
		tx:           tx,
		overtimeRepo: overtimeRepo,
		employeeRepo: employeeRepo,
		workDayRepo:  workDayRepo,
		location:     location,
		clock:        clk,
		events:       events,
	}
}

// Start implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) Start(ctx context.Context, req overtime.SessionRequest) (overtime.Record, error) {
	if err := req.Validate(); err != nil {
		return overtime.Record{}, err
	}

	now := s.clock.Now().UTC()
	date, err := workday.SessionDate(req.Date, now, s.location)
	if err != nil {
		return overtime.Record{}, err
	}

	var record overtime.Record
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

		record, err = s.overtimeRepo.Create(ctx, overtime.Record{
			ID:         uuid.Must(uuid.NewV7()).String(),
			EmployeeID: req.EmployeeID,
			WorkDayID:  day.ID,
			Date:       day.Date,
			State:      worktime.StateOpen,
			StartedAt:  now,
			Hours:      decimal.Zero,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
		return err
	})
	if err != nil {
		return overtime.Record{}, err
	}

	slog.Info("overtime started", "employee_id", record.EmployeeID, "overtime_id", record.ID)
	return record, nil
}

// End implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) End(ctx context.Context, req overtime.SessionRequest) (overtime.Record, error) {
	if err := req.Validate(); err != nil {
		return overtime.Record{}, err
	}

	now := s.clock.Now().UTC()
	date, err := workday.SessionDate(req.Date, now, s.location)
	if err != nil {
		return overtime.Record{}, err
	}

	var record overtime.Record
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
			return err
		}

		day, err := s.workDayRepo.GetByDate(ctx, date)
		if err != nil {
			if errors.Is(err, workday.ErrWorkDayNotFound) {
				return overtime.ErrNoOpenOvertime
			}
			return err
		}

		current, err := s.overtimeRepo.GetOpenForUpdate(ctx, req.EmployeeID, day.ID)
		if err != nil {
			return err
		}

		current.Close(now, s.location)
		record, err = s.overtimeRepo.Close(ctx, current)
		return err
	})
	if err != nil {
		return overtime.Record{}, err
	}

	s.events.Publish(sse.Event{
		Topic: sse.TopicAdmin,
		Event: "overtime.closed",
		Data:  overtime.NewRecordResponse(record),
	})
	return record, nil
}

// AttachProof implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) AttachProof(ctx context.Context, id string, req overtime.ProofRequest) (overtime.Record, error) {
	if err := req.Normalize(); err != nil {
		return overtime.Record{}, err
	}

	var record overtime.Record
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		current, err := s.overtimeRepo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if current.IsOpen() {
			return overtime.ErrOvertimeStillOpen
		}
		if current.HasProof() {
			return overtime.ErrProofAlreadyAttached
		}

		record, err = s.overtimeRepo.AttachProof(ctx, id, req.Text, req.Evidence)
		return err
	})
	if err != nil {
		return overtime.Record{}, err
	}

	return record, nil
}

// List implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) List(ctx context.Context, req overtime.ListOvertimeRequest) ([]overtime.Record, error) {
	filter, err := req.ToFilter()
	if err != nil {
		return nil, err
	}
	return s.overtimeRepo.List(ctx, filter)
}
