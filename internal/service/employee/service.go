package employee

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/workledger/workledger-backend-go/internal/domain/employee"
	"github.com/workledger/workledger-backend-go/internal/pkg/clock"
	"github.com/workledger/workledger-backend-go/internal/pkg/database"
	"github.com/workledger/workledger-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	tx           database.Transactor
	employeeRepo employee.EmployeeRepository
	clock        clock.Clock
}

func NewEmployeeService(tx database.Transactor, employeeRepo employee.EmployeeRepository, clk clock.Clock) employee.EmployeeService {
	return &EmployeeServiceImpl{
		tx:           tx,
		employeeRepo: employeeRepo,
		clock:        clk,
	}
}

func normalizePhone(raw string) (string, error) {
	phone, ok := validator.NormalizePhone(raw)
	if !ok {
		return "", employee.ErrInvalidPhoneNumber
	}
	return phone, nil
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	phone, err := normalizePhone(req.Phone)
	if err != nil {
		return employee.Employee{}, err
	}

	now := s.clock.Now().UTC()
	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		ID:         uuid.Must(uuid.NewV7()).String(),
		FullName:   strings.TrimSpace(req.FullName),
		Phone:      phone,
		HourlyRate: req.HourlyRate,
		Balance:    decimal.Zero,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return employee.Employee{}, err
	}

	return created, nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.Employee, error) {
	return s.employeeRepo.GetByID(ctx, id)
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	return s.employeeRepo.List(ctx, filter)
}

// SetRate implements employee.EmployeeService.
func (s *EmployeeServiceImpl) SetRate(ctx context.Context, id string, req employee.UpdateRateRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}
	return s.employeeRepo.UpdateRate(ctx, id, req.HourlyRate)
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}

// LinkChat implements employee.EmployeeService.
func (s *EmployeeServiceImpl) LinkChat(ctx context.Context, req employee.LinkChatRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	phone, err := normalizePhone(req.Phone)
	if err != nil {
		return employee.Employee{}, err
	}
	chatID := strings.TrimSpace(req.ChatID)

	var linked employee.Employee
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		found, err := s.employeeRepo.GetByPhone(ctx, phone)
		if err != nil {
			return err
		}

		emp, err := s.employeeRepo.GetByIDForUpdate(ctx, found.ID)
		if err != nil {
			return err
		}

		if emp.IsLinked() {
			if *emp.ChatID != chatID {
				return employee.ErrChatAlreadyLinked
			}
			linked = emp
			return nil
		}

		linked, err = s.employeeRepo.SetChatID(ctx, emp.ID, chatID)
		return err
	})
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) || errors.Is(err, employee.ErrChatAlreadyLinked) {
			return employee.Employee{}, err
		}
		return employee.Employee{}, fmt.Errorf("failed to link chat: %w", err)
	}

	return linked, nil
}

// GetByChatID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByChatID(ctx context.Context, chatID string) (employee.Employee, error) {
	return s.employeeRepo.GetByChatID(ctx, chatID)
}
