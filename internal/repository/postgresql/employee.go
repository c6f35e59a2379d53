package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/workledger/workledger-backend-go/internal/domain/employee"
	"github.com/workledger/workledger-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, chat_id, full_name, phone, hourly_rate, balance, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	var rate decimal.NullDecimal
	err := row.Scan(
		&emp.ID, &emp.ChatID, &emp.FullName, &emp.Phone,
		&rate, &emp.Balance, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	if rate.Valid {
		emp.HourlyRate = &rate.Decimal
	}
	return emp, nil
}

func (e *employeeRepositoryImpl) getOne(ctx context.Context, query string, args ...interface{}) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	emp, err := scanEmployee(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (id, chat_id, full_name, phone, hourly_rate, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		newEmployee.ID, newEmployee.ChatID, newEmployee.FullName, newEmployee.Phone,
		newEmployee.HourlyRate, newEmployee.Balance, newEmployee.CreatedAt, newEmployee.UpdatedAt,
	))
	if err != nil {
		if uniqueViolationOn(err, "employees_phone_key") {
			return employee.Employee{}, employee.ErrPhoneExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return e.getOne(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id)
}

// GetByIDForUpdate implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByIDForUpdate(ctx context.Context, id string) (employee.Employee, error) {
	return e.getOne(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1 FOR UPDATE`, id)
}

// GetByPhone implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByPhone(ctx context.Context, phone string) (employee.Employee, error) {
	return e.getOne(ctx, `SELECT `+employeeColumns+` FROM employees WHERE phone = $1`, phone)
}

// GetByChatID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByChatID(ctx context.Context, chatID string) (employee.Employee, error) {
	return e.getOne(ctx, `SELECT `+employeeColumns+` FROM employees WHERE chat_id = $1`, chatID)
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees`
	args := []interface{}{}
	if filter.Search != "" {
		query += ` WHERE full_name ILIKE $1 OR phone LIKE $1`
		args = append(args, "%"+filter.Search+"%")
	}
	query += ` ORDER BY full_name, id`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// SetChatID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) SetChatID(ctx context.Context, id string, chatID string) (employee.Employee, error) {
	emp, err := e.getOne(ctx, `
		UPDATE employees SET chat_id = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING `+employeeColumns, id, chatID)
	if err != nil && uniqueViolationOn(err, "employees_chat_id_key") {
		return employee.Employee{}, employee.ErrChatAlreadyLinked
	}
	return emp, err
}

// UpdateRate implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) UpdateRate(ctx context.Context, id string, rate *decimal.Decimal) (employee.Employee, error) {
	return e.getOne(ctx, `
		UPDATE employees SET hourly_rate = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING `+employeeColumns, id, rate)
}

// AdjustBalance implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) AdjustBalance(ctx context.Context, id string, delta decimal.Decimal) (decimal.Decimal, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees SET balance = balance + $2, updated_at = NOW()
		WHERE id = $1
		RETURNING balance
	`

	var balance decimal.Decimal
	if err := q.QueryRow(ctx, query, id, delta).Scan(&balance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, employee.ErrEmployeeNotFound
		}
		return decimal.Zero, fmt.Errorf("failed to adjust balance for employee %s: %w", id, err)
	}

	return balance, nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
