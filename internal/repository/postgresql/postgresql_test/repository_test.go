package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workledger/workledger-backend-go/internal/domain/attendance"
	"github.com/workledger/workledger-backend-go/internal/domain/employee"
	"github.com/workledger/workledger-backend-go/internal/domain/workday"
	"github.com/workledger/workledger-backend-go/internal/pkg/worktime"
	"github.com/workledger/workledger-backend-go/internal/repository/postgresql"
)

var testDay = time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)

func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

func createEmployee(t *testing.T, repo employee.EmployeeRepository, phone string) employee.Employee {
	t.Helper()
	emp, err := repo.Create(context.Background(), employee.Employee{
		ID:       newID(),
		FullName: "Aida Bekova",
		Phone:    phone,
		Balance:  decimal.Zero,
	})
	require.NoError(t, err)
	return emp
}

func TestEmployeeRepository(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(setup.DB)

	emp := createEmployee(t, repo, "+996507310310")

	_, err := repo.Create(ctx, employee.Employee{ID: newID(), FullName: "Copy", Phone: "+996507310310", Balance: decimal.Zero})
	assert.ErrorIs(t, err, employee.ErrPhoneExists)

	got, err := repo.GetByPhone(ctx, "+996507310310")
	require.NoError(t, err)
	assert.Equal(t, emp.ID, got.ID)

	balance, err := repo.AdjustBalance(ctx, emp.ID, decimal.NewFromInt(250))
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(250)))

	balance, err = repo.AdjustBalance(ctx, emp.ID, decimal.NewFromInt(-400))
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(-150)))

	_, err = repo.GetByID(ctx, newID())
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	require.NoError(t, repo.Delete(ctx, emp.ID))
	assert.ErrorIs(t, repo.Delete(ctx, emp.ID), employee.ErrEmployeeNotFound)
}

func TestAttendanceRepository(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	employeeRepo := postgresql.NewEmployeeRepository(setup.DB)
	workDayRepo := postgresql.NewWorkDayRepository(setup.DB)
	repo := postgresql.NewAttendanceRepository(setup.DB)

	emp := createEmployee(t, employeeRepo, "+996700000001")
	day, err := workDayRepo.Create(ctx, workday.WorkDay{ID: newID(), Date: testDay})
	require.NoError(t, err)

	record := attendance.Record{
		ID:         newID(),
		EmployeeID: emp.ID,
		WorkDayID:  day.ID,
		Date:       testDay,
		State:      worktime.StateOpen,
		CheckIn:    testDay.Add(9 * time.Hour),
		Hours:      decimal.Zero,
	}
	created, err := repo.Create(ctx, record)
	require.NoError(t, err)

	record.ID = newID()
	_, err = repo.Create(ctx, record)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)

	created.Close(testDay.Add(13*time.Hour+30*time.Minute), time.UTC)
	closed, err := repo.Close(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, worktime.StateClosed, closed.State)
	assert.True(t, closed.Hours.Equal(decimal.RequireFromString("4.5")), closed.Hours.String())

	ok, err := repo.MarkPaid(ctx, closed.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.MarkPaid(ctx, closed.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	paid := true
	records, err := repo.List(ctx, attendance.Filter{EmployeeIDs: []string{emp.ID}, Paid: &paid})
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestTransactor_RollsBack(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	tx := postgresql.NewTransactor(setup.DB)
	rateRepo := postgresql.NewRateRepository(setup.DB)

	boom := errors.New("boom")
	err := tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := rateRepo.SetGlobalRate(ctx, decimal.NewFromInt(120)); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	cfg, err := rateRepo.GetGlobalRate(ctx)
	require.NoError(t, err)
	assert.True(t, cfg.HourlyRate.IsZero())

	err = tx.WithinTransaction(ctx, func(ctx context.Context) error {
		_, err := rateRepo.SetGlobalRate(ctx, decimal.NewFromInt(120))
		return err
	})
	require.NoError(t, err)

	cfg, err = rateRepo.GetGlobalRate(ctx)
	require.NoError(t, err)
	assert.True(t, cfg.HourlyRate.Equal(decimal.NewFromInt(120)))
}
