package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workledger/workledger-backend-go/internal/domain/dispute"
	"github.com/workledger/workledger-backend-go/internal/domain/employee"
	"github.com/workledger/workledger-backend-go/internal/domain/workday"
	"github.com/workledger/workledger-backend-go/internal/pkg/clock"
)

func TestStore_WithinTransactionRollsBack(t *testing.T) {
	ctx := context.Background()
	store := NewStore(clock.NewFixed(time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)))
	repo := NewEmployeeRepository(store)

	emp, err := repo.Create(ctx, employee.Employee{ID: "e1", FullName: "Aida", Phone: "+996700000001", Balance: decimal.Zero})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = store.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := repo.AdjustBalance(ctx, emp.ID, decimal.NewFromInt(500)); err != nil {
			return err
		}
		if _, err := repo.Create(ctx, employee.Employee{ID: "e2", FullName: "Bakyt", Phone: "+996700000002"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := repo.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.True(t, got.Balance.IsZero())

	_, err = repo.GetByID(ctx, "e2")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestStore_WithinTransactionRollsBackOnPanic(t *testing.T) {
	ctx := context.Background()
	store := NewStore(nil)
	repo := NewWorkDayRepository(store)

	assert.Panics(t, func() {
		_ = store.WithinTransaction(ctx, func(ctx context.Context) error {
			_, _ = repo.Create(ctx, workday.WorkDay{ID: "d1", Date: time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)})
			panic("unexpected")
		})
	})

	_, err := repo.GetByID(ctx, "d1")
	assert.ErrorIs(t, err, workday.ErrWorkDayNotFound)
}

func TestStore_NestedTransactionJoinsOuter(t *testing.T) {
	ctx := context.Background()
	store := NewStore(nil)
	repo := NewEmployeeRepository(store)

	err := store.WithinTransaction(ctx, func(ctx context.Context) error {
		return store.WithinTransaction(ctx, func(ctx context.Context) error {
			_, err := repo.Create(ctx, employee.Employee{ID: "e1", FullName: "Aida", Phone: "+996700000001"})
			return err
		})
	})
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, "e1")
	assert.NoError(t, err)
}

func TestEmployeeRepository_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	store := NewStore(nil)
	employees := NewEmployeeRepository(store)
	days := NewWorkDayRepository(store)

	_, err := employees.Create(ctx, employee.Employee{ID: "e1", FullName: "Aida", Phone: "+996700000001"})
	require.NoError(t, err)
	_, err = days.Create(ctx, workday.WorkDay{ID: "d1", Date: time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	_, err = NewDisputeRepository(store).Create(ctx, dispute.Dispute{ID: "x1", EmployeeID: "e1", Reason: "hours"})
	require.NoError(t, err)

	require.NoError(t, employees.Delete(ctx, "e1"))

	list, err := NewDisputeRepository(store).List(ctx, dispute.Filter{})
	require.NoError(t, err)
	assert.Empty(t, list)
}
