package advance

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workledger/workledger-backend-go/internal/domain/advance"
	"github.com/workledger/workledger-backend-go/internal/domain/employee"
	"github.com/workledger/workledger-backend-go/internal/pkg/clock"
	"github.com/workledger/workledger-backend-go/internal/pkg/sse"
	"github.com/workledger/workledger-backend-go/internal/repository/memory"
)

func TestAdvanceService_CreateAndList(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewFixed(time.Date(2025, time.March, 3, 12, 0, 0, 0, time.UTC))
	store := memory.NewStore(clk)
	employeeRepo := memory.NewEmployeeRepository(store)

	emp, err := employeeRepo.Create(ctx, employee.Employee{ID: uuid.Must(uuid.NewV7()).String(), FullName: "Nurlan", Phone: "+996700111222", Balance: decimal.Zero})
	require.NoError(t, err)

	hub := sse.NewHub()
	events, cleanup := hub.Subscribe(sse.TopicAdmin)
	defer cleanup()

	svc := NewAdvanceService(memory.NewAdvanceRepository(store), clk, hub)

	created, err := svc.Create(ctx, advance.CreateAdvanceRequest{EmployeeID: emp.ID, Amount: decimal.NewFromInt(500), Reason: "  rent "})
	require.NoError(t, err)
	assert.False(t, created.Accepted)
	assert.Equal(t, "rent", created.Reason)
	assert.Equal(t, clk.Now(), created.CreatedAt)

	select {
	case ev := <-events:
		assert.Equal(t, "advance.created", ev.Event)
	case <-time.After(time.Second):
		t.Fatal("expected advance.created event")
	}

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	pending, err := svc.List(ctx, advance.ListAdvanceRequest{Status: "pending"})
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	accepted, err := svc.List(ctx, advance.ListAdvanceRequest{EmployeeID: emp.ID, Status: "accepted"})
	require.NoError(t, err)
	assert.Empty(t, accepted)

	_, err = svc.List(ctx, advance.ListAdvanceRequest{Status: "rejected"})
	assert.Error(t, err)
}

func TestAdvanceService_CreateErrors(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(clock.System())
	svc := NewAdvanceService(memory.NewAdvanceRepository(store), clock.System(), nil)

	_, err := svc.Create(ctx, advance.CreateAdvanceRequest{EmployeeID: uuid.Must(uuid.NewV7()).String(), Amount: decimal.Zero})
	assert.ErrorIs(t, err, advance.ErrInvalidAmount)

	_, err = svc.Create(ctx, advance.CreateAdvanceRequest{EmployeeID: uuid.Must(uuid.NewV7()).String(), Amount: decimal.NewFromInt(-5)})
	assert.ErrorIs(t, err, advance.ErrInvalidAmount)

	for _, amount := range []string{"0.001", "100.005", "1000000000000"} {
		_, err = svc.Create(ctx, advance.CreateAdvanceRequest{EmployeeID: uuid.Must(uuid.NewV7()).String(), Amount: decimal.RequireFromString(amount)})
		assert.ErrorIs(t, err, advance.ErrInvalidAmount, amount)
	}

	_, err = svc.Create(ctx, advance.CreateAdvanceRequest{EmployeeID: uuid.Must(uuid.NewV7()).String(), Amount: decimal.NewFromInt(5)})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	_, err = svc.Create(ctx, advance.CreateAdvanceRequest{Amount: decimal.NewFromInt(5)})
	assert.Error(t, err)

	_, err = svc.Get(ctx, uuid.Must(uuid.NewV7()).String())
	assert.ErrorIs(t, err, advance.ErrAdvanceNotFound)
}
