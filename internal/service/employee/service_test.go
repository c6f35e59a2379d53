package employee

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workledger/workledger-backend-go/internal/domain/employee"
	"github.com/workledger/workledger-backend-go/internal/pkg/clock"
	"github.com/workledger/workledger-backend-go/internal/repository/memory"
)

func newEmployeeService() employee.EmployeeService {
	clk := clock.NewFixed(time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC))
	store := memory.NewStore(clk)
	return NewEmployeeService(store, memory.NewEmployeeRepository(store), clk)
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()
	svc := newEmployeeService()

	emp, err := svc.Create(ctx, employee.CreateEmployeeRequest{FullName: " Aida Bekova ", Phone: "+996 (507) 31-03-10"})
	require.NoError(t, err)
	assert.Equal(t, "Aida Bekova", emp.FullName)
	assert.Equal(t, "+996507310310", emp.Phone)
	assert.True(t, emp.Balance.IsZero())
	assert.Nil(t, emp.HourlyRate)
	assert.False(t, emp.IsLinked())

	_, err = svc.Create(ctx, employee.CreateEmployeeRequest{FullName: "Someone Else", Phone: "996507310310"})
	assert.ErrorIs(t, err, employee.ErrPhoneExists)

	_, err = svc.Create(ctx, employee.CreateEmployeeRequest{FullName: "No Digits", Phone: "+()"})
	assert.ErrorIs(t, err, employee.ErrInvalidPhoneNumber)

	_, err = svc.Create(ctx, employee.CreateEmployeeRequest{Phone: "+996507000000"})
	assert.Error(t, err)
}

func TestEmployeeService_SetRate(t *testing.T) {
	ctx := context.Background()
	svc := newEmployeeService()

	emp, err := svc.Create(ctx, employee.CreateEmployeeRequest{FullName: "Timur", Phone: "+996555000111"})
	require.NoError(t, err)

	rate := decimal.NewFromInt(180)
	updated, err := svc.SetRate(ctx, emp.ID, employee.UpdateRateRequest{HourlyRate: &rate})
	require.NoError(t, err)
	require.NotNil(t, updated.HourlyRate)
	assert.True(t, updated.HourlyRate.Equal(rate))

	cleared, err := svc.SetRate(ctx, emp.ID, employee.UpdateRateRequest{})
	require.NoError(t, err)
	assert.Nil(t, cleared.HourlyRate)

	negative := decimal.NewFromInt(-10)
	_, err = svc.SetRate(ctx, emp.ID, employee.UpdateRateRequest{HourlyRate: &negative})
	assert.ErrorIs(t, err, employee.ErrInvalidRate)
}

func TestEmployeeService_LinkChat(t *testing.T) {
	ctx := context.Background()
	svc := newEmployeeService()

	emp, err := svc.Create(ctx, employee.CreateEmployeeRequest{FullName: "Aida", Phone: "+996507310310"})
	require.NoError(t, err)
	other, err := svc.Create(ctx, employee.CreateEmployeeRequest{FullName: "Bakyt", Phone: "+996507310311"})
	require.NoError(t, err)

	linked, err := svc.LinkChat(ctx, employee.LinkChatRequest{Phone: "996 507 310 310", ChatID: "chat-1"})
	require.NoError(t, err)
	assert.Equal(t, emp.ID, linked.ID)
	require.NotNil(t, linked.ChatID)
	assert.Equal(t, "chat-1", *linked.ChatID)

	// relinking the same chat is a no-op
	again, err := svc.LinkChat(ctx, employee.LinkChatRequest{Phone: "+996507310310", ChatID: "chat-1"})
	require.NoError(t, err)
	assert.Equal(t, emp.ID, again.ID)

	_, err = svc.LinkChat(ctx, employee.LinkChatRequest{Phone: "+996507310310", ChatID: "chat-2"})
	assert.ErrorIs(t, err, employee.ErrChatAlreadyLinked)

	_, err = svc.LinkChat(ctx, employee.LinkChatRequest{Phone: "+996507310311", ChatID: "chat-1"})
	assert.ErrorIs(t, err, employee.ErrChatAlreadyLinked)

	_, err = svc.LinkChat(ctx, employee.LinkChatRequest{Phone: "+996000000000", ChatID: "chat-3"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	found, err := svc.GetByChatID(ctx, "chat-1")
	require.NoError(t, err)
	assert.Equal(t, emp.ID, found.ID)

	unlinked, err := svc.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.False(t, unlinked.IsLinked())
}

func TestEmployeeService_ConcurrentLinkChat(t *testing.T) {
	ctx := context.Background()
	svc := newEmployeeService()

	_, err := svc.Create(ctx, employee.CreateEmployeeRequest{FullName: "Aida", Phone: "+996507310310"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for _, chat := range []string{"chat-a", "chat-b", "chat-c", "chat-d"} {
		wg.Add(1)
		go func(chat string) {
			defer wg.Done()
			if _, err := svc.LinkChat(ctx, employee.LinkChatRequest{Phone: "+996507310310", ChatID: chat}); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}(chat)
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
}

func TestEmployeeService_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	svc := newEmployeeService()

	a, err := svc.Create(ctx, employee.CreateEmployeeRequest{FullName: "Bakyt", Phone: "+996700000001"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, employee.CreateEmployeeRequest{FullName: "Aida", Phone: "+996700000002"})
	require.NoError(t, err)

	all, err := svc.List(ctx, employee.EmployeeFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Aida", all[0].FullName)

	found, err := svc.List(ctx, employee.EmployeeFilter{Search: "bak"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, a.ID, found[0].ID)

	require.NoError(t, svc.Delete(ctx, a.ID))
	_, err = svc.Get(ctx, a.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, a.ID), employee.ErrEmployeeNotFound)
}
