package overtime

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workledger/workledger-backend-go/internal/domain/employee"
	"github.com/workledger/workledger-backend-go/internal/domain/overtime"
	"github.com/workledger/workledger-backend-go/internal/domain/workday"
	"github.com/workledger/workledger-backend-go/internal/pkg/clock"
	"github.com/workledger/workledger-backend-go/internal/pkg/sse"
	"github.com/workledger/workledger-backend-go/internal/pkg/worktime"
	"github.com/workledger/workledger-backend-go/internal/repository/memory"
)

var testDay = time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)

type overtimeFixture struct {
	clock      *clock.Fixed
	hub        *sse.Hub
	service    overtime.OvertimeService
	employeeID string
}

func newOvertimeFixture(t *testing.T) overtimeFixture {
	t.Helper()
	ctx := context.Background()

	clk := clock.NewFixed(testDay.Add(18 * time.Hour))
	store := memory.NewStore(clk)
	employeeRepo := memory.NewEmployeeRepository(store)
	workDayRepo := memory.NewWorkDayRepository(store)

	emp, err := employeeRepo.Create(ctx, employee.Employee{
		ID:       uuid.Must(uuid.NewV7()).String(),
		FullName: "Timur Asanov",
		Phone:    "+996555123456",
		Balance:  decimal.Zero,
	})
	require.NoError(t, err)
	_, err = workDayRepo.Create(ctx, workday.WorkDay{ID: uuid.Must(uuid.NewV7()).String(), Date: testDay})
	require.NoError(t, err)

	hub := sse.NewHub()
	svc := NewOvertimeService(store, memory.NewOvertimeRepository(store), employeeRepo, workDayRepo, time.UTC, clk, hub)
	return overtimeFixture{clock: clk, hub: hub, service: svc, employeeID: emp.ID}
}

func TestOvertimeService_StartEnd(t *testing.T) {
	ctx := context.Background()
	f := newOvertimeFixture(t)

	events, cleanup := f.hub.Subscribe(sse.TopicAdmin)
	defer cleanup()

	record, err := f.service.Start(ctx, overtime.SessionRequest{EmployeeID: f.employeeID})
	require.NoError(t, err)
	assert.Equal(t, worktime.StateOpen, record.State)
	assert.Equal(t, testDay, record.Date)

	// overtime is not capped by the attendance cutoff
	f.clock.Set(testDay.Add(20*time.Hour + 30*time.Minute))
	record, err = f.service.End(ctx, overtime.SessionRequest{EmployeeID: f.employeeID})
	require.NoError(t, err)
	assert.Equal(t, worktime.StateClosed, record.State)
	assert.True(t, record.Hours.Equal(decimal.RequireFromString("2.5")), record.Hours.String())

	select {
	case ev := <-events:
		assert.Equal(t, "overtime.closed", ev.Event)
		data, ok := ev.Data.(overtime.RecordResponse)
		require.True(t, ok)
		assert.Equal(t, record.ID, data.ID)
	case <-time.After(time.Second):
		t.Fatal("expected overtime.closed event")
	}
}

func TestOvertimeService_SingleOpenSession(t *testing.T) {
	ctx := context.Background()
	f := newOvertimeFixture(t)

	_, err := f.service.Start(ctx, overtime.SessionRequest{EmployeeID: f.employeeID})
	require.NoError(t, err)

	_, err = f.service.Start(ctx, overtime.SessionRequest{EmployeeID: f.employeeID})
	assert.ErrorIs(t, err, overtime.ErrOvertimeAlreadyOpen)

	f.clock.Advance(time.Hour)
	_, err = f.service.End(ctx, overtime.SessionRequest{EmployeeID: f.employeeID})
	require.NoError(t, err)

	// a new session may start once the previous one is closed
	_, err = f.service.Start(ctx, overtime.SessionRequest{EmployeeID: f.employeeID})
	require.NoError(t, err)

	sessions, err := f.service.List(ctx, overtime.ListOvertimeRequest{EmployeeID: f.employeeID})
	require.NoError(t, err)
	assert.Len(t, sessions, 2)
}

func TestOvertimeService_ConcurrentStart(t *testing.T) {
	ctx := context.Background()
	f := newOvertimeFixture(t)

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.service.Start(ctx, overtime.SessionRequest{EmployeeID: f.employeeID})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				succeeded++
			} else if errors.Is(err, overtime.ErrOvertimeAlreadyOpen) {
				rejected++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, rejected)
}

func TestOvertimeService_EndErrors(t *testing.T) {
	ctx := context.Background()
	f := newOvertimeFixture(t)

	_, err := f.service.End(ctx, overtime.SessionRequest{EmployeeID: f.employeeID})
	assert.ErrorIs(t, err, overtime.ErrNoOpenOvertime)

	_, err = f.service.End(ctx, overtime.SessionRequest{EmployeeID: f.employeeID, Date: "2025-03-09"})
	assert.ErrorIs(t, err, workday.ErrNotToday)

	_, err = f.service.Start(ctx, overtime.SessionRequest{EmployeeID: f.employeeID, Date: "2025-03-09"})
	assert.ErrorIs(t, err, workday.ErrNotToday)

	_, err = f.service.Start(ctx, overtime.SessionRequest{EmployeeID: f.employeeID, Date: "2025-03-03"})
	require.NoError(t, err)
	f.clock.Set(testDay.AddDate(0, 0, 1).Add(9 * time.Hour))
	_, err = f.service.End(ctx, overtime.SessionRequest{EmployeeID: f.employeeID, Date: "2025-03-03"})
	assert.ErrorIs(t, err, workday.ErrNotToday)

	// Sunday has no work day.
	f.clock.Set(testDay.AddDate(0, 0, 6).Add(9 * time.Hour))
	_, err = f.service.Start(ctx, overtime.SessionRequest{EmployeeID: f.employeeID})
	assert.ErrorIs(t, err, workday.ErrNotAWorkDay)

	_, err = f.service.Start(ctx, overtime.SessionRequest{})
	assert.Error(t, err)
}

func TestOvertimeService_AttachProof(t *testing.T) {
	ctx := context.Background()
	f := newOvertimeFixture(t)

	record, err := f.service.Start(ctx, overtime.SessionRequest{EmployeeID: f.employeeID})
	require.NoError(t, err)

	text := "Inventory count"
	_, err = f.service.AttachProof(ctx, record.ID, overtime.ProofRequest{Text: &text})
	assert.ErrorIs(t, err, overtime.ErrOvertimeStillOpen)

	f.clock.Advance(2 * time.Hour)
	_, err = f.service.End(ctx, overtime.SessionRequest{EmployeeID: f.employeeID})
	require.NoError(t, err)

	blank := "   "
	_, err = f.service.AttachProof(ctx, record.ID, overtime.ProofRequest{Text: &blank})
	assert.ErrorIs(t, err, overtime.ErrEmptyProof)

	proved, err := f.service.AttachProof(ctx, record.ID, overtime.ProofRequest{Text: &text, Evidence: &blank})
	require.NoError(t, err)
	require.NotNil(t, proved.ProofText)
	assert.Equal(t, text, *proved.ProofText)
	assert.Nil(t, proved.ProofEvidence)

	evidence := "photo-2.jpg"
	_, err = f.service.AttachProof(ctx, record.ID, overtime.ProofRequest{Evidence: &evidence})
	assert.ErrorIs(t, err, overtime.ErrProofAlreadyAttached)

	_, err = f.service.AttachProof(ctx, uuid.Must(uuid.NewV7()).String(), overtime.ProofRequest{Evidence: &evidence})
	assert.ErrorIs(t, err, overtime.ErrOvertimeNotFound)
}
