package workday

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workledger/workledger-backend-go/internal/domain/workday"
	"github.com/workledger/workledger-backend-go/internal/pkg/clock"
	"github.com/workledger/workledger-backend-go/internal/repository/memory"
)

func newWorkDayService() workday.WorkDayService {
	clk := clock.NewFixed(time.Date(2025, time.January, 10, 6, 0, 0, 0, time.UTC))
	store := memory.NewStore(clk)
	return NewWorkDayService(memory.NewWorkDayRepository(store), clk)
}

func TestWorkDayService_CreateAndResolve(t *testing.T) {
	ctx := context.Background()
	svc := newWorkDayService()

	day, err := svc.Create(ctx, workday.CreateWorkDayRequest{Date: "2025-03-03"})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC), day.Date)

	_, err = svc.Create(ctx, workday.CreateWorkDayRequest{Date: "2025-03-03"})
	assert.ErrorIs(t, err, workday.ErrWorkDayExists)

	_, err = svc.Create(ctx, workday.CreateWorkDayRequest{Date: "03/03/2025"})
	assert.Error(t, err)

	resolved, err := svc.Resolve(ctx, day.Date)
	require.NoError(t, err)
	assert.Equal(t, day.ID, resolved.ID)

	_, err = svc.Resolve(ctx, day.Date.AddDate(0, 0, 1))
	assert.ErrorIs(t, err, workday.ErrNotAWorkDay)

	require.NoError(t, svc.Delete(ctx, day.ID))
	assert.ErrorIs(t, svc.Delete(ctx, day.ID), workday.ErrWorkDayNotFound)
}

func TestWorkDayService_GenerateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newWorkDayService()
	today := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)

	first, err := svc.Generate(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, 35, first.Considered)
	assert.Equal(t, 35, first.Created)

	second, err := svc.Generate(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, 35, second.Considered)
	assert.Equal(t, 0, second.Created)

	days, err := svc.List(ctx, workday.ListWorkDayRequest{From: "2025-02-01", To: "2025-02-28"})
	require.NoError(t, err)
	assert.Len(t, days, 20)
	for _, d := range days {
		assert.NotEqual(t, time.Saturday, d.Date.Weekday())
		assert.NotEqual(t, time.Sunday, d.Date.Weekday())
	}
}
