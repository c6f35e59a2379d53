package overtime

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workledger/workledger-backend-go/internal/pkg/worktime"
)

func TestRecordClose(t *testing.T) {
	start := time.Date(2025, time.March, 3, 18, 0, 0, 0, time.UTC)

	r := Record{State: worktime.StateOpen, StartedAt: start}
	r.Close(start.Add(90*time.Minute), time.UTC)
	assert.True(t, r.Hours.Equal(decimal.RequireFromString("1.5")), r.Hours.String())

	r = Record{State: worktime.StateOpen, StartedAt: start}
	r.Close(start.Add(-time.Hour), time.UTC)
	require.NotNil(t, r.EndedAt)
	assert.Equal(t, start, *r.EndedAt)
	assert.True(t, r.Hours.IsZero())
}
