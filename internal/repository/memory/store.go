// Package memory keeps every repository in process memory. It backs the
// development server (DB_DRIVER=memory) and the service tests.
package memory

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/workledger/workledger-backend-go/internal/domain/advance"
	"github.com/workledger/workledger-backend-go/internal/domain/attendance"
	"github.com/workledger/workledger-backend-go/internal/domain/dispute"
	"github.com/workledger/workledger-backend-go/internal/domain/employee"
	"github.com/workledger/workledger-backend-go/internal/domain/overtime"
	"github.com/workledger/workledger-backend-go/internal/domain/payroll"
	"github.com/workledger/workledger-backend-go/internal/domain/workday"
	"github.com/workledger/workledger-backend-go/internal/pkg/clock"
)

type dataset struct {
	employees  map[string]employee.Employee
	workDays   map[string]workday.WorkDay
	attendance map[string]attendance.Record
	overtime   map[string]overtime.Record
	advances   map[string]advance.AdvanceRequest
	disputes   map[string]dispute.Dispute
	rate       payroll.RateConfig
}

func newDataset() *dataset {
	return &dataset{
		employees:  make(map[string]employee.Employee),
		workDays:   make(map[string]workday.WorkDay),
		attendance: make(map[string]attendance.Record),
		overtime:   make(map[string]overtime.Record),
		advances:   make(map[string]advance.AdvanceRequest),
		disputes:   make(map[string]dispute.Dispute),
		rate:       payroll.RateConfig{HourlyRate: decimal.Zero},
	}
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// clone copies every table. Entity values are replaced, never mutated in
// place, so a shallow copy per map is enough.
func (d *dataset) clone() *dataset {
	return &dataset{
		employees:  cloneMap(d.employees),
		workDays:   cloneMap(d.workDays),
		attendance: cloneMap(d.attendance),
		overtime:   cloneMap(d.overtime),
		advances:   cloneMap(d.advances),
		disputes:   cloneMap(d.disputes),
		rate:       d.rate,
	}
}

// Store serialises all access behind one mutex. A transaction holds the
// mutex for its whole duration and restores a snapshot when it fails.
type Store struct {
	mu    sync.Mutex
	data  *dataset
	clock clock.Clock
}

type txKey struct{}

func NewStore(clk clock.Clock) *Store {
	if clk == nil {
		clk = clock.System()
	}
	return &Store{data: newDataset(), clock: clk}
}

// WithinTransaction implements database.Transactor.
func (s *Store) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if s.inTransaction(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.data.clone()
	defer func() {
		if p := recover(); p != nil {
			s.data = snapshot
			panic(p)
		}
		if err != nil {
			s.data = snapshot
		}
	}()

	return fn(context.WithValue(ctx, txKey{}, s))
}

func (s *Store) inTransaction(ctx context.Context) bool {
	owner, ok := ctx.Value(txKey{}).(*Store)
	return ok && owner == s
}

// acquire locks the store unless ctx already runs inside one of its transactions.
func (s *Store) acquire(ctx context.Context) func() {
	if s.inTransaction(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
