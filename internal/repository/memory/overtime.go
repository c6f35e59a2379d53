package memory

import (
	"context"
	"sort"

	"github.com/workledger/workledger-backend-go/internal/domain/overtime"
	"github.com/workledger/workledger-backend-go/internal/domain/workday"
	"github.com/workledger/workledger-backend-go/internal/pkg/worktime"
)

type overtimeRepository struct {
	store *Store
}

func NewOvertimeRepository(store *Store) overtime.OvertimeRepository {
	return &overtimeRepository{store: store}
}

func (r *overtimeRepository) Create(ctx context.Context, record overtime.Record) (overtime.Record, error) {
	defer r.store.acquire(ctx)()

	day, ok := r.store.data.workDays[record.WorkDayID]
	if !ok {
		return overtime.Record{}, workday.ErrWorkDayNotFound
	}
	if record.IsOpen() {
		if _, found := r.findOpen(record.EmployeeID, record.WorkDayID); found {
			return overtime.Record{}, overtime.ErrOvertimeAlreadyOpen
		}
	}

	record.Date = day.Date
	r.store.data.overtime[record.ID] = record
	return record, nil
}

func (r *overtimeRepository) findOpen(employeeID, workDayID string) (overtime.Record, bool) {
	for _, record := range r.store.data.overtime {
		if record.EmployeeID == employeeID && record.WorkDayID == workDayID && record.IsOpen() {
			return record, true
		}
	}
	return overtime.Record{}, false
}

func (r *overtimeRepository) GetByID(ctx context.Context, id string) (overtime.Record, error) {
	defer r.store.acquire(ctx)()

	record, ok := r.store.data.overtime[id]
	if !ok {
		return overtime.Record{}, overtime.ErrOvertimeNotFound
	}
	return record, nil
}

func (r *overtimeRepository) GetByIDForUpdate(ctx context.Context, id string) (overtime.Record, error) {
	return r.GetByID(ctx, id)
}

func (r *overtimeRepository) GetOpenForUpdate(ctx context.Context, employeeID, workDayID string) (overtime.Record, error) {
	defer r.store.acquire(ctx)()

	record, ok := r.findOpen(employeeID, workDayID)
	if !ok {
		return overtime.Record{}, overtime.ErrNoOpenOvertime
	}
	return record, nil
}

func (r *overtimeRepository) Close(ctx context.Context, record overtime.Record) (overtime.Record, error) {
	defer r.store.acquire(ctx)()

	current, ok := r.store.data.overtime[record.ID]
	if !ok {
		return overtime.Record{}, overtime.ErrOvertimeNotFound
	}
	if !current.IsOpen() {
		return overtime.Record{}, overtime.ErrNoOpenOvertime
	}

	current.State = worktime.StateClosed
	current.EndedAt = record.EndedAt
	current.Hours = record.Hours
	current.UpdatedAt = r.store.clock.Now()
	r.store.data.overtime[record.ID] = current
	return current, nil
}

func (r *overtimeRepository) AttachProof(ctx context.Context, id string, text, evidence *string) (overtime.Record, error) {
	defer r.store.acquire(ctx)()

	record, ok := r.store.data.overtime[id]
	if !ok {
		return overtime.Record{}, overtime.ErrOvertimeNotFound
	}
	if record.HasProof() {
		return overtime.Record{}, overtime.ErrProofAlreadyAttached
	}

	record.ProofText = text
	record.ProofEvidence = evidence
	record.UpdatedAt = r.store.clock.Now()
	r.store.data.overtime[id] = record
	return record, nil
}

func (r *overtimeRepository) MarkPaid(ctx context.Context, id string) (bool, error) {
	defer r.store.acquire(ctx)()

	record, ok := r.store.data.overtime[id]
	if !ok {
		return false, overtime.ErrOvertimeNotFound
	}
	if record.Paid {
		return false, nil
	}

	record.Paid = true
	record.UpdatedAt = r.store.clock.Now()
	r.store.data.overtime[id] = record
	return true, nil
}

func (r *overtimeRepository) List(ctx context.Context, filter overtime.Filter) ([]overtime.Record, error) {
	defer r.store.acquire(ctx)()

	out := make([]overtime.Record, 0)
	for _, record := range r.store.data.overtime {
		if matchOvertime(record, filter) {
			out = append(out, record)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		if !out[i].StartedAt.Equal(out[j].StartedAt) {
			return out[i].StartedAt.Before(out[j].StartedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func matchOvertime(record overtime.Record, f overtime.Filter) bool {
	if len(f.EmployeeIDs) > 0 && !contains(f.EmployeeIDs, record.EmployeeID) {
		return false
	}
	if len(f.WorkDayIDs) > 0 && !contains(f.WorkDayIDs, record.WorkDayID) {
		return false
	}
	if f.From != nil && record.Date.Before(*f.From) {
		return false
	}
	if f.To != nil && record.Date.After(*f.To) {
		return false
	}
	if f.State != nil && record.State != *f.State {
		return false
	}
	if f.Paid != nil && record.Paid != *f.Paid {
		return false
	}
	return true
}
