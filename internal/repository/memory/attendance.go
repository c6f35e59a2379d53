package memory

import (
	"context"
	"sort"

	"github.com/workledger/workledger-backend-go/internal/domain/attendance"
	"github.com/workledger/workledger-backend-go/internal/domain/workday"
	"github.com/workledger/workledger-backend-go/internal/pkg/worktime"
)

type attendanceRepository struct {
	store *Store
}

func NewAttendanceRepository(store *Store) attendance.AttendanceRepository {
	return &attendanceRepository{store: store}
}

func (r *attendanceRepository) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	defer r.store.acquire(ctx)()

	day, ok := r.store.data.workDays[record.WorkDayID]
	if !ok {
		return attendance.Record{}, workday.ErrWorkDayNotFound
	}
	for _, existing := range r.store.data.attendance {
		if existing.EmployeeID == record.EmployeeID && existing.WorkDayID == record.WorkDayID {
			return attendance.Record{}, attendance.ErrAlreadyCheckedIn
		}
	}

	record.Date = day.Date
	r.store.data.attendance[record.ID] = record
	return record, nil
}

func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	defer r.store.acquire(ctx)()

	record, ok := r.store.data.attendance[id]
	if !ok {
		return attendance.Record{}, attendance.ErrAttendanceNotFound
	}
	return record, nil
}

func (r *attendanceRepository) GetByIDForUpdate(ctx context.Context, id string) (attendance.Record, error) {
	return r.GetByID(ctx, id)
}

func (r *attendanceRepository) GetByEmployeeAndDayForUpdate(ctx context.Context, employeeID, workDayID string) (attendance.Record, error) {
	defer r.store.acquire(ctx)()

	for _, record := range r.store.data.attendance {
		if record.EmployeeID == employeeID && record.WorkDayID == workDayID {
			return record, nil
		}
	}
	return attendance.Record{}, attendance.ErrAttendanceNotFound
}

func (r *attendanceRepository) Close(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	defer r.store.acquire(ctx)()

	current, ok := r.store.data.attendance[record.ID]
	if !ok {
		return attendance.Record{}, attendance.ErrAttendanceNotFound
	}
	if !current.IsOpen() {
		return attendance.Record{}, attendance.ErrAlreadyCheckedOut
	}

	current.State = worktime.StateClosed
	current.CheckOut = record.CheckOut
	current.Hours = record.Hours
	current.UpdatedAt = r.store.clock.Now()
	r.store.data.attendance[record.ID] = current
	return current, nil
}

func (r *attendanceRepository) MarkPaid(ctx context.Context, id string) (bool, error) {
	defer r.store.acquire(ctx)()

	record, ok := r.store.data.attendance[id]
	if !ok {
		return false, attendance.ErrAttendanceNotFound
	}
	if record.Paid {
		return false, nil
	}

	record.Paid = true
	record.UpdatedAt = r.store.clock.Now()
	r.store.data.attendance[id] = record
	return true, nil
}

func (r *attendanceRepository) List(ctx context.Context, filter attendance.Filter) ([]attendance.Record, error) {
	defer r.store.acquire(ctx)()

	out := make([]attendance.Record, 0)
	for _, record := range r.store.data.attendance {
		if matchAttendance(record, filter) {
			out = append(out, record)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		if !out[i].CheckIn.Equal(out[j].CheckIn) {
			return out[i].CheckIn.Before(out[j].CheckIn)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func matchAttendance(record attendance.Record, f attendance.Filter) bool {
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
	if f.Before != nil && !record.Date.Before(*f.Before) {
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
