package memory

import (
	"context"
	"sort"
	"time"

	"github.com/workledger/workledger-backend-go/internal/domain/workday"
)

type workDayRepository struct {
	store *Store
}

func NewWorkDayRepository(store *Store) workday.WorkDayRepository {
	return &workDayRepository{store: store}
}

func (r *workDayRepository) findByDate(day workday.WorkDay) (workday.WorkDay, bool) {
	for _, d := range r.store.data.workDays {
		if d.Date.Equal(day.Date) {
			return d, true
		}
	}
	return workday.WorkDay{}, false
}

func (r *workDayRepository) Create(ctx context.Context, day workday.WorkDay) (workday.WorkDay, error) {
	defer r.store.acquire(ctx)()

	if _, exists := r.findByDate(day); exists {
		return workday.WorkDay{}, workday.ErrWorkDayExists
	}
	r.store.data.workDays[day.ID] = day
	return day, nil
}

func (r *workDayRepository) CreateMany(ctx context.Context, days []workday.WorkDay) (int, error) {
	defer r.store.acquire(ctx)()

	created := 0
	for _, day := range days {
		if _, exists := r.findByDate(day); exists {
			continue
		}
		r.store.data.workDays[day.ID] = day
		created++
	}
	return created, nil
}

func (r *workDayRepository) GetByID(ctx context.Context, id string) (workday.WorkDay, error) {
	defer r.store.acquire(ctx)()

	d, ok := r.store.data.workDays[id]
	if !ok {
		return workday.WorkDay{}, workday.ErrWorkDayNotFound
	}
	return d, nil
}

func (r *workDayRepository) GetByDate(ctx context.Context, date time.Time) (workday.WorkDay, error) {
	defer r.store.acquire(ctx)()

	d, ok := r.findByDate(workday.WorkDay{Date: date})
	if !ok {
		return workday.WorkDay{}, workday.ErrWorkDayNotFound
	}
	return d, nil
}

func (r *workDayRepository) GetByIDs(ctx context.Context, ids []string) ([]workday.WorkDay, error) {
	defer r.store.acquire(ctx)()

	out := make([]workday.WorkDay, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if d, ok := r.store.data.workDays[id]; ok {
			out = append(out, d)
		}
	}
	sortWorkDays(out)
	return out, nil
}

func (r *workDayRepository) List(ctx context.Context, filter workday.WorkDayFilter) ([]workday.WorkDay, error) {
	defer r.store.acquire(ctx)()

	out := make([]workday.WorkDay, 0, len(r.store.data.workDays))
	for _, d := range r.store.data.workDays {
		if filter.From != nil && d.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && d.Date.After(*filter.To) {
			continue
		}
		out = append(out, d)
	}
	sortWorkDays(out)
	return out, nil
}

func (r *workDayRepository) Delete(ctx context.Context, id string) error {
	defer r.store.acquire(ctx)()

	data := r.store.data
	if _, ok := data.workDays[id]; !ok {
		return workday.ErrWorkDayNotFound
	}

	delete(data.workDays, id)
	for k, v := range data.attendance {
		if v.WorkDayID == id {
			delete(data.attendance, k)
		}
	}
	for k, v := range data.overtime {
		if v.WorkDayID == id {
			delete(data.overtime, k)
		}
	}
	return nil
}

func sortWorkDays(days []workday.WorkDay) {
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})
}
