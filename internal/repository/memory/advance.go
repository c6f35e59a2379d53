package memory

import (
	"context"
	"sort"
	"time"

	"github.com/workledger/workledger-backend-go/internal/domain/advance"
	"github.com/workledger/workledger-backend-go/internal/domain/employee"
)

type advanceRepository struct {
	store *Store
}

func NewAdvanceRepository(store *Store) advance.AdvanceRepository {
	return &advanceRepository{store: store}
}

func (r *advanceRepository) Create(ctx context.Context, req advance.AdvanceRequest) (advance.AdvanceRequest, error) {
	defer r.store.acquire(ctx)()

	if _, ok := r.store.data.employees[req.EmployeeID]; !ok {
		return advance.AdvanceRequest{}, employee.ErrEmployeeNotFound
	}
	r.store.data.advances[req.ID] = req
	return req, nil
}

func (r *advanceRepository) GetByID(ctx context.Context, id string) (advance.AdvanceRequest, error) {
	defer r.store.acquire(ctx)()

	req, ok := r.store.data.advances[id]
	if !ok {
		return advance.AdvanceRequest{}, advance.ErrAdvanceNotFound
	}
	return req, nil
}

func (r *advanceRepository) GetByIDForUpdate(ctx context.Context, id string) (advance.AdvanceRequest, error) {
	return r.GetByID(ctx, id)
}

func (r *advanceRepository) MarkAccepted(ctx context.Context, id string, at time.Time) (bool, error) {
	defer r.store.acquire(ctx)()

	req, ok := r.store.data.advances[id]
	if !ok {
		return false, advance.ErrAdvanceNotFound
	}
	if req.Accepted {
		return false, nil
	}

	req.Accepted = true
	req.AcceptedAt = &at
	r.store.data.advances[id] = req
	return true, nil
}

func (r *advanceRepository) List(ctx context.Context, filter advance.Filter) ([]advance.AdvanceRequest, error) {
	defer r.store.acquire(ctx)()

	out := make([]advance.AdvanceRequest, 0)
	for _, req := range r.store.data.advances {
		if len(filter.EmployeeIDs) > 0 && !contains(filter.EmployeeIDs, req.EmployeeID) {
			continue
		}
		if filter.Accepted != nil && req.Accepted != *filter.Accepted {
			continue
		}
		if filter.CreatedFrom != nil && req.CreatedAt.Before(*filter.CreatedFrom) {
			continue
		}
		if filter.CreatedTo != nil && !req.CreatedAt.Before(*filter.CreatedTo) {
			continue
		}
		out = append(out, req)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}
