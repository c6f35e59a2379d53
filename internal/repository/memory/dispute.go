package memory

import (
	"context"
	"sort"
	"time"

	"github.com/workledger/workledger-backend-go/internal/domain/dispute"
	"github.com/workledger/workledger-backend-go/internal/domain/employee"
)

type disputeRepository struct {
	store *Store
}

func NewDisputeRepository(store *Store) dispute.DisputeRepository {
	return &disputeRepository{store: store}
}

func (r *disputeRepository) Create(ctx context.Context, d dispute.Dispute) (dispute.Dispute, error) {
	defer r.store.acquire(ctx)()

	if _, ok := r.store.data.employees[d.EmployeeID]; !ok {
		return dispute.Dispute{}, employee.ErrEmployeeNotFound
	}
	r.store.data.disputes[d.ID] = d
	return d, nil
}

func (r *disputeRepository) GetByID(ctx context.Context, id string) (dispute.Dispute, error) {
	defer r.store.acquire(ctx)()

	d, ok := r.store.data.disputes[id]
	if !ok {
		return dispute.Dispute{}, dispute.ErrDisputeNotFound
	}
	return d, nil
}

func (r *disputeRepository) MarkResolved(ctx context.Context, id string, at time.Time) (bool, error) {
	defer r.store.acquire(ctx)()

	d, ok := r.store.data.disputes[id]
	if !ok {
		return false, dispute.ErrDisputeNotFound
	}
	if d.Resolved {
		return false, nil
	}

	d.Resolved = true
	d.ResolvedAt = &at
	r.store.data.disputes[id] = d
	return true, nil
}

func (r *disputeRepository) List(ctx context.Context, filter dispute.Filter) ([]dispute.Dispute, error) {
	defer r.store.acquire(ctx)()

	out := make([]dispute.Dispute, 0)
	for _, d := range r.store.data.disputes {
		if len(filter.EmployeeIDs) > 0 && !contains(filter.EmployeeIDs, d.EmployeeID) {
			continue
		}
		if filter.Resolved != nil && d.Resolved != *filter.Resolved {
			continue
		}
		out = append(out, d)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}
