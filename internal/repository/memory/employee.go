package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/workledger/workledger-backend-go/internal/domain/employee"
)

type employeeRepository struct {
	store *Store
}

func NewEmployeeRepository(store *Store) employee.EmployeeRepository {
	return &employeeRepository{store: store}
}

func (r *employeeRepository) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	defer r.store.acquire(ctx)()

	for _, existing := range r.store.data.employees {
		if existing.Phone == e.Phone {
			return employee.Employee{}, employee.ErrPhoneExists
		}
	}
	r.store.data.employees[e.ID] = e
	return e, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	defer r.store.acquire(ctx)()

	e, ok := r.store.data.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

// GetByIDForUpdate relies on the store-wide transaction lock.
func (r *employeeRepository) GetByIDForUpdate(ctx context.Context, id string) (employee.Employee, error) {
	return r.GetByID(ctx, id)
}

func (r *employeeRepository) GetByPhone(ctx context.Context, phone string) (employee.Employee, error) {
	defer r.store.acquire(ctx)()

	for _, e := range r.store.data.employees {
		if e.Phone == phone {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *employeeRepository) GetByChatID(ctx context.Context, chatID string) (employee.Employee, error) {
	defer r.store.acquire(ctx)()

	for _, e := range r.store.data.employees {
		if e.ChatID != nil && *e.ChatID == chatID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *employeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	defer r.store.acquire(ctx)()

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]employee.Employee, 0, len(r.store.data.employees))
	for _, e := range r.store.data.employees {
		if search != "" &&
			!strings.Contains(strings.ToLower(e.FullName), search) &&
			!strings.Contains(e.Phone, search) {
			continue
		}
		out = append(out, e)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].FullName != out[j].FullName {
			return out[i].FullName < out[j].FullName
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *employeeRepository) SetChatID(ctx context.Context, id string, chatID string) (employee.Employee, error) {
	defer r.store.acquire(ctx)()

	e, ok := r.store.data.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	for otherID, other := range r.store.data.employees {
		if otherID != id && other.ChatID != nil && *other.ChatID == chatID {
			return employee.Employee{}, employee.ErrChatAlreadyLinked
		}
	}

	e.ChatID = &chatID
	e.UpdatedAt = r.store.clock.Now()
	r.store.data.employees[id] = e
	return e, nil
}

func (r *employeeRepository) UpdateRate(ctx context.Context, id string, rate *decimal.Decimal) (employee.Employee, error) {
	defer r.store.acquire(ctx)()

	e, ok := r.store.data.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}

	e.HourlyRate = rate
	e.UpdatedAt = r.store.clock.Now()
	r.store.data.employees[id] = e
	return e, nil
}

func (r *employeeRepository) AdjustBalance(ctx context.Context, id string, delta decimal.Decimal) (decimal.Decimal, error) {
	defer r.store.acquire(ctx)()

	e, ok := r.store.data.employees[id]
	if !ok {
		return decimal.Zero, employee.ErrEmployeeNotFound
	}

	e.Balance = e.Balance.Add(delta)
	e.UpdatedAt = r.store.clock.Now()
	r.store.data.employees[id] = e
	return e.Balance, nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	defer r.store.acquire(ctx)()

	data := r.store.data
	if _, ok := data.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}

	delete(data.employees, id)
	for k, v := range data.attendance {
		if v.EmployeeID == id {
			delete(data.attendance, k)
		}
	}
	for k, v := range data.overtime {
		if v.EmployeeID == id {
			delete(data.overtime, k)
		}
	}
	for k, v := range data.advances {
		if v.EmployeeID == id {
			delete(data.advances, k)
		}
	}
	for k, v := range data.disputes {
		if v.EmployeeID == id {
			delete(data.disputes, k)
		}
	}
	return nil
}
