package employee

import (
	"context"

	"github.com/shopspring/decimal"
)

type EmployeeRepository interface {
	// Create fails with ErrPhoneExists when the normalised phone is taken.
	Create(ctx context.Context, employee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	// GetByIDForUpdate locks the employee row until the surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, id string) (Employee, error)
	GetByPhone(ctx context.Context, phone string) (Employee, error)
	GetByChatID(ctx context.Context, chatID string) (Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, error)
	// SetChatID fails with ErrChatAlreadyLinked when chatID belongs to someone else.
	SetChatID(ctx context.Context, id string, chatID string) (Employee, error)
	UpdateRate(ctx context.Context, id string, rate *decimal.Decimal) (Employee, error)
	// AdjustBalance adds delta to the balance and returns the new balance.
	AdjustBalance(ctx context.Context, id string, delta decimal.Decimal) (decimal.Decimal, error)
	// Delete removes the employee together with all of its records.
	Delete(ctx context.Context, id string) error
}
