package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID         string
	ChatID     *string
	FullName   string
	Phone      string
	HourlyRate *decimal.Decimal
	Balance    decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsLinked reports whether the employee has been bound to a chat user.
func (e Employee) IsLinked() bool {
	return e.ChatID != nil && *e.ChatID != ""
}

type EmployeeFilter struct {
	Search string
}
