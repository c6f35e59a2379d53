package employee

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/workledger/workledger-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FullName   string           `json:"full_name"`
	Phone      string           `json:"phone"`
	HourlyRate *decimal.Decimal `json:"hourly_rate,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs.Add("full_name", "full_name is required")
	}
	if validator.IsEmpty(r.Phone) {
		errs.Add("phone", "phone is required")
	}
	if r.HourlyRate != nil && r.HourlyRate.IsNegative() {
		errs.Add("hourly_rate", "hourly_rate must not be negative")
	}

	return errs.Err()
}

type UpdateRateRequest struct {
	HourlyRate *decimal.Decimal `json:"hourly_rate"`
}

func (r *UpdateRateRequest) Validate() error {
	if r.HourlyRate != nil && r.HourlyRate.IsNegative() {
		return ErrInvalidRate
	}
	return nil
}

type LinkChatRequest struct {
	Phone  string `json:"phone"`
	ChatID string `json:"chat_id"`
}

func (r *LinkChatRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Phone) {
		errs.Add("phone", "phone is required")
	}
	if validator.IsEmpty(r.ChatID) {
		errs.Add("chat_id", "chat_id is required")
	}

	return errs.Err()
}

type EmployeeResponse struct {
	ID         string           `json:"id"`
	ChatID     *string          `json:"chat_id"`
	FullName   string           `json:"full_name"`
	Phone      string           `json:"phone"`
	HourlyRate *decimal.Decimal `json:"hourly_rate"`
	Balance    decimal.Decimal  `json:"balance"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		ChatID:     e.ChatID,
		FullName:   e.FullName,
		Phone:      e.Phone,
		HourlyRate: e.HourlyRate,
		Balance:    e.Balance,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func NewEmployeeResponses(list []Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, NewEmployeeResponse(e))
	}
	return out
}
