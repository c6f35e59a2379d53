package employee

import "context"

// EmployeeService manages the pre-provisioned employee registry.
type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error)
	Get(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, error)
	// SetRate sets or, with a nil rate, clears the hourly rate override.
	SetRate(ctx context.Context, id string, req UpdateRateRequest) (Employee, error)
	Delete(ctx context.Context, id string) error
	// LinkChat binds a chat user to the employee owning the given phone.
	LinkChat(ctx context.Context, req LinkChatRequest) (Employee, error)
	GetByChatID(ctx context.Context, chatID string) (Employee, error)
}
