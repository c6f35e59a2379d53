package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/workledger/workledger-backend-go/internal/domain/advance"
	"github.com/workledger/workledger-backend-go/internal/domain/attendance"
	"github.com/workledger/workledger-backend-go/internal/domain/dispute"
	"github.com/workledger/workledger-backend-go/internal/domain/employee"
	"github.com/workledger/workledger-backend-go/internal/domain/overtime"
	"github.com/workledger/workledger-backend-go/internal/domain/payroll"
	"github.com/workledger/workledger-backend-go/internal/domain/report"
	"github.com/workledger/workledger-backend-go/internal/domain/workday"
	"github.com/workledger/workledger-backend-go/internal/pkg/jwt"
	"github.com/workledger/workledger-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth errors
	case errors.Is(err, jwt.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, jwt.ErrAdminRequired), errors.Is(err, jwt.ErrGatewayAccess):
		Forbidden(w, err.Error())

	// Not found
	case errors.Is(err, employee.ErrEmployeeNotFound),
		errors.Is(err, workday.ErrWorkDayNotFound),
		errors.Is(err, attendance.ErrAttendanceNotFound),
		errors.Is(err, overtime.ErrOvertimeNotFound),
		errors.Is(err, payroll.ErrRecordNotFound),
		errors.Is(err, advance.ErrAdvanceNotFound),
		errors.Is(err, dispute.ErrDisputeNotFound):
		NotFound(w, err.Error())

	// Rejected input
	case errors.Is(err, workday.ErrNotAWorkDay),
		errors.Is(err, workday.ErrNotToday),
		errors.Is(err, advance.ErrInvalidAmount),
		errors.Is(err, payroll.ErrRecordOpen),
		errors.Is(err, payroll.ErrInvalidRate),
		errors.Is(err, payroll.ErrInvalidKind),
		errors.Is(err, overtime.ErrEmptyProof),
		errors.Is(err, employee.ErrInvalidRate),
		errors.Is(err, employee.ErrInvalidPhoneNumber),
		errors.Is(err, report.ErrNoWorkDaysSelected):
		BadRequest(w, err.Error(), nil)

	// State conflicts
	case errors.Is(err, attendance.ErrAlreadyCheckedIn),
		errors.Is(err, attendance.ErrAlreadyCheckedOut),
		errors.Is(err, attendance.ErrNoOpenSession),
		errors.Is(err, overtime.ErrOvertimeAlreadyOpen),
		errors.Is(err, overtime.ErrNoOpenOvertime),
		errors.Is(err, overtime.ErrOvertimeStillOpen),
		errors.Is(err, overtime.ErrProofAlreadyAttached),
		errors.Is(err, payroll.ErrAlreadyPaid),
		errors.Is(err, advance.ErrAlreadyAccepted),
		errors.Is(err, dispute.ErrAlreadyResolved),
		errors.Is(err, employee.ErrChatAlreadyLinked),
		errors.Is(err, employee.ErrPhoneExists),
		errors.Is(err, workday.ErrWorkDayExists):
		Conflict(w, err.Error())

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
