package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workledger/workledger-backend-go/internal/domain/attendance"
	"github.com/workledger/workledger-backend-go/internal/domain/employee"
	"github.com/workledger/workledger-backend-go/internal/domain/payroll"
	"github.com/workledger/workledger-backend-go/internal/domain/workday"
	"github.com/workledger/workledger-backend-go/internal/pkg/jwt"
	"github.com/workledger/workledger-backend-go/internal/pkg/validator"
)

func TestHandleError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", validator.ValidationErrors{{Field: "employee_id", Message: "employee_id is required"}}, http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{"not found", employee.ErrEmployeeNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"wrapped not found", fmt.Errorf("lookup: %w", workday.ErrWorkDayNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"not a work day", workday.ErrNotAWorkDay, http.StatusBadRequest, "BAD_REQUEST"},
		{"not today", workday.ErrNotToday, http.StatusBadRequest, "BAD_REQUEST"},
		{"open record", payroll.ErrRecordOpen, http.StatusBadRequest, "BAD_REQUEST"},
		{"already checked in", attendance.ErrAlreadyCheckedIn, http.StatusConflict, "CONFLICT"},
		{"already paid", payroll.ErrAlreadyPaid, http.StatusConflict, "CONFLICT"},
		{"invalid token", jwt.ErrInvalidToken, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"admin only", jwt.ErrAdminRequired, http.StatusForbidden, "FORBIDDEN"},
		{"unknown", fmt.Errorf("connection reset"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, c.err)

			assert.Equal(t, c.status, rec.Code)

			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, c.code, body.Error.Code)
		})
	}
}

func TestHandleError_ValidationDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, validator.ValidationErrors{{Field: "date", Message: "date must be in YYYY-MM-DD format"}})

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, map[string]string{"date": "date must be in YYYY-MM-DD format"}, body.Error.Details)
}
