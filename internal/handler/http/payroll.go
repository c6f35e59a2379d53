package http

import (
	"encoding/json"
	"net/http"

	"github.com/workledger/workledger-backend-go/internal/domain/employee"
	"github.com/workledger/workledger-backend-go/internal/domain/payroll"
	"github.com/workledger/workledger-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	// Settings
	GetRate(w http.ResponseWriter, r *http.Request)
	SetRate(w http.ResponseWriter, r *http.Request)

	// Ledger
	PayAttendance(w http.ResponseWriter, r *http.Request)
	PayOvertime(w http.ResponseWriter, r *http.Request)
	BulkPay(w http.ResponseWriter, r *http.Request)
	Statement(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// ========== SETTINGS ==========

func (h *payrollHandlerImpl) GetRate(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.payrollService.GetRate(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payroll.NewRateResponse(cfg))
}

func (h *payrollHandlerImpl) SetRate(w http.ResponseWriter, r *http.Request) {
	var req payroll.SetRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	cfg, err := h.payrollService.SetRate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Hourly rate updated", payroll.NewRateResponse(cfg))
}

// ========== LEDGER ==========

func (h *payrollHandlerImpl) PayAttendance(w http.ResponseWriter, r *http.Request) {
	h.pay(w, r, payroll.KindAttendance)
}

func (h *payrollHandlerImpl) PayOvertime(w http.ResponseWriter, r *http.Request) {
	h.pay(w, r, payroll.KindOvertime)
}

func (h *payrollHandlerImpl) pay(w http.ResponseWriter, r *http.Request, kind payroll.RecordKind) {
	id, ok := idParam(w, r, payroll.ErrRecordNotFound)
	if !ok {
		return
	}

	entry, err := h.payrollService.MarkPaid(r.Context(), kind, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Record paid", entry)
}

func (h *payrollHandlerImpl) BulkPay(w http.ResponseWriter, r *http.Request) {
	var req payroll.BulkPayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.BulkMarkPaid(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) Statement(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, employee.ErrEmployeeNotFound)
	if !ok {
		return
	}

	st, err := h.payrollService.Statement(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, st)
}
