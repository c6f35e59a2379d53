package http

import (
	"encoding/json"
	"net/http"

	"github.com/workledger/workledger-backend-go/internal/domain/advance"
	"github.com/workledger/workledger-backend-go/internal/domain/payroll"
	"github.com/workledger/workledger-backend-go/internal/handler/http/response"
)

type AdvanceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Accept(w http.ResponseWriter, r *http.Request)
	BulkAccept(w http.ResponseWriter, r *http.Request)
}

type advanceHandlerImpl struct {
	advanceService advance.AdvanceService
	payrollService payroll.PayrollService
}

func NewAdvanceHandler(advanceService advance.AdvanceService, payrollService payroll.PayrollService) AdvanceHandler {
	return &advanceHandlerImpl{
		advanceService: advanceService,
		payrollService: payrollService,
	}
}

func (h *advanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req advance.CreateAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.advanceService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Advance requested", advance.NewAdvanceResponse(created))
}

func (h *advanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	list, err := h.advanceService.List(r.Context(), advance.ListAdvanceRequest{
		EmployeeID: query.Get("employee_id"),
		Status:     query.Get("status"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, advance.NewAdvanceResponses(list))
}

func (h *advanceHandlerImpl) Accept(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, advance.ErrAdvanceNotFound)
	if !ok {
		return
	}

	accepted, err := h.payrollService.AcceptAdvance(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Advance accepted", advance.NewAdvanceResponse(accepted))
}

func (h *advanceHandlerImpl) BulkAccept(w http.ResponseWriter, r *http.Request) {
	var req payroll.BulkAcceptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.BulkAcceptAdvances(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
