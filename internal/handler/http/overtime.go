package http

import (
	"encoding/json"
	"net/http"

	"github.com/workledger/workledger-backend-go/internal/domain/overtime"
	"github.com/workledger/workledger-backend-go/internal/handler/http/response"
)

type OvertimeHandler interface {
	Start(w http.ResponseWriter, r *http.Request)
	End(w http.ResponseWriter, r *http.Request)
	AttachProof(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type overtimeHandlerImpl struct {
	overtimeService overtime.OvertimeService
}

func NewOvertimeHandler(overtimeService overtime.OvertimeService) OvertimeHandler {
	return &overtimeHandlerImpl{overtimeService: overtimeService}
}

func (h *overtimeHandlerImpl) Start(w http.ResponseWriter, r *http.Request) {
	var req overtime.SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	record, err := h.overtimeService.Start(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Overtime started", overtime.NewRecordResponse(record))
}

func (h *overtimeHandlerImpl) End(w http.ResponseWriter, r *http.Request) {
	var req overtime.SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	record, err := h.overtimeService.End(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime ended", overtime.NewRecordResponse(record))
}

func (h *overtimeHandlerImpl) AttachProof(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, overtime.ErrOvertimeNotFound)
	if !ok {
		return
	}

	var req overtime.ProofRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	record, err := h.overtimeService.AttachProof(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Proof attached", overtime.NewRecordResponse(record))
}

func (h *overtimeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	records, err := h.overtimeService.List(r.Context(), overtime.ListOvertimeRequest{
		EmployeeID: query.Get("employee_id"),
		From:       query.Get("from"),
		To:         query.Get("to"),
		State:      query.Get("state"),
		Paid:       query.Get("paid"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, overtime.NewRecordResponses(records))
}
