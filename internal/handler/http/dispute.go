package http

import (
	"encoding/json"
	"net/http"

	"github.com/workledger/workledger-backend-go/internal/domain/dispute"
	"github.com/workledger/workledger-backend-go/internal/handler/http/response"
)

type DisputeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Resolve(w http.ResponseWriter, r *http.Request)
}

type disputeHandlerImpl struct {
	disputeService dispute.DisputeService
}

func NewDisputeHandler(disputeService dispute.DisputeService) DisputeHandler {
	return &disputeHandlerImpl{disputeService: disputeService}
}

func (h *disputeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req dispute.CreateDisputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.disputeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Dispute submitted", dispute.NewDisputeResponse(created))
}

func (h *disputeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	list, err := h.disputeService.List(r.Context(), dispute.ListDisputeRequest{
		EmployeeID: query.Get("employee_id"),
		Status:     query.Get("status"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, dispute.NewDisputeResponses(list))
}

func (h *disputeHandlerImpl) Resolve(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, dispute.ErrDisputeNotFound)
	if !ok {
		return
	}

	resolved, err := h.disputeService.Resolve(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Dispute resolved", dispute.NewDisputeResponse(resolved))
}
