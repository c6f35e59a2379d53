package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/workledger/workledger-backend-go/internal/domain/workday"
	"github.com/workledger/workledger-backend-go/internal/handler/http/response"
	"github.com/workledger/workledger-backend-go/internal/pkg/clock"
	"github.com/workledger/workledger-backend-go/internal/pkg/worktime"
)

type WorkDayHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Generate(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type workDayHandlerImpl struct {
	workDayService workday.WorkDayService
	clock          clock.Clock
	location       *time.Location
}

func NewWorkDayHandler(workDayService workday.WorkDayService, clk clock.Clock, location *time.Location) WorkDayHandler {
	return &workDayHandlerImpl{
		workDayService: workDayService,
		clock:          clk,
		location:       location,
	}
}

func (h *workDayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req workday.CreateWorkDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	day, err := h.workDayService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Work day created", workday.NewWorkDayResponse(day))
}

func (h *workDayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	days, err := h.workDayService.List(r.Context(), workday.ListWorkDayRequest{
		From: query.Get("from"),
		To:   query.Get("to"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, workday.NewWorkDayResponses(days))
}

func (h *workDayHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	today := worktime.DateOf(h.clock.Now(), h.location)

	result, err := h.workDayService.Generate(r.Context(), today)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work days generated", result)
}

func (h *workDayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, workday.ErrWorkDayNotFound)
	if !ok {
		return
	}

	if err := h.workDayService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work day deleted", nil)
}
