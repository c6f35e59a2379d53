package advance

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/workledger/workledger-backend-go/internal/domain/advance"
	"github.com/workledger/workledger-backend-go/internal/pkg/clock"
	"github.com/workledger/workledger-backend-go/internal/pkg/sse"
)

type AdvanceServiceImpl struct {
	advanceRepo advance.AdvanceRepository
	clock       clock.Clock
	events      sse.Publisher
}

func NewAdvanceService(advanceRepo advance.AdvanceRepository, clk clock.Clock, events sse.Publisher) advance.AdvanceService {
	if events == nil {
		events = sse.NopPublisher()
	}
	return &AdvanceServiceImpl{
		advanceRepo: advanceRepo,
		clock:       clk,
		events:      events,
	}
}

// Create implements advance.AdvanceService.
func (s *AdvanceServiceImpl) Create(ctx context.Context, req advance.CreateAdvanceRequest) (advance.AdvanceRequest, error) {
	if err := req.Validate(); err != nil {
		return advance.AdvanceRequest{}, err
	}
	if !advance.ValidAmount(req.Amount) {
		return advance.AdvanceRequest{}, advance.ErrInvalidAmount
	}

	created, err := s.advanceRepo.Create(ctx, advance.AdvanceRequest{
		ID:         uuid.Must(uuid.NewV7()).String(),
		EmployeeID: req.EmployeeID,
		Amount:     req.Amount,
		Reason:     strings.TrimSpace(req.Reason),
		CreatedAt:  s.clock.Now().UTC(),
	})
	if err != nil {
		return advance.AdvanceRequest{}, err
	}

	slog.Info("advance requested", "advance_id", created.ID, "employee_id", created.EmployeeID, "amount", created.Amount.String())
	s.events.Publish(sse.Event{
		Topic: sse.TopicAdmin,
		Event: "advance.created",
		Data:  advance.NewAdvanceResponse(created),
	})
	return created, nil
}

// Get implements advance.AdvanceService.
func (s *AdvanceServiceImpl) Get(ctx context.Context, id string) (advance.AdvanceRequest, error) {
	return s.advanceRepo.GetByID(ctx, id)
}

// List implements advance.AdvanceService.
func (s *AdvanceServiceImpl) List(ctx context.Context, req advance.ListAdvanceRequest) ([]advance.AdvanceRequest, error) {
	filter, err := req.ToFilter()
	if err != nil {
		return nil, err
	}
	return s.advanceRepo.List(ctx, filter)
}
