package dispute

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/workledger/workledger-backend-go/internal/domain/dispute"
	"github.com/workledger/workledger-backend-go/internal/pkg/clock"
	"github.com/workledger/workledger-backend-go/internal/pkg/sse"
)

type DisputeServiceImpl struct {
	disputeRepo dispute.DisputeRepository
	clock       clock.Clock
	events      sse.Publisher
}

func NewDisputeService(disputeRepo dispute.DisputeRepository, clk clock.Clock, events sse.Publisher) dispute.DisputeService {
	if events == nil {
		events = sse.NopPublisher()
	}
	return &DisputeServiceImpl{
		disputeRepo: disputeRepo,
		clock:       clk,
		events:      events,
	}
}

// Create implements dispute.DisputeService.
func (s *DisputeServiceImpl) Create(ctx context.Context, req dispute.CreateDisputeRequest) (dispute.Dispute, error) {
	if err := req.Validate(); err != nil {
		return dispute.Dispute{}, err
	}

	created, err := s.disputeRepo.Create(ctx, dispute.Dispute{
		ID:         uuid.Must(uuid.NewV7()).String(),
		EmployeeID: req.EmployeeID,
		Reason:     strings.TrimSpace(req.Reason),
		CreatedAt:  s.clock.Now().UTC(),
	})
	if err != nil {
		return dispute.Dispute{}, err
	}

	slog.Info("dispute opened", "dispute_id", created.ID, "employee_id", created.EmployeeID)
	s.events.Publish(sse.Event{
		Topic: sse.TopicAdmin,
		Event: "dispute.created",
		Data:  dispute.NewDisputeResponse(created),
	})
	return created, nil
}

// Resolve implements dispute.DisputeService.
func (s *DisputeServiceImpl) Resolve(ctx context.Context, id string) (dispute.Dispute, error) {
	now := s.clock.Now().UTC()

	ok, err := s.disputeRepo.MarkResolved(ctx, id, now)
	if err != nil {
		return dispute.Dispute{}, err
	}
	if !ok {
		return dispute.Dispute{}, dispute.ErrAlreadyResolved
	}

	return s.disputeRepo.GetByID(ctx, id)
}

// List implements dispute.DisputeService.
func (s *DisputeServiceImpl) List(ctx context.Context, req dispute.ListDisputeRequest) ([]dispute.Dispute, error) {
	filter, err := req.ToFilter()
	if err != nil {
		return nil, err
	}
	return s.disputeRepo.List(ctx, filter)
}
