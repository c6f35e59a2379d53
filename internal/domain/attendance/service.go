package attendance

import (
	"context"
)

// AttendanceService drives the daily check-in / check-out state machine.
type AttendanceService interface {
	CheckIn(ctx context.Context, req CheckInRequest) (Record, error)
	CheckOut(ctx context.Context, req CheckOutRequest) (Record, error)
	List(ctx context.Context, req ListAttendanceRequest) ([]Record, error)
	// CloseStale closes the open sessions of past work days at the cutoff.
	CloseStale(ctx context.Context) (int, error)
}
