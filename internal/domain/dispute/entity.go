package dispute

import (
	"time"
)

// Dispute is an employee's complaint about their recorded hours or balance.
type Dispute struct {
	ID         string
	EmployeeID string
	Reason     string
	Resolved   bool
	ResolvedAt *time.Time
	CreatedAt  time.Time
}

type Status string

const (
	StatusOpen     Status = "open"
	StatusResolved Status = "resolved"
)

type Filter struct {
	EmployeeIDs []string
	Resolved    *bool
}
