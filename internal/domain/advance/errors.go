package advance

import "errors"

var (
	ErrAdvanceNotFound = errors.New("advance request not found")
	ErrAlreadyAccepted = errors.New("advance request has already been accepted")
	ErrInvalidAmount   = errors.New("advance amount must be a positive sum with at most 2 decimal places")
)
