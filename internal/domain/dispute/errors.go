package dispute

import "errors"

var (
	ErrDisputeNotFound = errors.New("dispute not found")
	ErrAlreadyResolved = errors.New("dispute has already been resolved")
)
