package overtime

import "errors"

var (
	ErrOvertimeAlreadyOpen  = errors.New("an overtime session is already open for this work day")
	ErrNoOpenOvertime       = errors.New("no open overtime session for this work day")
	ErrOvertimeNotFound     = errors.New("overtime record not found")
	ErrOvertimeStillOpen    = errors.New("overtime session has not ended yet")
	ErrProofAlreadyAttached = errors.New("proof is already attached to this overtime session")
	ErrEmptyProof           = errors.New("proof must contain text or evidence")
)
