package payroll

import "errors"

var (
	ErrRecordNotFound = errors.New("payable record not found")
	ErrRecordOpen     = errors.New("session is still open and cannot be paid")
	ErrAlreadyPaid    = errors.New("record has already been paid")
	ErrInvalidRate    = errors.New("hourly rate must not be negative")
	ErrInvalidKind    = errors.New("record kind must be attendance or overtime")
)

// IsSkippable reports whether a bulk operation should count err as skipped
// instead of aborting.
func IsSkippable(err error) bool {
	return errors.Is(err, ErrRecordNotFound) ||
		errors.Is(err, ErrRecordOpen) ||
		errors.Is(err, ErrAlreadyPaid)
}
