package attendance

import "errors"

var (
	ErrAlreadyCheckedIn   = errors.New("already checked in for this work day")
	ErrAlreadyCheckedOut  = errors.New("already checked out for this work day")
	ErrNoOpenSession      = errors.New("no attendance session for this work day")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
