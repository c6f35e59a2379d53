package workday

import "errors"

var (
	ErrWorkDayNotFound = errors.New("work day not found")
	ErrWorkDayExists   = errors.New("work day already exists for this date")
	ErrNotAWorkDay     = errors.New("date is not a registered work day")
	ErrNotToday        = errors.New("sessions can only be recorded for today")
)
