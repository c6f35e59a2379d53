package report

import "errors"

var (
	ErrNoWorkDaysSelected = errors.New("at least one work day must be selected")
)
