package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrPhoneExists        = errors.New("phone number already registered")
	ErrChatAlreadyLinked  = errors.New("employee is already linked to another chat account")
	ErrInvalidPhoneNumber = errors.New("phone number must contain digits")
	ErrInvalidRate        = errors.New("hourly rate must not be negative")
)
