package leads

import "errors"

var (
	// ErrInvalidName is returned when the name is empty
	ErrInvalidName = errors.New("name is required")

	// ErrMissingContact is returned when the phone is empty
	ErrMissingContact = errors.New("phone is required")

	// ErrMissingMessage is returned when the message is empty
	ErrMissingMessage = errors.New("message is required")

	// ErrLeadNotFound is returned when a lead is not found
	ErrLeadNotFound = errors.New("lead not found")
)
