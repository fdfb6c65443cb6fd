package service

import "errors"

// Deterministic, caller-correctable failure conditions. Services wrap
// these with fmt.Errorf("%w: ...") to carry the detail the caller needs
// (capacity limit, conflicting booking, offending field); handlers match
// with errors.Is.
var (
	ErrVenueNotFound     = errors.New("venue not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrValidation        = errors.New("validation failed")
	ErrCapacityExceeded  = errors.New("attendees exceed venue capacity")
	ErrConflict          = errors.New("venue is already booked for the selected time slot")
	ErrForbidden         = errors.New("not authorized")
	ErrInvalidTransition = errors.New("status transition not allowed")
)
