package models

import "errors"

// Domain errors surfaced by the services and mapped to HTTP status codes by
// the handlers. Store-level failures outside this set propagate wrapped.
var (
	ErrEventNotFound      = errors.New("event not found")
	ErrAttendeeNotFound   = errors.New("attendee not found")
	ErrEventFull          = errors.New("event is full")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrNoAttendeesMatched = errors.New("no valid attendees found")
	ErrInvalidTimeRange   = errors.New("end_time must be after start_time")
	ErrInvalidStatus      = errors.New("invalid event status")
)
