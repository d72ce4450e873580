package models

import "time"

// Event statuses. The completion sweep only ever moves an event from
// StatusScheduled to StatusCompleted; clients may set either value directly
// but nothing else.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
)

// ValidStatus reports whether s is a known event status.
func ValidStatus(s string) bool {
	return s == StatusScheduled || s == StatusCompleted
}

// Event is a scheduled activity with a capacity limit attendees register
// against. IDs are assigned by the database.
type Event struct {
	ID           int64     `json:"event_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Location     string    `json:"location"`
	MaxAttendees int       `json:"max_attendees"`
	Status       string    `json:"status"`
}

// EventCreateRequest is the POST /events payload.
// Timestamps are RFC3339 strings; status defaults to "scheduled".
type EventCreateRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Location     string `json:"location"`
	MaxAttendees int    `json:"max_attendees"`
	Status       string `json:"status,omitempty"`
}

// EventUpdateRequest is the PUT /events payload. Every field is optional;
// absent fields keep their stored values (partial update semantics).
type EventUpdateRequest struct {
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	StartTime    *string `json:"start_time,omitempty"`
	EndTime      *string `json:"end_time,omitempty"`
	Location     *string `json:"location,omitempty"`
	MaxAttendees *int    `json:"max_attendees,omitempty"`
	Status       *string `json:"status,omitempty"`
}
