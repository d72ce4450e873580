package models

// Attendee is a person registered to an Event. Email is unique across all
// attendees; the check-in flag defaults to false.
type Attendee struct {
	ID            int64  `json:"attendee_id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	PhoneNumber   string `json:"phone_number"`
	EventID       int64  `json:"event_id"`
	CheckInStatus bool   `json:"check_in_status"`
}

// AttendeeCreateRequest is the POST /attendees payload.
type AttendeeCreateRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

// CheckinRequest is the POST /register payload. The pointer distinguishes
// an absent field from an explicit false.
type CheckinRequest struct {
	CheckInStatus *bool `json:"check_in_status"`
}
