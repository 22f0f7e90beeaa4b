package models

import "time"

// BookingRequest is the payload submitted by the web client to book a slot.
type BookingRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Notes string `json:"notes,omitempty"`
}

// CalendarEvent is the provider-agnostic event produced from a validated
// booking request. The gcal layer translates it to the wire format.
type CalendarEvent struct {
	Summary             string
	Description         string
	Start               time.Time
	End                 time.Time
	AttendeeName        string
	AttendeeEmail       string
	UseDefaultReminders bool
}

// BookingResponse is returned on a successful booking.
type BookingResponse struct {
	Success  bool   `json:"success"`
	HTMLLink string `json:"htmlLink"`
	Message  string `json:"message"`
}
