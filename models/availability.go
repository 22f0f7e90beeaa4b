package models

import "time"

// RawBusyInterval is a busy period exactly as reported by the external
// calendar, timestamps still unparsed.
type RawBusyInterval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// BusyWindow is a zone-qualified interval during which booking is disallowed.
// Invariant: Start < End.
type BusyWindow struct {
	Start time.Time
	End   time.Time
}

// Slot is a single bookable interval. Slots exist only for the lifetime of
// one availability computation and are never persisted.
type Slot struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	TimeLabel string    `json:"timeLabel"`
	Display   string    `json:"display"`
}

// DayAvailability groups the open slots of one business day. Days whose slot
// list ends up empty are dropped from the response entirely.
type DayAvailability struct {
	Date  string `json:"date"`
	Label string `json:"label"`
	Slots []Slot `json:"slots"`
}

// AvailabilityMeta carries rendering hints for the client.
type AvailabilityMeta struct {
	DurationMinutes int `json:"durationMinutes"`
}

// AvailabilityResponse is the full availability payload.
type AvailabilityResponse struct {
	TimeZone string            `json:"timeZone"`
	Days     []DayAvailability `json:"days"`
	Meta     AvailabilityMeta  `json:"meta"`
}
