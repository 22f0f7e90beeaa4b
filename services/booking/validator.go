package booking

import (
	"strings"
	"time"

	"github.com/martinbaumann-sky/BaumannCo/models"
	"github.com/martinbaumann-sky/BaumannCo/utils"
)

const (
	eventSummary      = "Reunión estratégica | Baumann & Co."
	descriptionHeader = "Agenda estratégica con Baumann & Co."
)

// Validate checks the booking request's required fields and assembles the
// calendar event payload. It does not look at busy windows; the live
// collision re-check happens in the service just before the insert.
func Validate(req models.BookingRequest, loc *time.Location) (models.CalendarEvent, error) {
	if req.Start == "" || req.End == "" || req.Name == "" || req.Email == "" {
		return models.CalendarEvent{}, utils.NewValidationError("missing required field")
	}

	start, err := time.Parse(time.RFC3339, req.Start)
	if err != nil {
		return models.CalendarEvent{}, utils.NewValidationError("unparseable start time %q", req.Start)
	}
	end, err := time.Parse(time.RFC3339, req.End)
	if err != nil {
		return models.CalendarEvent{}, utils.NewValidationError("unparseable end time %q", req.End)
	}
	start, end = start.In(loc), end.In(loc)
	if !start.Before(end) {
		return models.CalendarEvent{}, utils.NewValidationError("start must be before end")
	}

	parts := []string{descriptionHeader, "Participante: " + req.Name}
	if notes := strings.TrimSpace(req.Notes); notes != "" {
		parts = append(parts, notes)
	}

	return models.CalendarEvent{
		Summary:             eventSummary,
		Description:         strings.Join(parts, "\n"),
		Start:               start,
		End:                 end,
		AttendeeName:        req.Name,
		AttendeeEmail:       req.Email,
		UseDefaultReminders: true,
	}, nil
}
