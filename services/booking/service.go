package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/martinbaumann-sky/BaumannCo/models"
	"github.com/martinbaumann-sky/BaumannCo/services/availability"
)

// CalendarWriter is the slice of the external calendar the booking flow
// needs: event creation plus the busy lookup used for the final collision
// re-check.
type CalendarWriter interface {
	InsertEvent(ctx context.Context, ev models.CalendarEvent) (string, error)
	BusyWindows(ctx context.Context, from, to time.Time) ([]models.RawBusyInterval, error)
}

// Service validates booking requests and forwards them to the external
// calendar, which is the system of record.
type Service interface {
	Book(ctx context.Context, req models.BookingRequest) (*models.BookingResponse, error)
}

// DefaultService is the concrete implementation.
type DefaultService struct {
	Calendar CalendarWriter
	Loc      *time.Location
	Logger   *zap.Logger
}

// Book validates the request, re-checks the interval against live busy
// windows and creates the event. The re-check closes most of the race
// between listing availability and booking; Google remains the final
// arbiter for anything that slips through between the check and the insert.
func (s *DefaultService) Book(ctx context.Context, req models.BookingRequest) (*models.BookingResponse, error) {
	ev, err := Validate(req, s.Loc)
	if err != nil {
		return nil, err
	}

	raw, err := s.Calendar.BusyWindows(ctx, ev.Start, ev.End)
	if err != nil {
		return nil, err
	}
	busy, err := availability.ParseBusyWindows(raw, s.Loc)
	if err != nil {
		return nil, err
	}
	if availability.Overlaps(ev.Start, ev.End, busy) {
		return nil, ErrSlotTaken
	}

	link, err := s.Calendar.InsertEvent(ctx, ev)
	if err != nil {
		return nil, err
	}

	s.Logger.Info("Booking confirmed",
		zap.String("email", ev.AttendeeEmail),
		zap.String("start", ev.Start.Format(time.RFC3339)),
	)
	return &models.BookingResponse{
		Success:  true,
		HTMLLink: link,
		Message:  "La reserva se creó y se envió la invitación por correo.",
	}, nil
}
