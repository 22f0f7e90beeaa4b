package gcal

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/martinbaumann-sky/BaumannCo/models"
	"github.com/martinbaumann-sky/BaumannCo/utils"
)

// Client talks to the Google Calendar API on behalf of the connected
// account. It is the system's only upstream dependency.
type Client struct {
	Conn       *Connector
	CalendarID string
	Loc        *time.Location
	Logger     *zap.Logger
}

func NewClient(conn *Connector, calendarID string, loc *time.Location, logger *zap.Logger) *Client {
	return &Client{Conn: conn, CalendarID: calendarID, Loc: loc, Logger: logger}
}

func (g *Client) service(ctx context.Context) (*calendar.Service, error) {
	ts, err := g.Conn.TokenSource(ctx)
	if err != nil {
		return nil, err
	}
	svc, err := calendar.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, &utils.UpstreamError{Op: "calendar client init", Err: err}
	}
	return svc, nil
}

// BusyWindows runs a freebusy query for the configured calendar over
// [from, to] and returns the raw busy intervals.
func (g *Client) BusyWindows(ctx context.Context, from, to time.Time) ([]models.RawBusyInterval, error) {
	svc, err := g.service(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := svc.Freebusy.Query(&calendar.FreeBusyRequest{
		TimeMin:  from.Format(time.RFC3339),
		TimeMax:  to.Format(time.RFC3339),
		TimeZone: g.Loc.String(),
		Items:    []*calendar.FreeBusyRequestItem{{Id: g.CalendarID}},
	}).Context(ctx).Do()
	if err != nil {
		return nil, &utils.UpstreamError{Op: "freebusy query", Err: err}
	}

	cal, ok := resp.Calendars[g.CalendarID]
	if !ok {
		cal, ok = resp.Calendars["primary"]
	}
	if !ok {
		return nil, nil
	}
	raw := make([]models.RawBusyInterval, 0, len(cal.Busy))
	for _, period := range cal.Busy {
		raw = append(raw, models.RawBusyInterval{Start: period.Start, End: period.End})
	}
	return raw, nil
}

// InsertEvent creates the booking event, notifying attendees, and returns
// the event's web link.
func (g *Client) InsertEvent(ctx context.Context, ev models.CalendarEvent) (string, error) {
	svc, err := g.service(ctx)
	if err != nil {
		return "", err
	}

	event := &calendar.Event{
		Summary:     ev.Summary,
		Description: ev.Description,
		Start: &calendar.EventDateTime{
			DateTime: ev.Start.Format(time.RFC3339),
			TimeZone: g.Loc.String(),
		},
		End: &calendar.EventDateTime{
			DateTime: ev.End.Format(time.RFC3339),
			TimeZone: g.Loc.String(),
		},
		Attendees: []*calendar.EventAttendee{
			{Email: ev.AttendeeEmail, DisplayName: ev.AttendeeName},
		},
		Reminders: &calendar.EventReminders{
			UseDefault:      ev.UseDefaultReminders,
			ForceSendFields: []string{"UseDefault"},
		},
	}

	result, err := svc.Events.Insert(g.CalendarID, event).
		SendUpdates("all").
		ConferenceDataVersion(0).
		Context(ctx).
		Do()
	if err != nil {
		return "", &utils.UpstreamError{Op: "event insert", Err: err}
	}

	g.Logger.Info("Calendar event created",
		zap.String("eventId", result.Id),
		zap.String("start", ev.Start.Format(time.RFC3339)),
	)
	return result.HtmlLink, nil
}
