package availability

import (
	"fmt"
	"time"
)

// SlotFormatter renders the display labels attached to days and slots. The
// core slot logic stays locale-agnostic behind this interface.
type SlotFormatter interface {
	FormatDayLabel(day time.Time) string
	FormatSlotDisplay(start time.Time) string
}

// SpanishFormatter mirrors the es-CL rendering the web client expects,
// e.g. "lunes, sept 7" and "lunes, sept 7, 09:00".
type SpanishFormatter struct{}

var spanishWeekdays = [...]string{
	"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
}

var spanishMonths = [...]string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sept", "oct", "nov", "dic",
}

func (SpanishFormatter) FormatDayLabel(day time.Time) string {
	return fmt.Sprintf("%s, %s %d", spanishWeekdays[day.Weekday()], spanishMonths[day.Month()-1], day.Day())
}

func (f SpanishFormatter) FormatSlotDisplay(start time.Time) string {
	return fmt.Sprintf("%s, %02d:%02d", f.FormatDayLabel(start), start.Hour(), start.Minute())
}
