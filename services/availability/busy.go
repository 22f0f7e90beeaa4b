package availability

import (
	"time"

	"github.com/martinbaumann-sky/BaumannCo/models"
	"github.com/martinbaumann-sky/BaumannCo/utils"
)

// ParseBusyWindows converts the raw intervals reported by the external
// calendar into zone-qualified busy windows. Any malformed entry fails the
// whole conversion: silently ignoring busy data risks double-booking, so the
// caller aborts rather than degrading to "no known conflicts".
func ParseBusyWindows(raw []models.RawBusyInterval, loc *time.Location) ([]models.BusyWindow, error) {
	windows := make([]models.BusyWindow, 0, len(raw))
	for _, entry := range raw {
		if entry.Start == "" || entry.End == "" {
			return nil, utils.NewValidationError("busy interval missing start or end")
		}
		start, err := parseStamp(entry.Start, loc)
		if err != nil {
			return nil, utils.NewValidationError("unparseable busy interval start %q", entry.Start)
		}
		end, err := parseStamp(entry.End, loc)
		if err != nil {
			return nil, utils.NewValidationError("unparseable busy interval end %q", entry.End)
		}
		if !start.Before(end) {
			return nil, utils.NewValidationError("busy interval start %q is not before end %q", entry.Start, entry.End)
		}
		windows = append(windows, models.BusyWindow{Start: start, End: end})
	}
	return windows, nil
}

// parseStamp accepts zoned RFC 3339 timestamps and, as a fallback, naive
// ones interpreted in the calendar's zone.
func parseStamp(raw string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.In(loc), nil
	}
	return time.ParseInLocation("2006-01-02T15:04:05", raw, loc)
}

// Overlaps reports whether the half-open slot [slotStart, slotEnd) collides
// with any busy window. Touching boundaries do not count: a slot ending
// exactly when a window starts, or starting exactly when one ends, is free.
func Overlaps(slotStart, slotEnd time.Time, windows []models.BusyWindow) bool {
	for _, w := range windows {
		if slotStart.Before(w.End) && slotEnd.After(w.Start) {
			return true
		}
	}
	return false
}
