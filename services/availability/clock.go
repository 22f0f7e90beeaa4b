package availability

import "time"

// Clock supplies the current instant in the calendar's configured zone. All
// slot arithmetic happens in that zone; naive and zoned instants are never
// mixed.
type Clock interface {
	Now() time.Time
}

// ZoneClock is the real clock, pinned to one location.
type ZoneClock struct {
	Loc *time.Location
}

func (c ZoneClock) Now() time.Time {
	return time.Now().In(c.Loc)
}

// StartOfDay truncates an instant to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
