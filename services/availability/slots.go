package availability

import (
	"time"

	"github.com/martinbaumann-sky/BaumannCo/models"
)

// GenerateDays walks forward from now's start of day and collects the next
// count weekdays. The lookahead counts business days, not calendar days, so
// intervening weekends extend the walk.
func GenerateDays(now time.Time, count int) []time.Time {
	days := make([]time.Time, 0, count)
	cursor := StartOfDay(now)
	for len(days) < count {
		if wd := cursor.Weekday(); wd != time.Saturday && wd != time.Sunday {
			days = append(days, cursor)
		}
		cursor = cursor.AddDate(0, 0, 1)
	}
	return days
}

// GenerateSlotsForDay expands the slot templates onto one business day and
// filters out slots that already started or collide with a busy window. The
// cutoff is strict: a slot starting at the exact current instant is kept.
// Template order is preserved; the output is never re-sorted.
func GenerateSlotsForDay(day time.Time, templates []models.SlotTemplate, durationMinutes int, now time.Time, busy []models.BusyWindow) []models.Slot {
	slots := make([]models.Slot, 0, len(templates))
	for _, tpl := range templates {
		start := time.Date(day.Year(), day.Month(), day.Day(), tpl.Hour, tpl.Minute, 0, 0, day.Location())
		end := start.Add(time.Duration(durationMinutes) * time.Minute)
		if start.Before(now) {
			continue
		}
		if Overlaps(start, end, busy) {
			continue
		}
		slots = append(slots, models.Slot{
			Start:     start,
			End:       end,
			TimeLabel: tpl.Label,
		})
	}
	return slots
}
