package availability

import (
	"testing"
	"time"
)

func TestSpanishFormatter(t *testing.T) {
	loc := santiago(t)
	f := SpanishFormatter{}

	day := time.Date(2026, 9, 7, 0, 0, 0, 0, loc) // a Monday
	if got, want := f.FormatDayLabel(day), "lunes, sept 7"; got != want {
		t.Errorf("FormatDayLabel: got %q, want %q", got, want)
	}

	start := time.Date(2026, 9, 7, 9, 0, 0, 0, loc)
	if got, want := f.FormatSlotDisplay(start), "lunes, sept 7, 09:00"; got != want {
		t.Errorf("FormatSlotDisplay: got %q, want %q", got, want)
	}

	// Single-digit minutes and a different month.
	start = time.Date(2026, 1, 30, 14, 5, 0, 0, loc) // a Friday
	if got, want := f.FormatSlotDisplay(start), "viernes, ene 30, 14:05"; got != want {
		t.Errorf("FormatSlotDisplay: got %q, want %q", got, want)
	}
}
