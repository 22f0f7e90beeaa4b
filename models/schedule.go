package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SlotTemplate is a fixed wall-clock start time repeated across every open
// business day.
type SlotTemplate struct {
	Hour   int
	Minute int
	Label  string // the operator-supplied "HH:MM" form, kept for display
}

// BusinessSchedule is the immutable booking policy, resolved once at startup.
type BusinessSchedule struct {
	Location        *time.Location
	Templates       []SlotTemplate
	DurationMinutes int
	LookaheadDays   int
}

// ParseSlotTemplate parses a single "HH:MM" entry with hour in [0,23] and
// minute in [0,59].
func ParseSlotTemplate(raw string) (SlotTemplate, error) {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	if len(parts) != 2 {
		return SlotTemplate{}, fmt.Errorf("invalid slot template %q: expected HH:MM", raw)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return SlotTemplate{}, fmt.Errorf("invalid slot template %q: hour out of range", raw)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return SlotTemplate{}, fmt.Errorf("invalid slot template %q: minute out of range", raw)
	}
	return SlotTemplate{
		Hour:   hour,
		Minute: minute,
		Label:  strings.TrimSpace(raw),
	}, nil
}

// ParseSlotTemplates parses a comma-separated template list, preserving the
// operator's ordering.
func ParseSlotTemplates(csv string) ([]SlotTemplate, error) {
	entries := strings.Split(csv, ",")
	templates := make([]SlotTemplate, 0, len(entries))
	for _, entry := range entries {
		tpl, err := ParseSlotTemplate(entry)
		if err != nil {
			return nil, err
		}
		templates = append(templates, tpl)
	}
	if len(templates) == 0 {
		return nil, fmt.Errorf("no slot templates configured")
	}
	return templates, nil
}
