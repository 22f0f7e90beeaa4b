package config

import "testing"

func validConfig() Config {
	return Config{
		GoogleClientID:      "client-id",
		GoogleClientSecret:  "client-secret",
		GoogleTimezone:      "America/Santiago",
		BusinessSlots:       "09:00,11:00,14:00,16:00",
		SlotDurationMinutes: 45,
		SlotLookaheadDays:   12,
	}
}

func TestScheduleFromConfig(t *testing.T) {
	AppConfig = validConfig()

	schedule, err := Schedule()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if schedule.Location.String() != "America/Santiago" {
		t.Errorf("location: got %s", schedule.Location)
	}
	if len(schedule.Templates) != 4 {
		t.Errorf("templates: got %d", len(schedule.Templates))
	}
	if schedule.Templates[0].Label != "09:00" {
		t.Errorf("first template: got %s", schedule.Templates[0].Label)
	}
	if schedule.DurationMinutes != 45 || schedule.LookaheadDays != 12 {
		t.Errorf("policy: got %d min, %d days", schedule.DurationMinutes, schedule.LookaheadDays)
	}
}

func TestValidateRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "missing client id", mutate: func(c *Config) { c.GoogleClientID = "" }},
		{name: "missing client secret", mutate: func(c *Config) { c.GoogleClientSecret = "" }},
		{name: "unknown timezone", mutate: func(c *Config) { c.GoogleTimezone = "Marte/Olympus" }},
		{name: "malformed slot template", mutate: func(c *Config) { c.BusinessSlots = "09:00,siesta" }},
		{name: "hour out of range", mutate: func(c *Config) { c.BusinessSlots = "25:00" }},
		{name: "zero duration", mutate: func(c *Config) { c.SlotDurationMinutes = 0 }},
		{name: "zero lookahead", mutate: func(c *Config) { c.SlotLookaheadDays = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			AppConfig = cfg
			if err := Validate(); err == nil {
				t.Fatal("expected configuration error, got none")
			}
		})
	}
}
