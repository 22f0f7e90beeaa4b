package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/martinbaumann-sky/BaumannCo/models"
	"github.com/martinbaumann-sky/BaumannCo/utils"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type stubBusySource struct {
	raw   []models.RawBusyInterval
	err   error
	calls int
}

func (s *stubBusySource) BusyWindows(ctx context.Context, from, to time.Time) ([]models.RawBusyInterval, error) {
	s.calls++
	return s.raw, s.err
}

func newTestService(t *testing.T, now time.Time, source *stubBusySource) *DefaultService {
	t.Helper()
	templates, err := models.ParseSlotTemplates("09:00,11:00,14:00,16:00")
	if err != nil {
		t.Fatalf("failed to parse templates: %v", err)
	}
	return &DefaultService{
		Schedule: models.BusinessSchedule{
			Location:        now.Location(),
			Templates:       templates,
			DurationMinutes: 45,
			LookaheadDays:   3,
		},
		Clock:     fixedClock{now: now},
		Calendar:  source,
		Formatter: SpanishFormatter{},
		Logger:    zap.NewNop(),
	}
}

func TestGetAvailabilityHappyPath(t *testing.T) {
	loc := santiago(t)
	now := time.Date(2026, 9, 7, 8, 0, 0, 0, loc) // Monday 08:00
	svc := newTestService(t, now, &stubBusySource{})

	resp, err := svc.GetAvailability(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.TimeZone != "America/Santiago" {
		t.Errorf("timeZone: got %q", resp.TimeZone)
	}
	if resp.Meta.DurationMinutes != 45 {
		t.Errorf("durationMinutes: got %d", resp.Meta.DurationMinutes)
	}
	if len(resp.Days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(resp.Days))
	}
	if resp.Days[0].Date != "2026-09-07" {
		t.Errorf("first day: got %s", resp.Days[0].Date)
	}
	if resp.Days[0].Label != "lunes, sept 7" {
		t.Errorf("first day label: got %q", resp.Days[0].Label)
	}
	if len(resp.Days[0].Slots) != 4 {
		t.Fatalf("expected 4 slots on first day, got %d", len(resp.Days[0].Slots))
	}
	first := resp.Days[0].Slots[0]
	if first.TimeLabel != "09:00" {
		t.Errorf("first slot label: got %s", first.TimeLabel)
	}
	if first.Display != "lunes, sept 7, 09:00" {
		t.Errorf("first slot display: got %q", first.Display)
	}
}

func TestGetAvailabilityPrunesEmptyDays(t *testing.T) {
	loc := santiago(t)
	now := time.Date(2026, 9, 7, 8, 0, 0, 0, loc)
	// Monday is fully busy; it must vanish from the day list instead of
	// appearing with zero slots.
	source := &stubBusySource{raw: []models.RawBusyInterval{
		{Start: "2026-09-07T00:00:00", End: "2026-09-08T00:00:00"},
	}}
	svc := newTestService(t, now, source)

	resp, err := svc.GetAvailability(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Days) != 2 {
		t.Fatalf("expected 2 days after pruning, got %d", len(resp.Days))
	}
	for _, day := range resp.Days {
		if day.Date == "2026-09-07" {
			t.Error("fully busy day should have been pruned")
		}
		if len(day.Slots) == 0 {
			t.Errorf("day %s has an empty slot list", day.Date)
		}
	}
}

func TestGetAvailabilityAbortsOnMalformedBusyData(t *testing.T) {
	loc := santiago(t)
	now := time.Date(2026, 9, 7, 8, 0, 0, 0, loc)
	source := &stubBusySource{raw: []models.RawBusyInterval{
		{Start: "no-es-una-fecha", End: "2026-09-07T12:00:00"},
	}}
	svc := newTestService(t, now, source)

	_, err := svc.GetAvailability(context.Background())
	var validationErr *utils.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestGetAvailabilityPropagatesUpstreamErrors(t *testing.T) {
	loc := santiago(t)
	now := time.Date(2026, 9, 7, 8, 0, 0, 0, loc)

	t.Run("not authorized", func(t *testing.T) {
		source := &stubBusySource{err: utils.ErrNotAuthorized}
		svc := newTestService(t, now, source)
		_, err := svc.GetAvailability(context.Background())
		if !errors.Is(err, utils.ErrNotAuthorized) {
			t.Fatalf("expected ErrNotAuthorized, got %v", err)
		}
	})

	t.Run("upstream failure", func(t *testing.T) {
		source := &stubBusySource{err: &utils.UpstreamError{Op: "freebusy query", Err: errors.New("boom")}}
		svc := newTestService(t, now, source)
		_, err := svc.GetAvailability(context.Background())
		var upstreamErr *utils.UpstreamError
		if !errors.As(err, &upstreamErr) {
			t.Fatalf("expected UpstreamError, got %v", err)
		}
	})
}

func TestGetAvailabilityQueriesLookaheadRange(t *testing.T) {
	loc := santiago(t)
	now := time.Date(2026, 9, 7, 8, 0, 0, 0, loc)
	source := &stubBusySource{}
	svc := newTestService(t, now, source)

	if _, err := svc.GetAvailability(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source.calls != 1 {
		t.Fatalf("expected exactly one freebusy call, got %d", source.calls)
	}
}
