package availability

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/martinbaumann-sky/BaumannCo/models"
)

// BusySource reports the externally-known busy intervals for a time range.
type BusySource interface {
	BusyWindows(ctx context.Context, from, to time.Time) ([]models.RawBusyInterval, error)
}

// Service defines methods for computing bookable availability.
type Service interface {
	GetAvailability(ctx context.Context) (*models.AvailabilityResponse, error)
}

// DefaultService is a concrete implementation backed by the external
// calendar. All entities it builds are fresh per call; the only shared state
// is the read-only schedule and the optional response cache.
type DefaultService struct {
	Schedule  models.BusinessSchedule
	Clock     Clock
	Calendar  BusySource
	Formatter SlotFormatter
	Cache     *redis.Client
	CacheTTL  time.Duration
	Logger    *zap.Logger
}

// GetAvailability queries busy windows for the lookahead range, expands the
// slot grid per business day and prunes past, colliding and empty entries.
// A malformed busy interval aborts the whole computation.
func (s *DefaultService) GetAvailability(ctx context.Context) (*models.AvailabilityResponse, error) {
	now := s.Clock.Now()

	cacheKey := "availability:" + now.Format("2006-01-02T15:04")
	if cached := s.cachedResponse(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	timeMin := StartOfDay(now)
	timeMax := EndOfDay(now.AddDate(0, 0, s.Schedule.LookaheadDays))
	raw, err := s.Calendar.BusyWindows(ctx, timeMin, timeMax)
	if err != nil {
		return nil, err
	}
	busy, err := ParseBusyWindows(raw, s.Schedule.Location)
	if err != nil {
		return nil, err
	}

	days := make([]models.DayAvailability, 0, s.Schedule.LookaheadDays)
	for _, day := range GenerateDays(now, s.Schedule.LookaheadDays) {
		slots := GenerateSlotsForDay(day, s.Schedule.Templates, s.Schedule.DurationMinutes, now, busy)
		if len(slots) == 0 {
			continue
		}
		for i := range slots {
			slots[i].Display = s.Formatter.FormatSlotDisplay(slots[i].Start)
		}
		days = append(days, models.DayAvailability{
			Date:  day.Format("2006-01-02"),
			Label: s.Formatter.FormatDayLabel(day),
			Slots: slots,
		})
	}

	resp := &models.AvailabilityResponse{
		TimeZone: s.Schedule.Location.String(),
		Days:     days,
		Meta:     models.AvailabilityMeta{DurationMinutes: s.Schedule.DurationMinutes},
	}
	s.storeResponse(ctx, cacheKey, resp)
	return resp, nil
}

func (s *DefaultService) cachedResponse(ctx context.Context, key string) *models.AvailabilityResponse {
	if s.Cache == nil {
		return nil
	}
	data, err := s.Cache.Get(ctx, key).Bytes()
	if err != nil {
		return nil
	}
	var resp models.AvailabilityResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil
	}
	return &resp
}

func (s *DefaultService) storeResponse(ctx context.Context, key string, resp *models.AvailabilityResponse) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, key, data, s.CacheTTL).Err(); err != nil {
		s.Logger.Warn("Failed to cache availability response", zap.Error(err))
	}
}
