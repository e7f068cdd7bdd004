package resolver

import (
	"time"

	"luna-assistant/internal/model"
)

// timeOfDayBucket maps an hour of the day onto a coarse bucket.
func timeOfDayBucket(hour int) model.TimeOfDay {
	switch {
	case hour >= 5 && hour < 12:
		return model.TimeOfDayMorning
	case hour >= 12 && hour < 17:
		return model.TimeOfDayAfternoon
	case hour >= 17 && hour < 22:
		return model.TimeOfDayEvening
	default:
		return model.TimeOfDayNight
	}
}

// buildTimeContext computes the time context in the given timezone.
// An invalid timezone falls back to UTC rather than failing the request.
func buildTimeContext(timezone string, now time.Time) model.TimeContext {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}

	local := now.In(loc)

	return model.TimeContext{
		TimeOfDay: timeOfDayBucket(local.Hour()),
		DayOfWeek: local.Weekday().String(),
		Date:      local,
	}
}
