package exchanges

import (
	"time"

	"tasepin/constants"

	"go.uber.org/zap"
)

// Tase tel aviv stock exchange calendar
type Tase struct {
	location *time.Location
}

// NewTase create tase calendar for a timezone, falling back to the default
// timezone when the name cannot be loaded, and to UTC when the default
// cannot be loaded either
func NewTase(timezone string) *Tase {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		zap.L().Warn("load timezone failed, using default",
			zap.Error(err),
			zap.String("timezone", timezone),
			zap.String("default", constants.DefaultTimezone))

		location, err = time.LoadLocation(constants.DefaultTimezone)
		if err != nil {
			zap.L().Warn("load default timezone failed, using utc", zap.Error(err))
			location = time.UTC
		}
	}

	return &Tase{location: location}
}

// Code get exchange code
func (s Tase) Code() string {
	return "Tase"
}

// Location get exchange location
func (s Tase) Location() *time.Location {
	return s.location
}

// IsTradingTime report whether t falls within a trading session:
// Sunday 10:00-16:30, Monday-Thursday 10:00-17:30, Friday/Saturday closed
func (s Tase) IsTradingTime(t time.Time) bool {
	local := t.In(s.location)

	var closeHour, closeMinute int
	switch local.Weekday() {
	case time.Friday, time.Saturday:
		return false
	case time.Sunday:
		closeHour, closeMinute = 16, 30
	default:
		closeHour, closeMinute = 17, 30
	}

	minutes := local.Hour()*60 + local.Minute()
	return minutes >= 10*60 && minutes <= closeHour*60+closeMinute
}
