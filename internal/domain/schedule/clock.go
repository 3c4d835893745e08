package schedule

import (
	"time"

	"github.com/shiftwise/staff-scheduler/internal/httperr"
	"github.com/shiftwise/staff-scheduler/internal/models"
)

const clockLayout = "15:04:05"

// ParseClock parses an "HH:MM:SS" time-of-day string.
func ParseClock(s string) (time.Time, error) {
	return time.Parse(clockLayout, s)
}

// CheckWindow validates a proposed working window against the store's
// opening hours for the same day. The window must start no earlier than
// opening and end no later than closing.
func CheckWindow(oh *models.OpeningHour, startTime, endTime string) error {
	start, err := ParseClock(startTime)
	if err != nil {
		return httperr.ErrBusiness("invalid_time_format")
	}
	end, err := ParseClock(endTime)
	if err != nil {
		return httperr.ErrBusiness("invalid_time_format")
	}
	if !end.After(start) {
		return httperr.ErrBusiness("invalid_time_range")
	}

	opening, err := ParseClock(oh.OpeningTime)
	if err != nil {
		return err
	}
	closing, err := ParseClock(oh.ClosingTime)
	if err != nil {
		return err
	}

	if start.Before(opening) || end.After(closing) {
		return httperr.ErrBusiness("outside_opening_hours")
	}

	return nil
}
