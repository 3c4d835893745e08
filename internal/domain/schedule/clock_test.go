package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shiftwise/staff-scheduler/internal/httperr"
	"github.com/shiftwise/staff-scheduler/internal/models"
)

func TestParseClock(t *testing.T) {
	got, err := ParseClock("09:30:00")
	assert.NoError(t, err)
	assert.Equal(t, 9, got.Hour())
	assert.Equal(t, 30, got.Minute())

	_, err = ParseClock("9:30")
	assert.Error(t, err)

	_, err = ParseClock("25:00:00")
	assert.Error(t, err)
}

func TestCheckWindow(t *testing.T) {
	oh := &models.OpeningHour{
		StoreID:     1,
		Day:         int(Monday),
		OpeningTime: "09:00:00",
		ClosingTime: "18:00:00",
	}

	tests := []struct {
		name     string
		start    string
		end      string
		wantCode string
	}{
		{"inside window", "09:00:00", "17:00:00", ""},
		{"exact window", "09:00:00", "18:00:00", ""},
		{"starts before opening", "08:00:00", "17:00:00", httperr.CodeOutsideOpeningHours},
		{"ends after closing", "10:00:00", "19:00:00", httperr.CodeOutsideOpeningHours},
		{"both out", "08:00:00", "19:00:00", httperr.CodeOutsideOpeningHours},
		{"reversed range", "17:00:00", "09:00:00", httperr.CodeInvalidTimeRange},
		{"zero-length range", "10:00:00", "10:00:00", httperr.CodeInvalidTimeRange},
		{"bad start format", "nine", "17:00:00", httperr.CodeInvalidTimeFormat},
		{"bad end format", "09:00:00", "late", httperr.CodeInvalidTimeFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckWindow(oh, tt.start, tt.end)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, httperr.IsBusiness(err, tt.wantCode),
				"want code %s, got %v", tt.wantCode, err)
		})
	}
}

func TestWeekday(t *testing.T) {
	assert.True(t, Monday.Valid())
	assert.True(t, Sunday.Valid())
	assert.False(t, Weekday(7).Valid())
	assert.False(t, Weekday(-1).Valid())

	assert.Equal(t, "Monday", Monday.String())
	assert.Equal(t, "invalid", Weekday(9).String())
}
