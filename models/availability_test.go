package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestWeeklyAvailabilityValidate(t *testing.T) {
	tests := []struct {
		name    string
		row     WeeklyAvailability
		wantErr bool
	}{
		{"plain day", WeeklyAvailability{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00"}, false},
		{"day with break", WeeklyAvailability{DayOfWeek: 5, StartTime: "08:30", EndTime: "16:30", BreakStart: ptr("12:00"), BreakEnd: ptr("13:00")}, false},
		{"weekday too high", WeeklyAvailability{DayOfWeek: 7, StartTime: "09:00", EndTime: "17:00"}, true},
		{"weekday negative", WeeklyAvailability{DayOfWeek: -1, StartTime: "09:00", EndTime: "17:00"}, true},
		{"start equals end", WeeklyAvailability{DayOfWeek: 1, StartTime: "09:00", EndTime: "09:00"}, true},
		{"start after end", WeeklyAvailability{DayOfWeek: 1, StartTime: "17:00", EndTime: "09:00"}, true},
		{"malformed start", WeeklyAvailability{DayOfWeek: 1, StartTime: "9am", EndTime: "17:00"}, true},
		{"break start without end", WeeklyAvailability{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", BreakStart: ptr("12:00")}, true},
		{"break reversed", WeeklyAvailability{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", BreakStart: ptr("13:00"), BreakEnd: ptr("12:00")}, true},
		{"break before opening", WeeklyAvailability{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", BreakStart: ptr("08:00"), BreakEnd: ptr("09:30")}, true},
		{"break past closing", WeeklyAvailability{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", BreakStart: ptr("16:30"), BreakEnd: ptr("17:30")}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.row.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMinutesFromClock(t *testing.T) {
	m, err := MinutesFromClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 570, m)

	m, err = MinutesFromClock("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, m)

	m, err = MinutesFromClock("23:59")
	require.NoError(t, err)
	assert.Equal(t, 1439, m)

	// Non-canonical spellings are rejected, not normalized: "9:30" naming the
	// same slot as "09:30" under a second string would evade the exact-match
	// conflict check and the unique slot index.
	for _, bad := range []string{"", "24:00", "12:60", "noon", "9", "9:30", "+9:30", "10:30pm", "09:300"} {
		_, err := MinutesFromClock(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestClockFromMinutes(t *testing.T) {
	assert.Equal(t, "09:30", ClockFromMinutes(570))
	assert.Equal(t, "00:00", ClockFromMinutes(0))
	assert.Equal(t, "23:59", ClockFromMinutes(1439))
}
