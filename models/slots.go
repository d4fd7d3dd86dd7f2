package models

import (
	"fmt"
	"time"
)

// WorkingHours are the raw bounds of a day's schedule, returned alongside
// generated slots for display.
type WorkingHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// SlotResponse is the result of slot generation for one doctor and date.
// Slots is ordered chronologically; WorkingHours is nil when the doctor has
// no active schedule for the day, with Message carrying the human-readable
// reason.
type SlotResponse struct {
	Date         string        `json:"date"`
	Slots        []string      `json:"slots"`
	WorkingHours *WorkingHours `json:"workingHours,omitempty"`
	Message      string        `json:"message,omitempty"`
}

// MinutesFromClock parses an "HH:MM" 24-hour string into minutes from
// midnight. Parsing is strict: both fields zero-padded, nothing before or
// after, so one real slot cannot exist under two spellings ("9:30" vs
// "09:30") and slip past the exact-match conflict check and the slot index.
func MinutesFromClock(clock string) (int, error) {
	if len(clock) != len("15:04") {
		return 0, fmt.Errorf("expected HH:MM, got %q", clock)
	}
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, fmt.Errorf("expected HH:MM, got %q", clock)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ClockFromMinutes formats minutes from midnight as "HH:MM".
func ClockFromMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
