package models

import "fmt"

// WeeklyAvailability is one weekday of a doctor's working schedule.
// DayOfWeek follows 0=Sunday..6=Saturday. Times are "HH:MM" 24-hour.
// A doctor's week is replaced wholesale on edit; rows are never patched
// individually.
type WeeklyAvailability struct {
	ID         string  `bson:"id" json:"id"`
	DoctorID   string  `bson:"doctorId" json:"doctorId"`
	DayOfWeek  int     `bson:"dayOfWeek" json:"dayOfWeek"`
	StartTime  string  `bson:"startTime" json:"startTime"`
	EndTime    string  `bson:"endTime" json:"endTime"`
	BreakStart *string `bson:"breakStart,omitempty" json:"breakStart,omitempty"`
	BreakEnd   *string `bson:"breakEnd,omitempty" json:"breakEnd,omitempty"`
	IsActive   bool    `bson:"isActive" json:"isActive"`
}

// Validate checks the structural invariants of a weekly availability row:
// a valid weekday, start before end, and a break window (when present)
// contained in the working hours.
func (w *WeeklyAvailability) Validate() error {
	if w.DayOfWeek < 0 || w.DayOfWeek > 6 {
		return fmt.Errorf("dayOfWeek must be in [0..6], got %d", w.DayOfWeek)
	}
	start, err := MinutesFromClock(w.StartTime)
	if err != nil {
		return fmt.Errorf("invalid startTime %q: %w", w.StartTime, err)
	}
	end, err := MinutesFromClock(w.EndTime)
	if err != nil {
		return fmt.Errorf("invalid endTime %q: %w", w.EndTime, err)
	}
	if start >= end {
		return fmt.Errorf("startTime %s must be before endTime %s", w.StartTime, w.EndTime)
	}

	if (w.BreakStart == nil) != (w.BreakEnd == nil) {
		return fmt.Errorf("breakStart and breakEnd must be set together")
	}
	if w.BreakStart != nil {
		bs, err := MinutesFromClock(*w.BreakStart)
		if err != nil {
			return fmt.Errorf("invalid breakStart %q: %w", *w.BreakStart, err)
		}
		be, err := MinutesFromClock(*w.BreakEnd)
		if err != nil {
			return fmt.Errorf("invalid breakEnd %q: %w", *w.BreakEnd, err)
		}
		if bs >= be {
			return fmt.Errorf("breakStart %s must be before breakEnd %s", *w.BreakStart, *w.BreakEnd)
		}
		if bs < start || be > end {
			return fmt.Errorf("break window %s-%s must fall within working hours %s-%s",
				*w.BreakStart, *w.BreakEnd, w.StartTime, w.EndTime)
		}
	}
	return nil
}
