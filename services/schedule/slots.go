package schedule

import (
	"context"

	"clinicore/models"
	"clinicore/utils"
)

const noScheduleMessage = "Doctor is not available on this day"

// GetAvailableSlots computes the bookable 30-minute slots for a doctor on a
// calendar date. A missing or inactive weekday schedule yields an empty slot
// list with a human-readable message, not an error; slots are a pure function
// of the weekly availability row and the day's non-cancelled appointments.
func (s *DefaultScheduleService) GetAvailableSlots(ctx context.Context, doctorID, date string) (*models.SlotResponse, error) {
	if doctorID == "" {
		return nil, utils.NewValidationError("doctorId is required")
	}
	if date == "" {
		return nil, utils.NewValidationError("date is required")
	}
	weekday, err := dayOfWeek(date)
	if err != nil {
		return nil, utils.NewValidationError("date must be YYYY-MM-DD")
	}

	row, err := s.Availability.GetForDay(ctx, doctorID, weekday)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return &models.SlotResponse{Date: date, Slots: []string{}, Message: noScheduleMessage}, nil
	}

	dayStart, err := models.MinutesFromClock(row.StartTime)
	if err != nil {
		return nil, utils.NewValidationError("availability row has malformed startTime")
	}
	dayEnd, err := models.MinutesFromClock(row.EndTime)
	if err != nil {
		return nil, utils.NewValidationError("availability row has malformed endTime")
	}

	busy, err := s.busyIntervals(ctx, doctorID, date, row)
	if err != nil {
		return nil, err
	}

	slots := []string{}
	for t := dayStart; t+models.DefaultSlotMinutes <= dayEnd; t += models.DefaultSlotMinutes {
		if intervalFree(t, t+models.DefaultSlotMinutes, busy) {
			slots = append(slots, models.ClockFromMinutes(t))
		}
	}

	return &models.SlotResponse{
		Date:         date,
		Slots:        slots,
		WorkingHours: &models.WorkingHours{Start: row.StartTime, End: row.EndTime},
	}, nil
}

// interval is a half-open [start, end) range in minutes from midnight.
type interval struct {
	start int
	end   int
}

// busyIntervals collects the break window and the day's non-cancelled
// appointments as exclusion ranges.
func (s *DefaultScheduleService) busyIntervals(ctx context.Context, doctorID, date string, row *models.WeeklyAvailability) ([]interval, error) {
	var busy []interval

	if row.BreakStart != nil && row.BreakEnd != nil {
		bs, err := models.MinutesFromClock(*row.BreakStart)
		if err != nil {
			return nil, utils.NewValidationError("availability row has malformed breakStart")
		}
		be, err := models.MinutesFromClock(*row.BreakEnd)
		if err != nil {
			return nil, utils.NewValidationError("availability row has malformed breakEnd")
		}
		busy = append(busy, interval{start: bs, end: be})
	}

	appts, err := s.Appointments.ListByDoctorDate(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}
	for _, apt := range appts {
		start, err := models.MinutesFromClock(apt.TimeSlot)
		if err != nil {
			// A malformed stored slot must not take the whole day down.
			continue
		}
		duration := apt.Duration
		if duration <= 0 {
			duration = models.DefaultSlotMinutes
		}
		busy = append(busy, interval{start: start, end: start + duration})
	}
	return busy, nil
}

// intervalFree reports whether the candidate [start, end) avoids every busy
// range. Three disjunctive checks: candidate start inside busy, candidate end
// inside busy, candidate fully containing busy. The first two alone miss a
// candidate that swallows a shorter busy range whole.
func intervalFree(start, end int, busy []interval) bool {
	for _, b := range busy {
		startInside := start >= b.start && start < b.end
		endInside := end > b.start && end <= b.end
		contains := start <= b.start && end >= b.end
		if startInside || endInside || contains {
			return false
		}
	}
	return true
}
