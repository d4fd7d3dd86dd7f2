package schedule

import (
	"context"

	"clinicore/models"
	"clinicore/utils"
)

// IsSlotTaken is the booking-path conflict guard. It checks exact timeSlot
// equality against non-cancelled appointments, not range overlap: clients are
// expected to book only generator-produced slots, and the generator already
// does the full overlap exclusion. This keeps the guard a cheap last-line
// check for the common fixed-30-minute case; the storage-level unique index
// closes the remaining race on write.
func (s *DefaultScheduleService) IsSlotTaken(ctx context.Context, doctorID, date, timeSlot string) (bool, error) {
	if doctorID == "" || date == "" || timeSlot == "" {
		return false, utils.NewValidationError("doctorId, date and timeSlot are required")
	}
	if _, err := models.MinutesFromClock(timeSlot); err != nil {
		return false, utils.NewValidationError("timeSlot must be HH:MM")
	}
	return s.Appointments.ExistsAtSlot(ctx, doctorID, date, timeSlot)
}
