package availabilityRepo

import (
	"context"

	"clinicore/models"
)

// AvailabilityRepository defines the data access methods for a doctor's
// weekly schedule.
type AvailabilityRepository interface {
	// GetWeekly returns all availability rows for a doctor, ordered by weekday.
	GetWeekly(ctx context.Context, doctorID string) ([]models.WeeklyAvailability, error)
	// GetForDay returns the active availability row for a weekday, or nil when
	// the doctor has none.
	GetForDay(ctx context.Context, doctorID string, dayOfWeek int) (*models.WeeklyAvailability, error)
	// ReplaceWeekly swaps a doctor's whole schedule atomically:
	// delete-all-then-insert in one transaction. There is no partial-day
	// versioning.
	ReplaceWeekly(ctx context.Context, doctorID string, rows []models.WeeklyAvailability) ([]models.WeeklyAvailability, error)
}
