package schedule

import (
	"context"
	"fmt"
	"time"

	appointmentRepo "clinicore/database/repository/appointment"
	availabilityRepo "clinicore/database/repository/availability"
	"clinicore/models"
	"clinicore/utils"

	"go.uber.org/zap"
)

// ScheduleService computes bookable slots and manages weekly availability.
type ScheduleService interface {
	GetAvailableSlots(ctx context.Context, doctorID, date string) (*models.SlotResponse, error)
	GetWeeklyAvailability(ctx context.Context, doctorID string) ([]models.WeeklyAvailability, error)
	ReplaceWeeklyAvailability(ctx context.Context, doctorID string, rows []models.WeeklyAvailability) ([]models.WeeklyAvailability, error)
	IsSlotTaken(ctx context.Context, doctorID, date, timeSlot string) (bool, error)
}

// DefaultScheduleService is the production implementation.
type DefaultScheduleService struct {
	Availability availabilityRepo.AvailabilityRepository
	Appointments appointmentRepo.AppointmentRepository
}

// GetWeeklyAvailability returns a doctor's full weekly schedule.
func (s *DefaultScheduleService) GetWeeklyAvailability(ctx context.Context, doctorID string) ([]models.WeeklyAvailability, error) {
	if doctorID == "" {
		return nil, utils.NewValidationError("doctorId is required")
	}
	rows, err := s.Availability.GetWeekly(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []models.WeeklyAvailability{}
	}
	return rows, nil
}

// ReplaceWeeklyAvailability validates and swaps a doctor's whole schedule.
// Replace is wholesale: rows not present in the new set are gone afterwards.
func (s *DefaultScheduleService) ReplaceWeeklyAvailability(ctx context.Context, doctorID string, rows []models.WeeklyAvailability) ([]models.WeeklyAvailability, error) {
	if doctorID == "" {
		return nil, utils.NewValidationError("doctorId is required")
	}

	seen := make(map[int]bool, len(rows))
	for i := range rows {
		if err := rows[i].Validate(); err != nil {
			return nil, utils.NewValidationError(err.Error())
		}
		if seen[rows[i].DayOfWeek] {
			return nil, utils.NewValidationError(fmt.Sprintf("duplicate availability row for dayOfWeek %d", rows[i].DayOfWeek))
		}
		seen[rows[i].DayOfWeek] = true
	}

	replaced, err := s.Availability.ReplaceWeekly(ctx, doctorID, rows)
	if err != nil {
		return nil, err
	}

	utils.GetLogger().Info("weekly availability replaced",
		zap.String("doctorId", doctorID),
		zap.Int("days", len(replaced)),
	)
	return replaced, nil
}

// dayOfWeek derives the 0=Sunday..6=Saturday weekday index from a calendar date.
func dayOfWeek(date string) (int, error) {
	parsed, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return 0, err
	}
	return int(parsed.Weekday()), nil
}
