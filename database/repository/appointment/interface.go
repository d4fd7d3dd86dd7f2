package appointmentRepo

import (
	"context"
	"errors"
	"time"

	"clinicore/models"
)

// ErrDuplicateSlot is returned by Create when the partial unique index
// rejects a second non-cancelled appointment for the same slot.
var ErrDuplicateSlot = errors.New("appointment slot already held")

// ErrNotFound is returned when no appointment matches the given ID.
var ErrNotFound = errors.New("appointment not found")

// AppointmentRepository defines the data access methods used by the booking
// path and the reminder sweeps.
type AppointmentRepository interface {
	// Create persists a new appointment. Returns a duplicate-slot error when
	// another non-cancelled appointment already holds the same
	// (doctorId, date, timeSlot) under the partial unique index.
	Create(ctx context.Context, apt *models.Appointment) error
	// GetByID retrieves an appointment by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	// Update replaces the mutable fields of an existing appointment.
	Update(ctx context.Context, apt *models.Appointment) error
	// Delete removes an appointment permanently.
	Delete(ctx context.Context, id string) error

	// ListByPatient returns all appointments for a patient, newest first.
	ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	// ListByDoctorDate returns the non-cancelled appointments for a doctor on
	// a calendar date.
	ListByDoctorDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error)
	// ExistsAtSlot reports whether a non-cancelled appointment already occupies
	// the exact (doctorId, date, timeSlot) triple.
	ExistsAtSlot(ctx context.Context, doctorID, date, timeSlot string) (bool, error)

	// DueForReminder returns appointments whose start falls in [from, to],
	// whose reminder flag for kind is unset, and whose status is eligible for
	// the sweep.
	DueForReminder(ctx context.Context, kind models.SweepKind, from, to time.Time) ([]models.Appointment, error)
	// ClaimReminderFlag atomically sets the flag for kind from false to true.
	// It returns false when the flag was already set, so overlapping sweeps
	// cannot both send.
	ClaimReminderFlag(ctx context.Context, id string, kind models.SweepKind) (bool, error)
	// ReleaseReminderFlag clears the flag for kind after a failed send so the
	// next sweep retries the appointment.
	ReleaseReminderFlag(ctx context.Context, id string, kind models.SweepKind) error
}

// IsDuplicateSlot reports whether err is the unique-index violation raised by
// Create for an already-held slot.
func IsDuplicateSlot(err error) bool {
	return errors.Is(err, ErrDuplicateSlot)
}

// IsNotFound reports whether err indicates a missing appointment.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
