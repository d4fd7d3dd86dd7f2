package schedule

import (
	"context"
	"fmt"
	"time"

	appointmentRepo "clinicore/database/repository/appointment"
	"clinicore/models"
)

// fakeAvailabilityRepo keeps one week of rows in memory.
type fakeAvailabilityRepo struct {
	rows       map[string][]models.WeeklyAvailability // doctorID -> rows
	replaceErr error
}

func newFakeAvailabilityRepo() *fakeAvailabilityRepo {
	return &fakeAvailabilityRepo{rows: make(map[string][]models.WeeklyAvailability)}
}

func (f *fakeAvailabilityRepo) GetWeekly(_ context.Context, doctorID string) ([]models.WeeklyAvailability, error) {
	return f.rows[doctorID], nil
}

func (f *fakeAvailabilityRepo) GetForDay(_ context.Context, doctorID string, dayOfWeek int) (*models.WeeklyAvailability, error) {
	for _, row := range f.rows[doctorID] {
		if row.DayOfWeek == dayOfWeek && row.IsActive {
			copied := row
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeAvailabilityRepo) ReplaceWeekly(_ context.Context, doctorID string, rows []models.WeeklyAvailability) ([]models.WeeklyAvailability, error) {
	if f.replaceErr != nil {
		return nil, f.replaceErr
	}
	inserted := make([]models.WeeklyAvailability, len(rows))
	copy(inserted, rows)
	for i := range inserted {
		inserted[i].DoctorID = doctorID
		if inserted[i].ID == "" {
			inserted[i].ID = fmt.Sprintf("row-%d", i)
		}
	}
	f.rows[doctorID] = inserted
	return inserted, nil
}

// fakeAppointmentRepo implements the subset of behavior the schedule service
// relies on: non-cancelled filtering on day listing and exact-slot existence.
type fakeAppointmentRepo struct {
	appts []models.Appointment
}

func (f *fakeAppointmentRepo) Create(_ context.Context, apt *models.Appointment) error {
	f.appts = append(f.appts, *apt)
	return nil
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	for i := range f.appts {
		if f.appts[i].ID == id {
			copied := f.appts[i]
			return &copied, nil
		}
	}
	return nil, appointmentRepo.ErrNotFound
}

func (f *fakeAppointmentRepo) Update(_ context.Context, apt *models.Appointment) error {
	for i := range f.appts {
		if f.appts[i].ID == apt.ID {
			f.appts[i] = *apt
			return nil
		}
	}
	return appointmentRepo.ErrNotFound
}

func (f *fakeAppointmentRepo) Delete(_ context.Context, id string) error {
	for i := range f.appts {
		if f.appts[i].ID == id {
			f.appts = append(f.appts[:i], f.appts[i+1:]...)
			return nil
		}
	}
	return appointmentRepo.ErrNotFound
}

func (f *fakeAppointmentRepo) ListByPatient(_ context.Context, patientID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, apt := range f.appts {
		if apt.PatientID == patientID {
			out = append(out, apt)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) ListByDoctorDate(_ context.Context, doctorID, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, apt := range f.appts {
		if apt.DoctorID == doctorID && apt.Date == date && apt.Status != models.StatusCancelled {
			out = append(out, apt)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) ExistsAtSlot(_ context.Context, doctorID, date, timeSlot string) (bool, error) {
	for _, apt := range f.appts {
		if apt.DoctorID == doctorID && apt.Date == date && apt.TimeSlot == timeSlot && apt.Status != models.StatusCancelled {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAppointmentRepo) DueForReminder(context.Context, models.SweepKind, time.Time, time.Time) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) ClaimReminderFlag(context.Context, string, models.SweepKind) (bool, error) {
	return false, nil
}

func (f *fakeAppointmentRepo) ReleaseReminderFlag(context.Context, string, models.SweepKind) error {
	return nil
}
