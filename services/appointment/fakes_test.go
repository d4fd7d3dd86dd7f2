package appointment

import (
	"context"
	"sort"
	"time"

	appointmentRepo "clinicore/database/repository/appointment"
	"clinicore/models"
)

// fakeRepo is an in-memory AppointmentRepository backed by a map.
type fakeRepo struct {
	appts map[string]*models.Appointment

	// When set, the next Create fails with ErrDuplicateSlot, simulating the
	// unique index winning a race the pre-check missed.
	duplicateOnCreate bool
}

func newFakeRepo(seed ...*models.Appointment) *fakeRepo {
	r := &fakeRepo{appts: make(map[string]*models.Appointment)}
	for _, apt := range seed {
		cp := *apt
		r.appts[apt.ID] = &cp
	}
	return r
}

func (r *fakeRepo) Create(_ context.Context, apt *models.Appointment) error {
	if r.duplicateOnCreate {
		r.duplicateOnCreate = false
		return appointmentRepo.ErrDuplicateSlot
	}
	cp := *apt
	r.appts[apt.ID] = &cp
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	apt, ok := r.appts[id]
	if !ok {
		return nil, appointmentRepo.ErrNotFound
	}
	cp := *apt
	return &cp, nil
}

func (r *fakeRepo) Update(_ context.Context, apt *models.Appointment) error {
	if _, ok := r.appts[apt.ID]; !ok {
		return appointmentRepo.ErrNotFound
	}
	cp := *apt
	r.appts[apt.ID] = &cp
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.appts[id]; !ok {
		return appointmentRepo.ErrNotFound
	}
	delete(r.appts, id)
	return nil
}

func (r *fakeRepo) ListByPatient(_ context.Context, patientID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, apt := range r.appts {
		if apt.PatientID == patientID {
			out = append(out, *apt)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeRepo) ListByDoctorDate(_ context.Context, doctorID, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, apt := range r.appts {
		if apt.DoctorID == doctorID && apt.Date == date && apt.Status != models.StatusCancelled {
			out = append(out, *apt)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TimeSlot < out[j].TimeSlot })
	return out, nil
}

func (r *fakeRepo) ExistsAtSlot(_ context.Context, doctorID, date, timeSlot string) (bool, error) {
	for _, apt := range r.appts {
		if apt.DoctorID == doctorID && apt.Date == date && apt.TimeSlot == timeSlot && apt.Status != models.StatusCancelled {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) DueForReminder(_ context.Context, _ models.SweepKind, _, _ time.Time) ([]models.Appointment, error) {
	return nil, nil
}

func (r *fakeRepo) ClaimReminderFlag(_ context.Context, _ string, _ models.SweepKind) (bool, error) {
	return false, nil
}

func (r *fakeRepo) ReleaseReminderFlag(_ context.Context, _ string, _ models.SweepKind) error {
	return nil
}

// fakeSchedule answers the conflict guard from the fake repo, matching the
// production exact-match semantics.
type fakeSchedule struct {
	repo *fakeRepo
}

func (f *fakeSchedule) IsSlotTaken(ctx context.Context, doctorID, date, timeSlot string) (bool, error) {
	return f.repo.ExistsAtSlot(ctx, doctorID, date, timeSlot)
}

func (f *fakeSchedule) GetAvailableSlots(_ context.Context, _, _ string) (*models.SlotResponse, error) {
	return &models.SlotResponse{}, nil
}

func (f *fakeSchedule) GetWeeklyAvailability(_ context.Context, _ string) ([]models.WeeklyAvailability, error) {
	return nil, nil
}

func (f *fakeSchedule) ReplaceWeeklyAvailability(_ context.Context, _ string, rows []models.WeeklyAvailability) ([]models.WeeklyAvailability, error) {
	return rows, nil
}

// sentNotification records one SendNotification call.
type sentNotification struct {
	UserID  string
	Type    string
	Title   string
	Message string
	Email   *models.EmailPayload
}

// recordingNotifier captures notifications instead of delivering them.
type recordingNotifier struct {
	sent []sentNotification
}

func (n *recordingNotifier) SendNotification(_ context.Context, userID, notifType, title, message, _ string, email *models.EmailPayload) error {
	n.sent = append(n.sent, sentNotification{UserID: userID, Type: notifType, Title: title, Message: message, Email: email})
	return nil
}

func newTestService(repo *fakeRepo, notifier *recordingNotifier) *DefaultAppointmentService {
	return &DefaultAppointmentService{
		Repo:     repo,
		Schedule: &fakeSchedule{repo: repo},
		Notifier: notifier,
	}
}
