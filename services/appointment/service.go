package appointment

import (
	"context"
	"fmt"
	"time"

	appointmentRepo "clinicore/database/repository/appointment"
	"clinicore/models"
	"clinicore/services/notification"
	"clinicore/services/schedule"
	"clinicore/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AppointmentService governs the appointment lifecycle: creation, status
// transitions, reschedules and hard deletes, with role/ownership checks and
// notification side effects.
type AppointmentService interface {
	Create(ctx context.Context, session models.Session, req models.CreateAppointmentRequest) (*models.Appointment, error)
	Update(ctx context.Context, session models.Session, id string, upd models.AppointmentUpdate) (*models.Appointment, error)
	Delete(ctx context.Context, session models.Session, id string) error
	GetByID(ctx context.Context, session models.Session, id string) (*models.Appointment, error)
	ListForPatient(ctx context.Context, session models.Session, patientID string) ([]models.Appointment, error)
	DoctorDaySheet(ctx context.Context, session models.Session, doctorID, date string) ([]models.Appointment, error)
}

// DefaultAppointmentService is the production implementation.
type DefaultAppointmentService struct {
	Repo              appointmentRepo.AppointmentRepository
	Schedule          schedule.ScheduleService
	Notifier          notification.NotificationService
	StrictTransitions bool
}

// Create books a new appointment in PENDING status. The conflict guard
// pre-checks the exact slot; the storage-level unique index catches the race
// between check and insert.
func (s *DefaultAppointmentService) Create(ctx context.Context, session models.Session, req models.CreateAppointmentRequest) (*models.Appointment, error) {
	if req.DoctorID == "" || req.Date == "" || req.TimeSlot == "" {
		return nil, utils.NewValidationError("doctorId, date and timeSlot are required")
	}
	if _, err := time.ParseInLocation("2006-01-02", req.Date, time.Local); err != nil {
		return nil, utils.NewValidationError("date must be YYYY-MM-DD")
	}
	if _, err := models.MinutesFromClock(req.TimeSlot); err != nil {
		return nil, utils.NewValidationError("timeSlot must be HH:MM")
	}

	patientID := req.PatientID
	switch session.Role {
	case models.RolePatient:
		if patientID != "" && patientID != session.UserID {
			return nil, utils.NewForbiddenError("patients may only book appointments for themselves")
		}
		patientID = session.UserID
	case models.RoleDoctor, models.RoleAdmin:
		if patientID == "" {
			return nil, utils.NewValidationError("patientId is required")
		}
	default:
		return nil, utils.NewForbiddenError("unknown role")
	}

	taken, err := s.Schedule.IsSlotTaken(ctx, req.DoctorID, req.Date, req.TimeSlot)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, utils.NewConflictError("The selected time slot is not available")
	}

	duration := req.Duration
	if duration <= 0 {
		duration = models.DefaultSlotMinutes
	}

	apt := &models.Appointment{
		ID:        uuid.NewString(),
		PatientID: patientID,
		DoctorID:  req.DoctorID,
		Date:      req.Date,
		TimeSlot:  req.TimeSlot,
		Duration:  duration,
		Status:    models.StatusPending,
		Reason:    req.Reason,
		Symptoms:  req.Symptoms,
	}
	if err := s.Repo.Create(ctx, apt); err != nil {
		if appointmentRepo.IsDuplicateSlot(err) {
			return nil, utils.NewConflictError("The selected time slot is not available")
		}
		return nil, err
	}

	s.notifyBooked(ctx, apt)
	return apt, nil
}

// Update applies a status transition and/or reschedule to an appointment.
// Changing date or timeSlot is a reschedule regardless of the explicit status
// value and triggers the reschedule notification with both old and new times.
func (s *DefaultAppointmentService) Update(ctx context.Context, session models.Session, id string, upd models.AppointmentUpdate) (*models.Appointment, error) {
	apt, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(session, apt); err != nil {
		return nil, err
	}

	oldDate, oldSlot := apt.Date, apt.TimeSlot
	rescheduled := false

	if upd.Date != nil && *upd.Date != apt.Date {
		if _, err := time.ParseInLocation("2006-01-02", *upd.Date, time.Local); err != nil {
			return nil, utils.NewValidationError("date must be YYYY-MM-DD")
		}
		apt.Date = *upd.Date
		rescheduled = true
	}
	if upd.TimeSlot != nil && *upd.TimeSlot != apt.TimeSlot {
		if _, err := models.MinutesFromClock(*upd.TimeSlot); err != nil {
			return nil, utils.NewValidationError("timeSlot must be HH:MM")
		}
		apt.TimeSlot = *upd.TimeSlot
		rescheduled = true
	}

	if rescheduled {
		taken, err := s.Schedule.IsSlotTaken(ctx, apt.DoctorID, apt.Date, apt.TimeSlot)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, utils.NewConflictError("The selected time slot is not available")
		}
	}

	statusChanged := false
	if upd.Status != nil {
		if !upd.Status.IsValid() {
			return nil, utils.NewValidationError(fmt.Sprintf("unknown status %q", *upd.Status))
		}
		if s.StrictTransitions {
			if err := ValidateTransition(apt.Status, *upd.Status); err != nil {
				return nil, err
			}
		}
		statusChanged = apt.Status != *upd.Status
		apt.Status = *upd.Status
	} else if rescheduled {
		apt.Status = models.StatusRescheduled
	}
	if upd.CancelReason != nil {
		apt.CancelReason = *upd.CancelReason
	}

	if err := s.Repo.Update(ctx, apt); err != nil {
		if appointmentRepo.IsDuplicateSlot(err) {
			return nil, utils.NewConflictError("The selected time slot is not available")
		}
		return nil, err
	}

	if rescheduled {
		s.notifyRescheduled(ctx, apt, oldDate, oldSlot)
	}
	if statusChanged {
		s.notifyStatus(ctx, apt)
	}
	return apt, nil
}

// Delete removes an appointment permanently and notifies the party that did
// not initiate the removal.
func (s *DefaultAppointmentService) Delete(ctx context.Context, session models.Session, id string) error {
	apt, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorize(session, apt); err != nil {
		return err
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		if appointmentRepo.IsNotFound(err) {
			return utils.NewNotFoundError(fmt.Sprintf("appointment %s not found", id))
		}
		return err
	}

	s.notifyDeleted(ctx, session, apt)
	return nil
}

// GetByID returns a single appointment after an ownership check.
func (s *DefaultAppointmentService) GetByID(ctx context.Context, session models.Session, id string) (*models.Appointment, error) {
	apt, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(session, apt); err != nil {
		return nil, err
	}
	return apt, nil
}

// ListForPatient returns a patient's appointment history.
func (s *DefaultAppointmentService) ListForPatient(ctx context.Context, session models.Session, patientID string) ([]models.Appointment, error) {
	if patientID == "" {
		return nil, utils.NewValidationError("patientId is required")
	}
	if session.Role == models.RolePatient && session.UserID != patientID {
		return nil, utils.NewForbiddenError("patients may only view their own appointments")
	}
	if session.Role == models.RoleDoctor {
		return nil, utils.NewForbiddenError("doctors use the day sheet endpoint")
	}
	return s.Repo.ListByPatient(ctx, patientID)
}

// DoctorDaySheet returns a doctor's non-cancelled appointments for a date.
func (s *DefaultAppointmentService) DoctorDaySheet(ctx context.Context, session models.Session, doctorID, date string) ([]models.Appointment, error) {
	if doctorID == "" || date == "" {
		return nil, utils.NewValidationError("doctorId and date are required")
	}
	if session.Role == models.RoleDoctor && session.UserID != doctorID {
		return nil, utils.NewForbiddenError("doctors may only view their own day sheet")
	}
	if session.Role == models.RolePatient {
		return nil, utils.NewForbiddenError("patients may not view doctor day sheets")
	}
	return s.Repo.ListByDoctorDate(ctx, doctorID, date)
}

func (s *DefaultAppointmentService) load(ctx context.Context, id string) (*models.Appointment, error) {
	if id == "" {
		return nil, utils.NewValidationError("appointment id is required")
	}
	apt, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if appointmentRepo.IsNotFound(err) {
			return nil, utils.NewNotFoundError(fmt.Sprintf("appointment %s not found", id))
		}
		return nil, err
	}
	return apt, nil
}

// authorize enforces the ownership contract: patients act on their own
// appointments, doctors on their assigned ones, admins on all. Reported
// distinctly from not-found so clients can tell "not yours" from "gone".
func (s *DefaultAppointmentService) authorize(session models.Session, apt *models.Appointment) error {
	switch session.Role {
	case models.RoleAdmin:
		return nil
	case models.RolePatient:
		if apt.PatientID == session.UserID {
			return nil
		}
	case models.RoleDoctor:
		if apt.DoctorID == session.UserID {
			return nil
		}
	}
	utils.GetLogger().Warn("forbidden appointment access",
		zap.String("appointmentId", apt.ID),
		zap.String("userId", session.UserID),
		zap.String("role", session.Role),
	)
	return utils.NewForbiddenError("you are not allowed to act on this appointment")
}
