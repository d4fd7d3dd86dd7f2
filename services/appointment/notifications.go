package appointment

import (
	"context"
	"fmt"

	"clinicore/models"
	"clinicore/utils"

	"go.uber.org/zap"
)

// Notification delivery is best-effort throughout: the appointment mutation
// is authoritative, so a failed send is logged and swallowed.

func (s *DefaultAppointmentService) notify(ctx context.Context, userID, notifType, title, message string, email *models.EmailPayload) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.SendNotification(ctx, userID, notifType, title, message, "", email); err != nil {
		utils.GetLogger().Warn("notification send failed",
			zap.String("userId", userID),
			zap.String("type", notifType),
			zap.Error(err),
		)
	}
}

func (s *DefaultAppointmentService) notifyBooked(ctx context.Context, apt *models.Appointment) {
	msg := fmt.Sprintf("Your appointment on %s at %s has been booked.", apt.Date, apt.TimeSlot)
	s.notify(ctx, apt.PatientID, models.NotificationBookingConfirmation,
		"Appointment booked", msg,
		&models.EmailPayload{
			Subject: "Your appointment is booked",
			Body:    msg,
		})
}

func (s *DefaultAppointmentService) notifyStatus(ctx context.Context, apt *models.Appointment) {
	switch apt.Status {
	case models.StatusCancelled:
		msg := fmt.Sprintf("Your appointment on %s at %s has been cancelled.", apt.Date, apt.TimeSlot)
		if apt.CancelReason != "" {
			msg = fmt.Sprintf("%s Reason: %s", msg, apt.CancelReason)
		}
		s.notify(ctx, apt.PatientID, models.NotificationCancellation,
			"Appointment cancelled", msg,
			&models.EmailPayload{Subject: "Your appointment was cancelled", Body: msg})
	case models.StatusConfirmed:
		msg := fmt.Sprintf("Your appointment on %s at %s has been confirmed.", apt.Date, apt.TimeSlot)
		s.notify(ctx, apt.PatientID, models.NotificationBookingConfirmation,
			"Appointment confirmed", msg,
			&models.EmailPayload{Subject: "Your appointment is confirmed", Body: msg})
	}
}

func (s *DefaultAppointmentService) notifyRescheduled(ctx context.Context, apt *models.Appointment, oldDate, oldSlot string) {
	msg := fmt.Sprintf("Your appointment has been moved from %s at %s to %s at %s.",
		oldDate, oldSlot, apt.Date, apt.TimeSlot)
	s.notify(ctx, apt.PatientID, models.NotificationReschedule,
		"Appointment rescheduled", msg,
		&models.EmailPayload{Subject: "Your appointment was rescheduled", Body: msg})
}

// notifyDeleted informs the party that did not initiate the removal: a
// patient-initiated delete notifies the doctor, anything else the patient.
func (s *DefaultAppointmentService) notifyDeleted(ctx context.Context, session models.Session, apt *models.Appointment) {
	recipient := apt.PatientID
	if session.Role == models.RolePatient {
		recipient = apt.DoctorID
	}
	msg := fmt.Sprintf("The appointment on %s at %s has been removed.", apt.Date, apt.TimeSlot)
	s.notify(ctx, recipient, models.NotificationCancellation,
		"Appointment removed", msg,
		&models.EmailPayload{Subject: "An appointment was removed", Body: msg})
}
