package reminder

import (
	"context"
	"fmt"

	"clinicore/models"
)

// send renders and delivers the notification for one due appointment.
func (s *DefaultReminderService) send(ctx context.Context, kind models.SweepKind, apt *models.Appointment) error {
	var notifType, title, msg, subject string

	switch kind {
	case models.Sweep24Hour:
		notifType = models.NotificationReminder
		title = "Appointment tomorrow"
		subject = "Reminder: your appointment is tomorrow"
		msg = fmt.Sprintf("This is a reminder that you have an appointment tomorrow, %s at %s.", apt.Date, apt.TimeSlot)
	case models.Sweep1Hour:
		notifType = models.NotificationReminder
		title = "Appointment in one hour"
		subject = "Reminder: your appointment starts soon"
		msg = fmt.Sprintf("Your appointment today at %s starts in about an hour.", apt.TimeSlot)
	case models.SweepFollowUp:
		notifType = models.NotificationFollowUp
		title = "How was your visit?"
		subject = "We'd love your feedback"
		msg = fmt.Sprintf("Thanks for visiting on %s. We'd appreciate a minute of your time to tell us how it went.", apt.Date)
	default:
		return fmt.Errorf("unknown sweep kind %q", kind)
	}

	// The ref keeps retries after a released flag from storing a second
	// in-app record for the same appointment and sweep.
	ref := apt.ID + ":" + string(kind)
	return s.Notifier.SendNotification(ctx, apt.PatientID, notifType, title, msg, ref,
		&models.EmailPayload{Subject: subject, Body: msg})
}
