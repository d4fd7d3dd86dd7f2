package models

import "time"

// Notification types emitted by the appointment state machine and the
// reminder sweeps.
const (
	NotificationBookingConfirmation = "BOOKING_CONFIRMATION"
	NotificationCancellation        = "CANCELLATION"
	NotificationReschedule          = "RESCHEDULE"
	NotificationReminder            = "REMINDER"
	NotificationFollowUp            = "FOLLOW_UP"
)

// Notification is a stored in-app notification record.
type Notification struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	Type      string    `bson:"type" json:"type"`
	Title     string    `bson:"title" json:"title"`
	Message   string    `bson:"message" json:"message"`
	Read      bool      `bson:"read" json:"read"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`

	// Ref deduplicates retried deliveries. Reminder sweeps set it to the
	// appointment and sweep kind, so a flag released after a failed email
	// send cannot pile up a second in-app record on retry.
	Ref string `bson:"ref,omitempty" json:"-"`
}

// EmailPayload is the optional email leg of a notification.
type EmailPayload struct {
	Subject string
	Body    string
}

// Contact is the delivery address for a user, resolved through the user
// directory collaborator.
type Contact struct {
	UserID string `bson:"id" json:"id"`
	Name   string `bson:"name" json:"name"`
	Email  string `bson:"email" json:"email"`
}
