package notification

import (
	"context"

	"clinicore/models"
)

// NotificationService delivers notifications to patients and doctors. Status
// changes in the scheduling core call this after the mutation has been
// persisted; delivery failure never rolls the mutation back.
type NotificationService interface {
	// SendNotification stores an in-app notification for the user and, when an
	// email payload is supplied, sends the email leg as well. A non-empty ref
	// deduplicates the stored record: a retried delivery with the same ref
	// stores nothing new and only re-attempts the email.
	SendNotification(ctx context.Context, userID, notifType, title, message, ref string, email *models.EmailPayload) error
}

// Mailer abstracts the outbound email transport.
type Mailer interface {
	SendEmail(ctx context.Context, to models.Contact, subject, body string) error
}
