package notificationRepo

import (
	"context"
	"errors"

	"clinicore/models"
)

// ErrDuplicateRef is returned by Create when a record with the same delivery
// ref is already stored.
var ErrDuplicateRef = errors.New("notification ref already stored")

// NotificationRepository persists in-app notification records.
type NotificationRepository interface {
	// Create stores a new notification. When the record carries a delivery
	// ref that is already stored, Create returns a duplicate-ref error and
	// stores nothing.
	Create(ctx context.Context, n *models.Notification) error
	// ListByUser returns a user's notifications, newest first.
	ListByUser(ctx context.Context, userID string, limit int) ([]models.Notification, error)
	// MarkRead flags a notification as seen.
	MarkRead(ctx context.Context, id string) error
}

// IsDuplicateRef reports whether err is the unique-ref violation raised by
// Create for an already-stored delivery.
func IsDuplicateRef(err error) bool {
	return errors.Is(err, ErrDuplicateRef)
}
