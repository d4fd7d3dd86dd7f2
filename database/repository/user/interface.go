package userRepo

import (
	"context"

	"clinicore/models"
)

// ContactDirectory resolves delivery addresses for notification recipients.
// Account management itself lives outside this service; the directory is the
// narrow read surface the scheduling core needs.
type ContactDirectory interface {
	GetContact(ctx context.Context, userID string) (*models.Contact, error)
}
