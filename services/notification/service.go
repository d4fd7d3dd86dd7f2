package notification

import (
	"context"
	"fmt"
	"time"

	notificationRepo "clinicore/database/repository/notification"
	userRepo "clinicore/database/repository/user"
	"clinicore/models"
	"clinicore/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo      notificationRepo.NotificationRepository
	Directory userRepo.ContactDirectory
	Mailer    Mailer
}

func NewDefaultNotificationService(
	repo notificationRepo.NotificationRepository,
	directory userRepo.ContactDirectory,
	mailer Mailer,
) (*DefaultNotificationService, error) {
	if repo == nil || directory == nil {
		return nil, fmt.Errorf("notification service initialization error: repo or directory is nil")
	}
	return &DefaultNotificationService{
		Repo:      repo,
		Directory: directory,
		Mailer:    mailer,
	}, nil
}

// SendNotification stores the in-app record first, then attempts the email
// leg. The email send is best-effort: a transport failure is reported as a
// dependency error for the caller to log, after the record is already stored.
func (s *DefaultNotificationService) SendNotification(ctx context.Context, userID, notifType, title, message, ref string, email *models.EmailPayload) error {
	logger := utils.GetLogger()

	n := &models.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      notifType,
		Title:     title,
		Message:   message,
		Ref:       ref,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Create(ctx, n); err != nil {
		if notificationRepo.IsDuplicateRef(err) {
			// Already stored by an earlier attempt whose email leg failed;
			// only the email is retried.
			logger.Debug("notification record already stored", zap.String("ref", ref))
		} else {
			return utils.NewDependencyError(fmt.Sprintf("could not store notification for user %s: %v", userID, err))
		}
	}

	if email == nil || s.Mailer == nil {
		return nil
	}

	contact, err := s.Directory.GetContact(ctx, userID)
	if err != nil {
		return utils.NewDependencyError(fmt.Sprintf("could not resolve contact for user %s: %v", userID, err))
	}
	if contact.Email == "" {
		logger.Warn("notification recipient has no email address", zap.String("userId", userID))
		return nil
	}

	if err := s.Mailer.SendEmail(ctx, *contact, email.Subject, email.Body); err != nil {
		return utils.NewDependencyError(fmt.Sprintf("email send to user %s failed: %v", userID, err))
	}

	logger.Debug("notification delivered",
		zap.String("userId", userID),
		zap.String("type", notifType),
	)
	return nil
}
