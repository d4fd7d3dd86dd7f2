package notification

import (
	"context"
	"fmt"

	"clinicore/config"
	"clinicore/models"
	"clinicore/utils"

	sendgrid "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// SendGridMailer sends emails via the SendGrid API.
type SendGridMailer struct {
	client   *sendgrid.Client
	from     string
	fromName string
}

// NewSendGridMailer constructs the mailer, or nil when no API key is
// configured so callers can run without an email leg.
func NewSendGridMailer() *SendGridMailer {
	if config.AppConfig.SendGridAPIKey == "" {
		return nil
	}
	return &SendGridMailer{
		client:   sendgrid.NewSendClient(config.AppConfig.SendGridAPIKey),
		from:     config.AppConfig.EmailFrom,
		fromName: config.AppConfig.EmailFromName,
	}
}

// SendEmail sends a plain-text email to the contact.
func (m *SendGridMailer) SendEmail(ctx context.Context, to models.Contact, subject, body string) error {
	from := mail.NewEmail(m.fromName, m.from)
	recipient := mail.NewEmail(to.Name, to.Email)
	message := mail.NewSingleEmail(from, subject, recipient, body, body)

	response, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send failed: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d", response.StatusCode)
	}

	utils.GetLogger().Debug("email sent",
		zap.String("to", to.Email),
		zap.String("subject", subject),
	)
	return nil
}
