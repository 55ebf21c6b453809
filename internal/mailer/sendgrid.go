package mailer

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"academy/internal/registration"
)

// SendGrid delivers notification email through the SendGrid API.
type SendGrid struct {
	client  *sendgrid.Client
	appName string
	from    string
	to      string
}

// NewSendGrid builds the backend; from is the notifying address and to
// the admin inbox.
func NewSendGrid(apiKey, appName, from, to string) *SendGrid {
	return &SendGrid{
		client:  sendgrid.NewSendClient(apiKey),
		appName: appName,
		from:    from,
		to:      to,
	}
}

// SendRegistrationAlert mails the admin about one new intake entry.
func (s *SendGrid) SendRegistrationAlert(ctx context.Context, reg registration.Registration) error {
	msg := sgmail.NewSingleEmail(
		sgmail.NewEmail(s.appName, s.from),
		alertSubject(reg),
		sgmail.NewEmail("", s.to),
		alertBody(reg),
		"",
	)
	resp, err := s.client.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
