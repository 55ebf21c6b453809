package mailer

import (
	"context"

	"go.uber.org/zap"

	"academy/internal/registration"
)

// Console logs the notification instead of sending it. Used in dev and
// whenever the email settings are incomplete, so a missing API key
// never drops registrations on the floor.
type Console struct {
	log *zap.SugaredLogger
}

// NewConsole returns the logging backend.
func NewConsole(log *zap.SugaredLogger) *Console {
	return &Console{log: log}
}

// SendRegistrationAlert logs the rendered email.
func (c *Console) SendRegistrationAlert(_ context.Context, reg registration.Registration) error {
	c.log.Infow("registration alert (email not configured)",
		"subject", alertSubject(reg),
		"body", alertBody(reg),
	)
	return nil
}
