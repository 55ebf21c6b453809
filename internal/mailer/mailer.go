// Package mailer sends the "new registration" notification to the
// academy admin.
package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"academy/internal/registration"
)

// Mailer is implemented by the SendGrid backend and the console
// backend used when email is not configured.
type Mailer interface {
	SendRegistrationAlert(ctx context.Context, reg registration.Registration) error
}

func alertSubject(reg registration.Registration) string {
	name := reg.FullName
	if name == "" {
		name = "New student"
	}
	return fmt.Sprintf("New Free Assessment Booking – %s", name)
}

func alertBody(reg registration.Registration) string {
	dash := func(s string) string {
		if strings.TrimSpace(s) == "" {
			return "-"
		}
		return s
	}
	courses := "N/A"
	if len(reg.Courses) > 0 {
		courses = strings.Join(reg.Courses, ", ")
	}
	return fmt.Sprintf(`New assessment booking received:

Name: %s
Adult name: %s
Child name(s): %s
Who for: %s

WhatsApp: %s
Email: %s
Country: %s

Selected programs: %s

Notes / goals:
%s

Registration ID: %s
Created at: %s`,
		dash(reg.FullName),
		dash(reg.AdultName),
		dash(reg.ChildNames),
		dash(reg.WhoFor),
		dash(reg.WhatsappNumber),
		dash(reg.Email),
		dash(reg.Country),
		courses,
		dash(reg.Goals),
		reg.ID,
		reg.CreatedAt.Format(time.RFC3339),
	)
}
