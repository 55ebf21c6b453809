// Package registration handles the free-assessment intake: the form
// payload, its validation, and the admin-side views over saved entries.
package registration

import (
	"errors"
	"strings"
	"time"
)

// Validation failures surfaced to the form.
var (
	ErrMissingWhoFor   = errors.New("whoFor is required")
	ErrMissingEmail    = errors.New("email is required")
	ErrInvalidEmail    = errors.New("email looks invalid")
	ErrMissingWhatsapp = errors.New("whatsappNumber is required")
	ErrMissingCountry  = errors.New("country is required")
	ErrMissingName     = errors.New("a student name is required")
)

// Registration is one intake form submission as stored in the
// registrations file.
type Registration struct {
	ID             string    `json:"id"`
	CreatedAt      time.Time `json:"createdAt"`
	FullName       string    `json:"fullName"`
	WhoFor         string    `json:"whoFor"`
	AdultName      string    `json:"adultName,omitempty"`
	ChildNames     string    `json:"childNames,omitempty"`
	Email          string    `json:"email"`
	WhatsappNumber string    `json:"whatsappNumber"`
	Country        string    `json:"country"`
	Courses        []string  `json:"courses"`
	TimePreference string    `json:"timePreference,omitempty"`
	Level          string    `json:"level,omitempty"`
	Goals          string    `json:"goals,omitempty"`
}

// Normalize trims the contact fields and derives FullName when the
// form left it blank: the adult's name for adult bookings, otherwise
// the child names.
func (r *Registration) Normalize() {
	r.WhoFor = strings.TrimSpace(r.WhoFor)
	r.Email = strings.TrimSpace(r.Email)
	r.WhatsappNumber = strings.TrimSpace(r.WhatsappNumber)
	r.Country = strings.TrimSpace(r.Country)
	r.FullName = strings.TrimSpace(r.FullName)
	if r.FullName == "" {
		if strings.EqualFold(r.WhoFor, "myself") && r.AdultName != "" {
			r.FullName = strings.TrimSpace(r.AdultName)
		} else if r.ChildNames != "" {
			r.FullName = strings.TrimSpace(r.ChildNames)
		} else {
			r.FullName = strings.TrimSpace(r.AdultName)
		}
	}
}

// Validate checks the fields the intake form marks required.
func (r Registration) Validate() error {
	switch {
	case r.WhoFor == "":
		return ErrMissingWhoFor
	case r.Email == "":
		return ErrMissingEmail
	case !strings.Contains(r.Email, "@"):
		return ErrInvalidEmail
	case r.WhatsappNumber == "":
		return ErrMissingWhatsapp
	case r.Country == "":
		return ErrMissingCountry
	case r.FullName == "":
		return ErrMissingName
	}
	return nil
}
