// Package student models the student directory consumed by the portal.
package student

import (
	"strings"
	"time"

	"academy/internal/schedule"
)

// Student is one directory entry from the students file. Enrollments
// keep their file order; the first one drives the default course shown
// on the dashboard.
type Student struct {
	ID       string                `json:"id,omitempty"`
	FullName string                `json:"fullName"`
	Whatsapp string                `json:"whatsapp,omitempty"`
	Courses  []schedule.Enrollment `json:"courses"`
}

// Snapshot is the session-scoped view handed to the dashboard at
// login. It is a value: the caller owns it for the session and fetches
// a fresh one on the next login rather than merging.
type Snapshot struct {
	Student
	Phone    string    `json:"phone"`
	JoinedAt time.Time `json:"joinedAt"`
}

// FindByName matches a student by full name, case-insensitively and
// ignoring surrounding whitespace, the way the portal login always has.
func FindByName(students []Student, fullName string) (Student, bool) {
	want := strings.ToLower(strings.TrimSpace(fullName))
	if want == "" {
		return Student{}, false
	}
	for _, s := range students {
		if strings.ToLower(strings.TrimSpace(s.FullName)) == want {
			return s, true
		}
	}
	return Student{}, false
}

// NewSnapshot builds the login-time view. The directory's WhatsApp
// number wins; the phone the student typed into the login form is only
// a fallback display value.
func NewSnapshot(s Student, fallbackPhone string, now time.Time) Snapshot {
	phone := s.Whatsapp
	if phone == "" {
		phone = fallbackPhone
	}
	return Snapshot{Student: s, Phone: phone, JoinedAt: now}
}
