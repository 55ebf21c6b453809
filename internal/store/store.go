// Package store persists the site's data as whole JSON files under one
// data directory, the way the academy has always run: slots and
// students are hand-maintained, registrations are appended by the
// intake form, attendance is pushed in by the admin side.
package store

import (
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"academy/internal/attendance"
	"academy/internal/registration"
	"academy/internal/schedule"
	"academy/internal/student"
)

// File names inside the data directory.
const (
	registrationsFile = "registrations.json"
	classSlotsFile    = "classSlots.json"
	studentsFile      = "students.json"
	attendanceFile    = "attendance.json"
)

// Store reads and writes the flat JSON files. The mutex only guards
// the registrations read-modify-write cycle; the other files are
// read-only from this process.
type Store struct {
	dir string
	mu  sync.Mutex
	log *zap.SugaredLogger
}

// New returns a store over dir.
func New(dir string, log *zap.SugaredLogger) *Store {
	return &Store{dir: dir, log: log}
}

// EnsureFiles creates the registrations file when missing. The
// catalog, directory, and attendance files are owned by the admin side
// and are not created here; a missing one just reads as empty.
func (s *Store) EnsureFiles() error {
	return EnsureFile(s.path(registrationsFile), []byte("[]\n"))
}

func (s *Store) path(name string) string { return filepath.Join(s.dir, name) }

// Slots returns the class slot catalog snapshot.
func (s *Store) Slots() []schedule.TimeSlot {
	slots, err := ReadJSONFile(s.path(classSlotsFile), []schedule.TimeSlot{})
	if err != nil {
		s.log.Warnw("reading class slots", "err", err)
	}
	return slots
}

// Students returns the student directory snapshot.
func (s *Store) Students() []student.Student {
	students, err := ReadJSONFile(s.path(studentsFile), []student.Student{})
	if err != nil {
		s.log.Warnw("reading students", "err", err)
	}
	return students
}

// AttendanceFor returns one student's attendance history, unordered.
func (s *Store) AttendanceFor(fullName string) []attendance.Record {
	all, err := ReadJSONFile(s.path(attendanceFile), map[string][]attendance.Record{})
	if err != nil {
		s.log.Warnw("reading attendance", "err", err)
	}
	return all[fullName]
}

// Registrations returns every saved intake entry.
func (s *Store) Registrations() []registration.Registration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registrationsLocked()
}

// RegistrationByID finds one entry; ok is false when the id is unknown.
func (s *Store) RegistrationByID(id string) (registration.Registration, bool) {
	for _, r := range s.Registrations() {
		if r.ID == id {
			return r, true
		}
	}
	return registration.Registration{}, false
}

// AppendRegistration adds an entry and rewrites the file.
func (s *Store) AppendRegistration(reg registration.Registration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := append(s.registrationsLocked(), reg)
	return WriteJSONFile(s.path(registrationsFile), list)
}

func (s *Store) registrationsLocked() []registration.Registration {
	regs, err := ReadJSONFile(s.path(registrationsFile), []registration.Registration{})
	if err != nil {
		s.log.Warnw("reading registrations", "err", err)
	}
	return regs
}
