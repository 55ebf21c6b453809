package schedule

import (
	"fmt"
	"time"
)

// ResolvedOccurrence is the single nearest upcoming class computed for a
// student. It is derived on every call and never stored.
type ResolvedOccurrence struct {
	CourseID   string    `json:"courseId"`
	CourseName string    `json:"courseName"`
	SlotName   string    `json:"slotName"`
	At         time.Time `json:"at"`
	Pretty     string    `json:"pretty"`
	MeetLink   string    `json:"meetLink,omitempty"`
}

// Resolve computes the nearest future occurrence across all of a
// student's enrollments and every weekday in each enrolled slot.
//
// now is explicit so the logic is testable without touching the wall
// clock. Candidates are built in the clock's own location; the slot's
// timezone field is a display label only. An enrollment whose slot is
// missing from the catalog is skipped silently; partial schedules are
// normal while a student is being onboarded. A nil result means nothing
// is scheduled, which is a valid state, not an error.
func Resolve(now time.Time, enrollments []Enrollment, slots []TimeSlot) *ResolvedOccurrence {
	catalog := slotByID(slots)

	var best *ResolvedOccurrence
	for _, enr := range enrollments {
		slot, ok := catalog[enr.SlotID]
		if !ok {
			continue
		}
		hour, minute := parseStartTime(slot.StartTime)

		for _, dayName := range slot.Days {
			target, ok := parseWeekday(dayName)
			if !ok {
				continue
			}

			candidate := nextOnWeekday(now, target, hour, minute)
			if !candidate.After(now) {
				continue
			}

			// Strict Before keeps the earlier enrollment on an exact tie.
			if best == nil || candidate.Before(best.At) {
				best = &ResolvedOccurrence{
					CourseID:   enr.CourseID,
					CourseName: enr.DisplayName(),
					SlotName:   slot.Name,
					At:         candidate,
					Pretty:     fmt.Sprintf("%s at %s (%s)", dayName, slot.StartTime, timezoneLabel(slot)),
					MeetLink:   slot.MeetLink,
				}
			}
		}
	}
	return best
}

// nextOnWeekday finds the next instant on or after now that falls on
// the target weekday at hour:minute in now's location. A session
// earlier today that has already started rolls to the same weekday
// next week rather than the nearest other day.
func nextOnWeekday(now time.Time, target time.Weekday, hour, minute int) time.Time {
	diffDays := (int(target) - int(now.Weekday()) + 7) % 7
	candidate := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if diffDays == 0 && !candidate.After(now) {
		diffDays = 7
	}
	return candidate.AddDate(0, 0, diffDays)
}
