package schedule

import (
	"fmt"
	"sort"
	"time"

	ics "github.com/arran4/golang-ical"
)

// defaultClassLength sizes the exported calendar blocks; the catalog
// stores only start times.
const defaultClassLength = time.Hour

// Upcoming expands a student's enrollments into every concrete
// occurrence between now and now+horizon, nearest first. Dangling slot
// references and unknown weekday names are skipped the same way
// Resolve skips them.
func Upcoming(now time.Time, enrollments []Enrollment, slots []TimeSlot, horizon time.Duration) []ResolvedOccurrence {
	catalog := slotByID(slots)
	limit := now.Add(horizon)

	var out []ResolvedOccurrence
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
			for at := nextOnWeekday(now, target, hour, minute); at.Before(limit); at = at.AddDate(0, 0, 7) {
				if !at.After(now) {
					break
				}
				out = append(out, ResolvedOccurrence{
					CourseID:   enr.CourseID,
					CourseName: enr.DisplayName(),
					SlotName:   slot.Name,
					At:         at,
					Pretty:     fmt.Sprintf("%s at %s (%s)", dayName, slot.StartTime, timezoneLabel(slot)),
					MeetLink:   slot.MeetLink,
				})
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].At.Before(out[j].At) })
	return out
}

// ICalendar serializes occurrences into an iCalendar document so a
// student can subscribe from their own calendar app.
func ICalendar(studentName string, occurrences []ResolvedOccurrence) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	for i, occ := range occurrences {
		uid := fmt.Sprintf("%s-%d-%d", occ.CourseID, occ.At.Unix(), i)
		ev := cal.AddEvent(uid)
		ev.SetDtStampTime(occ.At)
		ev.SetStartAt(occ.At)
		ev.SetEndAt(occ.At.Add(defaultClassLength))
		ev.SetSummary(fmt.Sprintf("%s (%s)", occ.CourseName, occ.SlotName))
		ev.SetDescription(fmt.Sprintf("Class for %s • %s", studentName, occ.Pretty))
		if occ.MeetLink != "" {
			ev.SetURL(occ.MeetLink)
			ev.SetLocation(occ.MeetLink)
		}
	}
	return cal.Serialize()
}
