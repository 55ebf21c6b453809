package schedule

import (
	"strconv"
	"strings"
	"time"
)

// TimeSlot is a recurring weekly class window from the slot catalog.
// The catalog is maintained by the admin side; this package only reads it.
type TimeSlot struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Days      []string `json:"days"`
	StartTime string   `json:"startTime"` // "HH:MM", 24-hour
	Timezone  string   `json:"timezone"`  // display label only, never applied as an offset
	MeetLink  string   `json:"meetLink,omitempty"`
}

// Enrollment pairs a course with the slot it meets in. A slotId with no
// matching catalog entry is tolerated and skipped during resolution.
type Enrollment struct {
	CourseID   string `json:"courseId"`
	CourseName string `json:"courseName,omitempty"`
	SlotID     string `json:"slotId"`
}

// DisplayName prefers the course name and falls back to the id.
func (e Enrollment) DisplayName() string {
	if e.CourseName != "" {
		return e.CourseName
	}
	return e.CourseID
}

var weekdayIndex = map[string]time.Weekday{
	"Sunday":    time.Sunday,
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

// parseWeekday maps a full weekday name to time.Weekday. Unknown names
// report ok=false and the caller skips them.
func parseWeekday(name string) (time.Weekday, bool) {
	wd, ok := weekdayIndex[name]
	return wd, ok
}

// parseStartTime splits "HH:MM" into hour and minute. Malformed pieces
// degrade to zero rather than erroring, matching how the catalog has
// always been read.
func parseStartTime(s string) (hour, minute int) {
	if s == "" {
		return 0, 0
	}
	parts := strings.SplitN(s, ":", 2)
	hour, _ = strconv.Atoi(strings.TrimSpace(parts[0]))
	if len(parts) > 1 {
		minute, _ = strconv.Atoi(strings.TrimSpace(parts[1]))
	}
	if hour < 0 || hour > 23 {
		hour = 0
	}
	if minute < 0 || minute > 59 {
		minute = 0
	}
	return hour, minute
}

// slotByID builds a lookup map; later duplicates of an id are ignored.
func slotByID(slots []TimeSlot) map[string]TimeSlot {
	m := make(map[string]TimeSlot, len(slots))
	for _, s := range slots {
		if _, ok := m[s.ID]; !ok {
			m[s.ID] = s
		}
	}
	return m
}

// timezoneLabel returns the display label, defaulting like the portal
// always has when the catalog omits one.
func timezoneLabel(s TimeSlot) string {
	if s.Timezone != "" {
		return s.Timezone
	}
	return "local time"
}
