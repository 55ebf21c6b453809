// Package attendance computes presence streaks over externally
// supplied attendance history.
package attendance

import "sort"

// Statuses recorded per class day.
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
)

// Record is one attendance mark for one calendar date, as kept in the
// attendance file. Dates are "YYYY-MM-DD". Input order is never
// trusted.
type Record struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

// Streak counts the consecutive "present" records ending at the most
// recent one. Records are sorted newest-first before walking; the walk
// stops at the first record that is not present. Empty history is a
// zero streak.
//
// Two records on the same date each count a step. That matches how the
// history has always been scored and is covered by a test; collapse it
// upstream if the duplicates themselves are the bug.
func Streak(records []Record) int {
	if len(records) == 0 {
		return 0
	}

	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date > sorted[j].Date })

	streak := 0
	for _, r := range sorted {
		if r.Status != StatusPresent {
			break
		}
		streak++
	}
	return streak
}
