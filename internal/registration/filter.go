package registration

import (
	"sort"
	"strings"
)

// Sort keys accepted by the admin list endpoint.
const (
	SortCreatedAsc  = "createdAt_asc"
	SortCreatedDesc = "createdAt_desc"
	SortNameAsc     = "name_asc"
	SortNameDesc    = "name_desc"
)

// Filter narrows registrations the way the admin dashboard does: q is
// a case-insensitive substring over name/email/whatsapp/country,
// course and level are exact matches when non-empty.
func Filter(regs []Registration, q, course, level string) []Registration {
	q = strings.ToLower(strings.TrimSpace(q))
	out := make([]Registration, 0, len(regs))
	for _, r := range regs {
		if q != "" && !matchesQuery(r, q) {
			continue
		}
		if course != "" && !hasCourse(r, course) {
			continue
		}
		if level != "" && r.Level != level {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesQuery(r Registration, q string) bool {
	hay := strings.ToLower(strings.Join([]string{r.FullName, r.Email, r.WhatsappNumber, r.Country}, " "))
	return strings.Contains(hay, q)
}

func hasCourse(r Registration, course string) bool {
	for _, c := range r.Courses {
		if c == course {
			return true
		}
	}
	return false
}

// Sort orders a copy of regs by the given key; unknown keys leave the
// stored order untouched.
func Sort(regs []Registration, key string) []Registration {
	out := make([]Registration, len(regs))
	copy(out, regs)
	switch key {
	case SortCreatedAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	case SortCreatedDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[j].CreatedAt.Before(out[i].CreatedAt) })
	case SortNameAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].FullName < out[j].FullName })
	case SortNameDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[j].FullName < out[i].FullName })
	}
	return out
}
