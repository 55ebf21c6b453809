package registration

import (
	"bytes"
	"encoding/csv"
	"strings"
	"time"
)

var csvHeader = []string{
	"id", "createdAt", "fullName", "whatsappNumber", "email",
	"country", "timePreference", "level", "courses",
}

// ToCSV renders registrations for the admin export download. Column
// set matches the dashboard table; courses collapse into one
// semicolon-joined cell.
func ToCSV(regs []Registration) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.UseCRLF = true

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, r := range regs {
		row := []string{
			r.ID,
			r.CreatedAt.Format(time.RFC3339),
			r.FullName,
			r.WhatsappNumber,
			r.Email,
			r.Country,
			r.TimePreference,
			r.Level,
			strings.Join(r.Courses, "; "),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
