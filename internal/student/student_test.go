package student

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academy/internal/schedule"
)

var directory = []Student{
	{FullName: "Aisha Bello", Whatsapp: "+2348012345678", Courses: []schedule.Enrollment{{CourseID: "quran", SlotID: "s1"}}},
	{FullName: "  Musa Ibrahim "},
}

func TestFindByName(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
		ok    bool
	}{
		{name: "exact", query: "Aisha Bello", want: "Aisha Bello", ok: true},
		{name: "case insensitive", query: "aisha bello", want: "Aisha Bello", ok: true},
		{name: "trims both sides", query: "  musa ibrahim ", want: "  Musa Ibrahim ", ok: true},
		{name: "unknown", query: "Nobody", ok: false},
		{name: "blank", query: "   ", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindByName(directory, tt.query)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got.FullName)
			}
		})
	}
}

func TestNewSnapshotPhoneFallback(t *testing.T) {
	now := time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)

	snap := NewSnapshot(directory[0], "+15550000", now)
	assert.Equal(t, "+2348012345678", snap.Phone, "directory number wins")

	snap = NewSnapshot(directory[1], "+15550000", now)
	assert.Equal(t, "+15550000", snap.Phone, "typed number fills the gap")
	assert.Equal(t, now, snap.JoinedAt)
}
