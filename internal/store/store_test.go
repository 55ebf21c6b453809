package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"academy/internal/attendance"
	"academy/internal/registration"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	s := New(dir, zap.NewNop().Sugar())
	require.NoError(t, s.EnsureFiles())
	return s, dir
}

func write(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestEnsureFilesCreatesRegistrations(t *testing.T) {
	_, dir := newTestStore(t)
	raw, err := os.ReadFile(filepath.Join(dir, "registrations.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(raw))
}

func TestAppendAndListRegistrations(t *testing.T) {
	s, _ := newTestStore(t)

	reg := registration.Registration{
		ID:        "r1",
		CreatedAt: time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC),
		FullName:  "Aisha",
		Email:     "a@x.com",
	}
	require.NoError(t, s.AppendRegistration(reg))
	require.NoError(t, s.AppendRegistration(registration.Registration{ID: "r2", FullName: "Bilal"}))

	regs := s.Registrations()
	require.Len(t, regs, 2)
	assert.Equal(t, "Aisha", regs[0].FullName)

	got, ok := s.RegistrationByID("r2")
	require.True(t, ok)
	assert.Equal(t, "Bilal", got.FullName)

	_, ok = s.RegistrationByID("nope")
	assert.False(t, ok)
}

func TestSlotsMissingFileReadsEmpty(t *testing.T) {
	s, _ := newTestStore(t)
	assert.Empty(t, s.Slots())
}

func TestSlotsCorruptFileFallsBack(t *testing.T) {
	s, dir := newTestStore(t)
	write(t, dir, "classSlots.json", "{not json")
	assert.Empty(t, s.Slots())
}

func TestSlotsParsesCatalog(t *testing.T) {
	s, dir := newTestStore(t)
	write(t, dir, "classSlots.json", `[
  {"id":"s1","name":"Evening A","days":["Monday","Wednesday"],"startTime":"18:30","timezone":"Cairo time","meetLink":"https://meet.example/a"}
]`)
	slots := s.Slots()
	require.Len(t, slots, 1)
	assert.Equal(t, "Evening A", slots[0].Name)
	assert.Equal(t, []string{"Monday", "Wednesday"}, slots[0].Days)
}

func TestStudentsAndAttendance(t *testing.T) {
	s, dir := newTestStore(t)
	write(t, dir, "students.json", `[
  {"fullName":"Aisha Bello","whatsapp":"+234801","courses":[{"courseId":"quran","courseName":"Qur'an","slotId":"s1"}]}
]`)
	write(t, dir, "attendance.json", `{
  "Aisha Bello": [{"date":"2024-04-01","status":"present"}]
}`)

	students := s.Students()
	require.Len(t, students, 1)
	assert.Equal(t, "quran", students[0].Courses[0].CourseID)

	recs := s.AttendanceFor("Aisha Bello")
	require.Len(t, recs, 1)
	assert.Equal(t, attendance.StatusPresent, recs[0].Status)
	assert.Empty(t, s.AttendanceFor("Nobody"))
}

func TestReadJSONFileBlankFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blank.json")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	v, err := ReadJSONFile(path, []int{1, 2})
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2}, v)
}
