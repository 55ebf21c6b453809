package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStreak(t *testing.T) {
	tests := []struct {
		name    string
		records []Record
		want    int
	}{
		{name: "empty history", records: nil, want: 0},
		{
			name: "stops at first absence",
			records: []Record{
				{Date: "2024-04-04", Status: StatusPresent},
				{Date: "2024-04-03", Status: StatusPresent},
				{Date: "2024-04-02", Status: StatusAbsent},
				{Date: "2024-04-01", Status: StatusPresent},
			},
			want: 2,
		},
		{
			name: "unsorted input is sorted first",
			records: []Record{
				{Date: "2024-04-01", Status: StatusPresent},
				{Date: "2024-04-04", Status: StatusPresent},
				{Date: "2024-04-02", Status: StatusAbsent},
				{Date: "2024-04-03", Status: StatusPresent},
			},
			want: 2,
		},
		{
			name: "all present",
			records: []Record{
				{Date: "2024-04-01", Status: StatusPresent},
				{Date: "2024-04-02", Status: StatusPresent},
				{Date: "2024-04-03", Status: StatusPresent},
			},
			want: 3,
		},
		{
			name: "most recent is absent",
			records: []Record{
				{Date: "2024-04-03", Status: StatusAbsent},
				{Date: "2024-04-02", Status: StatusPresent},
			},
			want: 0,
		},
		{
			name: "duplicate dates each count",
			records: []Record{
				{Date: "2024-04-03", Status: StatusPresent},
				{Date: "2024-04-03", Status: StatusPresent},
				{Date: "2024-04-02", Status: StatusAbsent},
			},
			want: 2,
		},
		{
			name: "unknown status stops the walk",
			records: []Record{
				{Date: "2024-04-03", Status: StatusPresent},
				{Date: "2024-04-02", Status: "excused"},
				{Date: "2024-04-01", Status: StatusPresent},
			},
			want: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Streak(tt.records))
		})
	}
}

func TestStreakDoesNotMutateInput(t *testing.T) {
	records := []Record{
		{Date: "2024-04-01", Status: StatusPresent},
		{Date: "2024-04-03", Status: StatusPresent},
	}
	_ = Streak(records)
	assert.Equal(t, "2024-04-01", records[0].Date)
}
