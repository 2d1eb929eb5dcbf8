package timeslot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinutes(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"10:30", 630, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"09:60", 0, true},
		{"9", 0, true},
		{"", 0, true},
		{"ab:cd", 0, true},
	}

	for _, tt := range tests {
		got, err := Minutes(tt.input)
		if tt.wantErr {
			require.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		dateA, startA, endA        string
		dateB, startB, endB        string
		want                       bool
	}{
		{"partial overlap", "2025-03-10", "09:00", "11:00", "2025-03-10", "10:30", "12:00", true},
		{"contained span", "2025-03-10", "09:00", "17:00", "2025-03-10", "10:00", "11:00", true},
		{"identical span", "2025-03-10", "09:00", "11:00", "2025-03-10", "09:00", "11:00", true},
		{"back to back", "2025-03-10", "09:00", "11:00", "2025-03-10", "11:00", "12:00", false},
		{"disjoint", "2025-03-10", "09:00", "10:00", "2025-03-10", "14:00", "15:00", false},
		{"different dates", "2025-03-10", "09:00", "11:00", "2025-03-11", "09:00", "11:00", false},
		{"unparseable time", "2025-03-10", "nine", "11:00", "2025-03-10", "09:00", "11:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.dateA, tt.startA, tt.endA, tt.dateB, tt.startB, tt.endB)
			assert.Equal(t, tt.want, got)

			// Overlap is symmetric.
			mirror := Overlaps(tt.dateB, tt.startB, tt.endB, tt.dateA, tt.startA, tt.endA)
			assert.Equal(t, got, mirror, "overlap must be symmetric")
		})
	}
}
