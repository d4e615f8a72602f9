package scheduling

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeToMinutes(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{input: "00:00", want: 0},
		{input: "00:01", want: 1},
		{input: "09:00", want: 540},
		{input: "09:30", want: 570},
		{input: "12:00", want: 720},
		{input: "23:59", want: 1439},
		{input: "24:00", wantErr: true},
		{input: "09:60", wantErr: true},
		{input: "9:00", wantErr: true},
		{input: " 9:00", wantErr: true},
		{input: "09:3x", wantErr: true},
		{input: "0x:30", wantErr: true},
		{input: "09: 3", wantErr: true},
		{input: "09:00:00", wantErr: true},
		{input: "0900", wantErr: true},
		{input: "ab:cd", wantErr: true},
		{input: "", wantErr: true},
		{input: "-1:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := TimeToMinutes(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "HH:MM")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMinutesToTime(t *testing.T) {
	tests := []struct {
		input   int
		want    string
		wantErr bool
	}{
		{input: 0, want: "00:00"},
		{input: 1, want: "00:01"},
		{input: 540, want: "09:00"},
		{input: 605, want: "10:05"},
		{input: 1439, want: "23:59"},
		{input: 1440, wantErr: true},
		{input: -1, wantErr: true},
		{input: 2000, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d", tt.input), func(t *testing.T) {
			got, err := MinutesToTime(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Every valid minute value survives a round trip through both conversions.
func TestTimeConversionRoundTrip(t *testing.T) {
	for m := 0; m < MinutesPerDay; m++ {
		formatted, err := MinutesToTime(m)
		require.NoError(t, err)

		back, err := TimeToMinutes(formatted)
		require.NoError(t, err)
		require.Equal(t, m, back, "round trip broke for %d (%s)", m, formatted)
	}
}

func TestRangesOverlap(t *testing.T) {
	mins := func(s string) int {
		m, err := TimeToMinutes(s)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name                       string
		start1, end1, start2, end2 string
		want                       bool
	}{
		{name: "identical ranges overlap", start1: "09:00", end1: "10:00", start2: "09:00", end2: "10:00", want: true},
		{name: "back to back do not overlap", start1: "09:00", end1: "10:00", start2: "10:00", end2: "11:00", want: false},
		{name: "back to back reversed do not overlap", start1: "10:00", end1: "11:00", start2: "09:00", end2: "10:00", want: false},
		{name: "partial overlap", start1: "09:00", end1: "10:00", start2: "09:30", end2: "10:30", want: true},
		{name: "contained range overlaps", start1: "09:00", end1: "12:00", start2: "10:00", end2: "11:00", want: true},
		{name: "containing range overlaps", start1: "10:00", end1: "11:00", start2: "09:00", end2: "12:00", want: true},
		{name: "disjoint ranges", start1: "09:00", end1: "10:00", start2: "14:00", end2: "15:00", want: false},
		{name: "one minute overlap", start1: "09:00", end1: "10:01", start2: "10:00", end2: "11:00", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RangesOverlap(mins(tt.start1), mins(tt.end1), mins(tt.start2), mins(tt.end2))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAppointmentEndTime(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		duration int
		want     string
		wantErr  bool
	}{
		{name: "hour service", start: "09:00", duration: 60, want: "10:00"},
		{name: "half hour service", start: "09:30", duration: 30, want: "10:00"},
		{name: "long service", start: "10:15", duration: 90, want: "11:45"},
		{name: "crosses midnight", start: "23:30", duration: 60, wantErr: true},
		{name: "ends exactly at midnight", start: "23:00", duration: 60, wantErr: true},
		{name: "zero duration", start: "09:00", duration: 0, wantErr: true},
		{name: "negative duration", start: "09:00", duration: -30, wantErr: true},
		{name: "malformed start", start: "9am", duration: 60, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AppointmentEndTime(tt.start, tt.duration)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
