package scheduling

import (
	"fmt"
)

// MinutesPerDay bounds every time value the engine works with. All times
// are wall-clock values within a single calendar day; nothing here wraps
// past midnight.
const MinutesPerDay = 24 * 60

// TimeToMinutes parses a 24-hour "HH:MM" string into minutes since
// midnight. Malformed input is rejected with an error naming the value.
func TimeToMinutes(value string) (int, error) {
	if len(value) != 5 || value[2] != ':' {
		return 0, fmt.Errorf("invalid time %q, use HH:MM", value)
	}
	// Check the digit positions by hand; Sscanf tolerates leading
	// whitespace and stops at the first non-digit.
	for _, i := range [4]int{0, 1, 3, 4} {
		if value[i] < '0' || value[i] > '9' {
			return 0, fmt.Errorf("invalid time %q, use HH:MM", value)
		}
	}
	hour := int(value[0]-'0')*10 + int(value[1]-'0')
	minute := int(value[3]-'0')*10 + int(value[4]-'0')
	if hour > 23 || minute > 59 {
		return 0, fmt.Errorf("invalid time %q, use HH:MM", value)
	}
	return hour*60 + minute, nil
}

// MinutesToTime formats minutes since midnight as a zero-padded "HH:MM"
// string. Values outside [0, 1440) are rejected rather than wrapped, so a
// window crossing midnight surfaces as an error instead of a bogus time.
func MinutesToTime(minutes int) (string, error) {
	if minutes < 0 || minutes >= MinutesPerDay {
		return "", fmt.Errorf("minute value %d is outside a single day", minutes)
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60), nil
}

// RangesOverlap reports whether the half-open intervals [start1, end1) and
// [start2, end2) share at least one instant. Both comparisons are strict,
// so back-to-back ranges sharing only a boundary do not overlap.
func RangesOverlap(start1, end1, start2, end2 int) bool {
	return start1 < end2 && start2 < end1
}

// AppointmentEndTime returns the "HH:MM" end of an appointment starting at
// start and running for durationMinutes. Errors if the start is malformed,
// the duration is not positive, or the end would cross midnight.
func AppointmentEndTime(start string, durationMinutes int) (string, error) {
	startMinutes, err := TimeToMinutes(start)
	if err != nil {
		return "", err
	}
	if durationMinutes <= 0 {
		return "", fmt.Errorf("duration must be positive, got %d", durationMinutes)
	}
	end := startMinutes + durationMinutes
	if end >= MinutesPerDay {
		return "", fmt.Errorf("appointment starting at %s with %d minute duration crosses midnight", start, durationMinutes)
	}
	return MinutesToTime(end)
}
