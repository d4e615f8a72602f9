package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// DayNames lists the seven weekly availability keys in calendar order.
var DayNames = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// DayAvailability is one day's working window for a stylist.
// Start and End are 24-hour "HH:MM" wall-clock strings.
type DayAvailability struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"available"`
}

// WeeklyAvailability maps lowercase English day names to working windows.
// Stored as JSONB on the stylist profile.
type WeeklyAvailability map[string]DayAvailability

// Value returns json value, implements driver.Valuer interface
func (w WeeklyAvailability) Value() (driver.Value, error) {
	if len(w) == 0 {
		return nil, nil
	}
	return json.Marshal(w)
}

// Scan scans a JSONB value, implements sql.Scanner interface
func (w *WeeklyAvailability) Scan(value interface{}) error {
	if value == nil {
		*w = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	result := WeeklyAvailability{}
	err := json.Unmarshal(bytes, &result)
	*w = result
	return err
}

// Validate checks that all seven day keys are present and that every
// available day has well-formed "HH:MM" times with start before end.
// Windows must fit within a single calendar day.
func (w WeeklyAvailability) Validate() error {
	for _, day := range DayNames {
		window, ok := w[day]
		if !ok {
			return fmt.Errorf("availability is missing day %q", day)
		}
		if !window.Available {
			continue
		}
		start, ok := clockMinutes(window.Start)
		if !ok {
			return fmt.Errorf("availability for %s has invalid start time %q, use HH:MM", day, window.Start)
		}
		end, ok := clockMinutes(window.End)
		if !ok {
			return fmt.Errorf("availability for %s has invalid end time %q, use HH:MM", day, window.End)
		}
		if start >= end {
			return fmt.Errorf("availability for %s must start before it ends", day)
		}
	}
	return nil
}

// clockMinutes converts a strict zero-padded 24-hour "HH:MM" string to
// minutes since midnight. Looser shapes like "9:00" are rejected, so
// stored availability is always parseable by the slot math downstream.
func clockMinutes(value string) (int, bool) {
	if len(value) != 5 || value[2] != ':' {
		return 0, false
	}
	for _, i := range [4]int{0, 1, 3, 4} {
		if value[i] < '0' || value[i] > '9' {
			return 0, false
		}
	}
	hour := int(value[0]-'0')*10 + int(value[1]-'0')
	minute := int(value[3]-'0')*10 + int(value[4]-'0')
	if hour > 23 || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}
