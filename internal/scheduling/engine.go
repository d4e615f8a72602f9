package scheduling

import (
	"fmt"
	"strings"
	"time"

	"salon-booking-api/internal/domain/entity"

	"github.com/google/uuid"
)

const (
	// DefaultSlotInterval is the grid on which candidate start times are
	// generated, in minutes. It is a booking policy, not derived from
	// service duration: a 15-minute service still only gets half-hour
	// starts under the default.
	DefaultSlotInterval = 30

	// DefaultAppointmentDuration is the assumed length, in minutes, of an
	// appointment whose stored end time is missing.
	DefaultAppointmentDuration = 60
)

// Config tunes the engine. Zero values fall back to defaults.
type Config struct {
	// SlotInterval is the candidate grid step in minutes.
	SlotInterval int
	// Location fixes the timezone in which calendar dates are interpreted
	// when deriving the day of week, so midnight boundaries cannot shift
	// a date onto the wrong weekday.
	Location *time.Location
}

// Engine computes offerable appointment slots and validates proposed
// bookings against existing ones. It is pure and stateless: every method
// is a function of its arguments only, safe for concurrent use.
//
// The engine does not guard against concurrent bookings of the same slot;
// the storage layer must ensure at most one non-cancelled appointment per
// stylist, date and overlapping interval.
type Engine struct {
	slotInterval int
	location     *time.Location
}

func NewEngine(cfg Config) *Engine {
	interval := cfg.SlotInterval
	if interval <= 0 {
		interval = DefaultSlotInterval
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	return &Engine{
		slotInterval: interval,
		location:     loc,
	}
}

// SlotInterval returns the candidate grid step in minutes.
func (e *Engine) SlotInterval() int {
	return e.slotInterval
}

// DayName returns the lowercase English weekday name of an ISO
// "YYYY-MM-DD" date, interpreted in the engine's configured location.
func (e *Engine) DayName(date string) (string, error) {
	parsed, err := time.ParseInLocation("2006-01-02", date, e.location)
	if err != nil {
		return "", fmt.Errorf("invalid date %q, use YYYY-MM-DD", date)
	}
	return strings.ToLower(parsed.Weekday().String()), nil
}

// IsSlotAvailable reports whether an appointment of durationMinutes
// starting at start would conflict with any existing appointment for the
// given stylist and date. Appointments for other stylists or dates and
// cancelled appointments never conflict. An existing appointment without a
// stored end time is assumed to run DefaultAppointmentDuration minutes.
//
// Callers re-validating an appointment that is being edited must exclude
// it from appointments, or it will conflict with itself.
func (e *Engine) IsSlotAvailable(start string, durationMinutes int, appointments []entity.Appointment, stylistID uuid.UUID, date string) (bool, error) {
	proposedStart, err := TimeToMinutes(start)
	if err != nil {
		return false, err
	}
	if durationMinutes <= 0 {
		return false, fmt.Errorf("duration must be positive, got %d", durationMinutes)
	}
	proposedEnd := proposedStart + durationMinutes
	if proposedEnd >= MinutesPerDay {
		return false, fmt.Errorf("appointment starting at %s with %d minute duration crosses midnight", start, durationMinutes)
	}

	for i := range appointments {
		appt := &appointments[i]
		if appt.StylistID != stylistID || appt.DateString() != date || appt.IsCancelled() {
			continue
		}

		apptStart, err := TimeToMinutes(appt.StartTime)
		if err != nil {
			return false, fmt.Errorf("appointment %s has invalid start time: %w", appt.ID, err)
		}
		apptEnd := apptStart + DefaultAppointmentDuration
		if appt.EndTime != "" {
			apptEnd, err = TimeToMinutes(appt.EndTime)
			if err != nil {
				return false, fmt.Errorf("appointment %s has invalid end time: %w", appt.ID, err)
			}
		}

		if RangesOverlap(proposedStart, proposedEnd, apptStart, apptEnd) {
			return false, nil
		}
	}
	return true, nil
}

// AvailableSlots enumerates every "HH:MM" start time legally offerable on
// date for a service of durationMinutes, given the stylist's weekly
// availability and the existing appointments. Candidates step along the
// slot interval grid from the day's opening time; a candidate survives
// only if the full service fits before the day's closing time and does not
// conflict with a non-cancelled appointment. The result is in ascending
// order and deterministic: same inputs, same slots.
func (e *Engine) AvailableSlots(date string, availability entity.WeeklyAvailability, durationMinutes int, appointments []entity.Appointment, stylistID uuid.UUID) ([]string, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %d", durationMinutes)
	}

	dayName, err := e.DayName(date)
	if err != nil {
		return nil, err
	}

	day, ok := availability[dayName]
	if !ok || !day.Available {
		return []string{}, nil
	}

	dayStart, err := TimeToMinutes(day.Start)
	if err != nil {
		return nil, fmt.Errorf("availability for %s has invalid start time: %w", dayName, err)
	}
	dayEnd, err := TimeToMinutes(day.End)
	if err != nil {
		return nil, fmt.Errorf("availability for %s has invalid end time: %w", dayName, err)
	}

	slots := []string{}
	for candidate := dayStart; candidate < dayEnd; candidate += e.slotInterval {
		// The service must fit entirely within working hours.
		if candidate+durationMinutes > dayEnd {
			continue
		}

		start, err := MinutesToTime(candidate)
		if err != nil {
			return nil, err
		}

		free, err := e.IsSlotAvailable(start, durationMinutes, appointments, stylistID, date)
		if err != nil {
			return nil, err
		}
		if free {
			slots = append(slots, start)
		}
	}
	return slots, nil
}
