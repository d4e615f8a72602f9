package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullWeek() WeeklyAvailability {
	week := WeeklyAvailability{}
	for _, day := range DayNames {
		week[day] = DayAvailability{Start: "09:00", End: "17:00", Available: true}
	}
	return week
}

func TestWeeklyAvailabilityValidate(t *testing.T) {
	t.Run("full week is valid", func(t *testing.T) {
		assert.NoError(t, fullWeek().Validate())
	})

	t.Run("missing day", func(t *testing.T) {
		week := fullWeek()
		delete(week, "wednesday")
		err := week.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "wednesday")
	})

	t.Run("unavailable day skips time checks", func(t *testing.T) {
		week := fullWeek()
		week["sunday"] = DayAvailability{Available: false}
		assert.NoError(t, week.Validate())
	})

	t.Run("invalid start time", func(t *testing.T) {
		week := fullWeek()
		week["monday"] = DayAvailability{Start: "9:00", End: "17:00", Available: true}
		err := week.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "monday")
	})

	t.Run("unpadded times are invalid", func(t *testing.T) {
		// "9:00" would parse leniently but the slot math only accepts
		// zero-padded HH:MM, so it must never reach storage.
		week := fullWeek()
		week["monday"] = DayAvailability{Start: "9:00", End: "9:30", Available: true}
		err := week.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HH:MM")
	})

	t.Run("invalid end time", func(t *testing.T) {
		week := fullWeek()
		week["monday"] = DayAvailability{Start: "09:00", End: "25:00", Available: true}
		assert.Error(t, week.Validate())
	})

	t.Run("unpadded end time", func(t *testing.T) {
		week := fullWeek()
		week["tuesday"] = DayAvailability{Start: "09:00", End: "9:30", Available: true}
		assert.Error(t, week.Validate())
	})

	t.Run("start must precede end", func(t *testing.T) {
		week := fullWeek()
		week["friday"] = DayAvailability{Start: "17:00", End: "09:00", Available: true}
		assert.Error(t, week.Validate())
	})

	t.Run("zero-length window is invalid", func(t *testing.T) {
		week := fullWeek()
		week["friday"] = DayAvailability{Start: "09:00", End: "09:00", Available: true}
		assert.Error(t, week.Validate())
	})
}

func TestWeeklyAvailabilityValueScan(t *testing.T) {
	week := fullWeek()
	week["sunday"] = DayAvailability{Available: false}

	value, err := week.Value()
	require.NoError(t, err)

	var decoded WeeklyAvailability
	require.NoError(t, decoded.Scan(value))
	assert.Equal(t, week, decoded)
}

func TestWeeklyAvailabilityValueEmpty(t *testing.T) {
	var week WeeklyAvailability
	value, err := week.Value()
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestWeeklyAvailabilityScanNil(t *testing.T) {
	week := fullWeek()
	require.NoError(t, week.Scan(nil))
	assert.Nil(t, week)
}

func TestWeeklyAvailabilityScanString(t *testing.T) {
	var week WeeklyAvailability
	require.NoError(t, week.Scan(`{"monday":{"start":"10:00","end":"18:00","available":true}}`))
	assert.Equal(t, "10:00", week["monday"].Start)
	assert.True(t, week["monday"].Available)
}
