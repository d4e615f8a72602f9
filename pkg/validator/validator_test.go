package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slotRequest struct {
	Date      string `validate:"required,datetime=2006-01-02"`
	StartTime string `validate:"required,hhmm"`
}

func TestHHMMValidation(t *testing.T) {
	cv := NewValidator()

	valid := []string{"00:00", "09:30", "12:00", "23:59"}
	for _, value := range valid {
		assert.NoError(t, cv.Validate(&slotRequest{Date: "2025-06-09", StartTime: value}), value)
	}

	invalid := []string{"9:30", "24:00", "12:60", "12:5", "1230", "ab:cd", "12:30:00"}
	for _, value := range invalid {
		assert.Error(t, cv.Validate(&slotRequest{Date: "2025-06-09", StartTime: value}), value)
	}
}

func TestDateValidation(t *testing.T) {
	cv := NewValidator()

	assert.NoError(t, cv.Validate(&slotRequest{Date: "2025-12-31", StartTime: "10:00"}))
	assert.Error(t, cv.Validate(&slotRequest{Date: "31-12-2025", StartTime: "10:00"}))
	assert.Error(t, cv.Validate(&slotRequest{Date: "2025-13-01", StartTime: "10:00"}))
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&slotRequest{Date: "", StartTime: "24:30"})
	require.Error(t, err)

	formatted := cv.FormatValidationErrors(err)
	assert.Contains(t, formatted["Date"], "required")
	assert.Contains(t, formatted["StartTime"], "24-hour HH:MM")
}
