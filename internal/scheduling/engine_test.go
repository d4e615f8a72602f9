package scheduling

import (
	"testing"
	"time"

	"salon-booking-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testStylistID  = uuid.MustParse("6f1c7c0a-9b0e-4a3e-8e3f-0c2cd2f3a111")
	otherStylistID = uuid.MustParse("b48a2f44-1d7a-4d1b-9be1-55e8d9a4b222")
)

// mondayDate is a Monday; sundayDate the Sunday before it.
const (
	mondayDate = "2025-06-09"
	sundayDate = "2025-06-08"
)

func testAppointment(stylistID uuid.UUID, date, start, end string, status entity.AppointmentStatus) entity.Appointment {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return entity.Appointment{
		ID:        uuid.New(),
		StylistID: stylistID,
		Date:      parsed,
		StartTime: start,
		EndTime:   end,
		Status:    status,
	}
}

func weekdayAvailability(start, end string) entity.WeeklyAvailability {
	availability := entity.WeeklyAvailability{}
	for _, day := range entity.DayNames {
		switch day {
		case "saturday", "sunday":
			availability[day] = entity.DayAvailability{Available: false}
		default:
			availability[day] = entity.DayAvailability{Start: start, End: end, Available: true}
		}
	}
	return availability
}

func TestEngineDayName(t *testing.T) {
	engine := NewEngine(Config{})

	day, err := engine.DayName(mondayDate)
	require.NoError(t, err)
	assert.Equal(t, "monday", day)

	day, err = engine.DayName(sundayDate)
	require.NoError(t, err)
	assert.Equal(t, "sunday", day)

	_, err = engine.DayName("09-06-2025")
	require.Error(t, err)
}

func TestIsSlotAvailable(t *testing.T) {
	engine := NewEngine(Config{})
	confirmed := testAppointment(testStylistID, mondayDate, "09:00", "10:00", entity.AppointmentStatusConfirmed)

	tests := []struct {
		name         string
		start        string
		duration     int
		appointments []entity.Appointment
		stylistID    uuid.UUID
		date         string
		want         bool
	}{
		{
			name:      "no appointments",
			start:     "09:00",
			duration:  60,
			stylistID: testStylistID,
			date:      mondayDate,
			want:      true,
		},
		{
			name:         "exact overlap blocks",
			start:        "09:00",
			duration:     60,
			appointments: []entity.Appointment{confirmed},
			stylistID:    testStylistID,
			date:         mondayDate,
			want:         false,
		},
		{
			name:         "mid appointment overlap blocks",
			start:        "09:30",
			duration:     30,
			appointments: []entity.Appointment{confirmed},
			stylistID:    testStylistID,
			date:         mondayDate,
			want:         false,
		},
		{
			name:         "back to back after is free",
			start:        "10:00",
			duration:     30,
			appointments: []entity.Appointment{confirmed},
			stylistID:    testStylistID,
			date:         mondayDate,
			want:         true,
		},
		{
			name:         "back to back before is free",
			start:        "08:00",
			duration:     60,
			appointments: []entity.Appointment{confirmed},
			stylistID:    testStylistID,
			date:         mondayDate,
			want:         true,
		},
		{
			name:         "cancelled appointment never conflicts",
			start:        "09:00",
			duration:     60,
			appointments: []entity.Appointment{testAppointment(testStylistID, mondayDate, "09:00", "10:00", entity.AppointmentStatusCancelled)},
			stylistID:    testStylistID,
			date:         mondayDate,
			want:         true,
		},
		{
			name:         "completed appointment still blocks",
			start:        "09:00",
			duration:     60,
			appointments: []entity.Appointment{testAppointment(testStylistID, mondayDate, "09:00", "10:00", entity.AppointmentStatusCompleted)},
			stylistID:    testStylistID,
			date:         mondayDate,
			want:         false,
		},
		{
			name:         "no show appointment still blocks",
			start:        "09:00",
			duration:     60,
			appointments: []entity.Appointment{testAppointment(testStylistID, mondayDate, "09:00", "10:00", entity.AppointmentStatusNoShow)},
			stylistID:    testStylistID,
			date:         mondayDate,
			want:         false,
		},
		{
			name:         "other stylist does not conflict",
			start:        "09:00",
			duration:     60,
			appointments: []entity.Appointment{confirmed},
			stylistID:    otherStylistID,
			date:         mondayDate,
			want:         true,
		},
		{
			name:         "other date does not conflict",
			start:        "09:00",
			duration:     60,
			appointments: []entity.Appointment{confirmed},
			stylistID:    testStylistID,
			date:         "2025-06-10",
			want:         true,
		},
		{
			name:         "missing end time assumes one hour",
			start:        "09:45",
			duration:     30,
			appointments: []entity.Appointment{testAppointment(testStylistID, mondayDate, "09:00", "", entity.AppointmentStatusConfirmed)},
			stylistID:    testStylistID,
			date:         mondayDate,
			want:         false,
		},
		{
			name:         "missing end time frees the next hour",
			start:        "10:00",
			duration:     30,
			appointments: []entity.Appointment{testAppointment(testStylistID, mondayDate, "09:00", "", entity.AppointmentStatusConfirmed)},
			stylistID:    testStylistID,
			date:         mondayDate,
			want:         true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.IsSlotAvailable(tt.start, tt.duration, tt.appointments, tt.stylistID, tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsSlotAvailableRejectsBadInput(t *testing.T) {
	engine := NewEngine(Config{})

	_, err := engine.IsSlotAvailable("9 o'clock", 60, nil, testStylistID, mondayDate)
	require.Error(t, err)

	_, err = engine.IsSlotAvailable("09:00", 0, nil, testStylistID, mondayDate)
	require.Error(t, err)

	_, err = engine.IsSlotAvailable("23:30", 60, nil, testStylistID, mondayDate)
	require.Error(t, err, "midnight-crossing proposal must be rejected, not wrapped")
}

func TestAvailableSlotsFullDay(t *testing.T) {
	engine := NewEngine(Config{})
	availability := weekdayAvailability("09:00", "17:00")

	slots, err := engine.AvailableSlots(mondayDate, availability, 60, nil, testStylistID)
	require.NoError(t, err)

	want := []string{
		"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
		"12:00", "12:30", "13:00", "13:30", "14:00", "14:30",
		"15:00", "15:30", "16:00",
	}
	assert.Equal(t, want, slots, "last slot is 16:00 because 16:30 + 60m would run past 17:00")
}

func TestAvailableSlotsRespectsBookings(t *testing.T) {
	engine := NewEngine(Config{})
	availability := weekdayAvailability("09:00", "17:00")
	booked := []entity.Appointment{
		testAppointment(testStylistID, mondayDate, "10:00", "11:00", entity.AppointmentStatusConfirmed),
	}

	slots, err := engine.AvailableSlots(mondayDate, availability, 60, booked, testStylistID)
	require.NoError(t, err)

	assert.Contains(t, slots, "09:00")
	assert.Contains(t, slots, "11:00")
	assert.NotContains(t, slots, "09:30", "would end 10:30, inside the booking")
	assert.NotContains(t, slots, "10:00")
	assert.NotContains(t, slots, "10:30")
}

func TestAvailableSlotsUnavailableDay(t *testing.T) {
	engine := NewEngine(Config{})
	availability := weekdayAvailability("09:00", "17:00")

	slots, err := engine.AvailableSlots(sundayDate, availability, 15, nil, testStylistID)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestAvailableSlotsMissingDayKey(t *testing.T) {
	engine := NewEngine(Config{})
	availability := entity.WeeklyAvailability{
		"monday": {Start: "09:00", End: "17:00", Available: true},
	}

	slots, err := engine.AvailableSlots(sundayDate, availability, 30, nil, testStylistID)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

// The engine never offers a slot whose service end would run past closing.
func TestAvailableSlotsFitCheck(t *testing.T) {
	engine := NewEngine(Config{})
	availability := weekdayAvailability("09:00", "12:00")

	for _, duration := range []int{15, 30, 45, 60, 90, 120} {
		slots, err := engine.AvailableSlots(mondayDate, availability, duration, nil, testStylistID)
		require.NoError(t, err)

		for _, slot := range slots {
			start, err := TimeToMinutes(slot)
			require.NoError(t, err)
			assert.LessOrEqual(t, start+duration, 12*60, "slot %s for %dm service runs past closing", slot, duration)
		}
	}
}

// Short services still land on the configured grid, not a duration grid.
func TestAvailableSlotsShortServiceKeepsGrid(t *testing.T) {
	engine := NewEngine(Config{})
	availability := weekdayAvailability("09:00", "10:00")

	slots, err := engine.AvailableSlots(mondayDate, availability, 15, nil, testStylistID)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30"}, slots)
}

func TestAvailableSlotsCustomInterval(t *testing.T) {
	engine := NewEngine(Config{SlotInterval: 15})
	availability := weekdayAvailability("09:00", "10:00")

	slots, err := engine.AvailableSlots(mondayDate, availability, 30, nil, testStylistID)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:15", "09:30"}, slots)
}

func TestAvailableSlotsDeterministic(t *testing.T) {
	engine := NewEngine(Config{})
	availability := weekdayAvailability("09:00", "17:00")
	booked := []entity.Appointment{
		testAppointment(testStylistID, mondayDate, "13:00", "14:30", entity.AppointmentStatusConfirmed),
	}

	first, err := engine.AvailableSlots(mondayDate, availability, 45, booked, testStylistID)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := engine.AvailableSlots(mondayDate, availability, 45, booked, testStylistID)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestAvailableSlotsSortedAscending(t *testing.T) {
	engine := NewEngine(Config{})
	availability := weekdayAvailability("08:00", "18:00")

	slots, err := engine.AvailableSlots(mondayDate, availability, 30, nil, testStylistID)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	for i := 1; i < len(slots); i++ {
		assert.Less(t, slots[i-1], slots[i])
	}
}
