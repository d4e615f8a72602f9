package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	StylistID uuid.UUID `json:"stylist_id" validate:"required"`
	ServiceID uuid.UUID `json:"service_id" validate:"required"`
	Date      string    `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string    `json:"start_time" validate:"required,hhmm"`
	Notes     string    `json:"notes" validate:"omitempty"`
}

// AdminCreateAppointmentRequest books on behalf of a named customer
// (call-in bookings taken at the front desk).
type AdminCreateAppointmentRequest struct {
	CustomerID uuid.UUID `json:"customer_id" validate:"required"`
	StylistID  uuid.UUID `json:"stylist_id" validate:"required"`
	ServiceID  uuid.UUID `json:"service_id" validate:"required"`
	Date       string    `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime  string    `json:"start_time" validate:"required,hhmm"`
	Notes      string    `json:"notes" validate:"omitempty"`
}

type RescheduleAppointmentRequest struct {
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" validate:"required,hhmm"`
}

// Response DTOs

type AppointmentResponse struct {
	ID         uuid.UUID         `json:"id"`
	StylistID  uuid.UUID         `json:"stylist_id"`
	CustomerID uuid.UUID         `json:"customer_id"`
	ServiceID  uuid.UUID         `json:"service_id"`
	Date       string            `json:"date"`
	StartTime  string            `json:"start_time"`
	EndTime    string            `json:"end_time,omitempty"`
	Status     string            `json:"status"`
	Notes      string            `json:"notes,omitempty"`
	Stylist    *StylistResponse  `json:"stylist,omitempty"`
	Customer   *CustomerResponse `json:"customer,omitempty"`
	Service    *ServiceResponse  `json:"service,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// AvailableSlotsResponse lists the offerable "HH:MM" start times for one
// stylist, service and date.
type AvailableSlotsResponse struct {
	StylistID uuid.UUID `json:"stylist_id"`
	ServiceID uuid.UUID `json:"service_id"`
	Date      string    `json:"date"`
	Slots     []string  `json:"slots"`
	Total     int       `json:"total"`
}
