package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusNoShow    AppointmentStatus = "no_show"
)

// Appointment represents a booked salon visit.
// StartTime and EndTime are 24-hour "HH:MM" strings; EndTime may be empty
// for legacy rows, in which case a 60-minute duration is assumed.
type Appointment struct {
	ID         uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	StylistID  uuid.UUID         `gorm:"type:uuid;not null;index" json:"stylist_id"`
	CustomerID uuid.UUID         `gorm:"type:uuid;not null;index" json:"customer_id"`
	ServiceID  uuid.UUID         `gorm:"type:uuid;not null;index" json:"service_id"`
	Date       time.Time         `gorm:"type:date;not null;index" json:"date"`
	StartTime  string            `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime    string            `gorm:"type:varchar(5)" json:"end_time,omitempty"`
	Status     AppointmentStatus `gorm:"type:varchar(20);not null;default:'confirmed';index" json:"status"`
	Notes      string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt  time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Stylist  StylistProfile  `gorm:"foreignKey:StylistID" json:"stylist,omitempty"`
	Customer CustomerProfile `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Service  Service         `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// DateString returns the appointment date as ISO "YYYY-MM-DD".
func (a *Appointment) DateString() string {
	return a.Date.Format("2006-01-02")
}

// IsCancelled checks if the appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// IsConfirmed checks if the appointment is confirmed
func (a *Appointment) IsConfirmed() bool {
	return a.Status == AppointmentStatusConfirmed
}

// Cancel changes appointment status to cancelled
func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCancelled
}

// Complete changes appointment status to completed
func (a *Appointment) Complete() {
	a.Status = AppointmentStatusCompleted
}

// MarkNoShow changes appointment status to no_show
func (a *Appointment) MarkNoShow() {
	a.Status = AppointmentStatusNoShow
}
