package repository

import (
	"salon-booking-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByStylistAndDate(db *gorm.DB, stylistID uuid.UUID, date string) ([]entity.Appointment, error)
	FindByCustomerID(db *gorm.DB, customerID uuid.UUID) ([]entity.Appointment, error)
	FindAll(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	FindConfirmedByDate(db *gorm.DB, date string) ([]entity.Appointment, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	CancelAppointment(db *gorm.DB, id uuid.UUID) (int64, error)
	UpdateStatus(db *gorm.DB, id uuid.UUID, from, to entity.AppointmentStatus) (int64, error)
}
