package repository

import (
	"salon-booking-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerProfileRepository interface {
	Create(db *gorm.DB, profile *entity.CustomerProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.CustomerProfile, error)
	FindAll(db *gorm.DB) ([]entity.CustomerProfile, error)
	Update(db *gorm.DB, profile *entity.CustomerProfile) error
}
