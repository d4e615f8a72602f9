package repository

import (
	"salon-booking-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StylistProfileRepository interface {
	Create(db *gorm.DB, profile *entity.StylistProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.StylistProfile, error)
	FindAllActive(db *gorm.DB) ([]entity.StylistProfile, error)
	Update(db *gorm.DB, profile *entity.StylistProfile) error
	Delete(db *gorm.DB, userID uuid.UUID) (int64, error)
}
