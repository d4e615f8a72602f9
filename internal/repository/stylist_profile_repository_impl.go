package repository

import (
	"errors"

	"salon-booking-api/internal/domain/entity"
	domainRepo "salon-booking-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type stylistProfileRepository struct{}

func NewStylistProfileRepository() domainRepo.StylistProfileRepository {
	return &stylistProfileRepository{}
}

func (r *stylistProfileRepository) Create(db *gorm.DB, profile *entity.StylistProfile) error {
	return db.Create(profile).Error
}

func (r *stylistProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.StylistProfile, error) {
	var profile entity.StylistProfile
	err := db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// FindAllActive returns profiles only for stylists whose user account is active.
func (r *stylistProfileRepository) FindAllActive(db *gorm.DB) ([]entity.StylistProfile, error) {
	var profiles []entity.StylistProfile
	err := db.
		Joins("JOIN users ON users.id = stylist_profiles.user_id").
		Where("users.is_active = ?", true).
		Preload("User").
		Order("users.full_name ASC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *stylistProfileRepository) Update(db *gorm.DB, profile *entity.StylistProfile) error {
	return db.Omit("User").Save(profile).Error
}

func (r *stylistProfileRepository) Delete(db *gorm.DB, userID uuid.UUID) (int64, error) {
	affected := db.Where("user_id = ?", userID).Delete(&entity.StylistProfile{})
	return affected.RowsAffected, affected.Error
}
