package repository

import (
	"errors"

	"salon-booking-api/internal/domain/entity"
	domainRepo "salon-booking-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type customerProfileRepository struct{}

func NewCustomerProfileRepository() domainRepo.CustomerProfileRepository {
	return &customerProfileRepository{}
}

func (r *customerProfileRepository) Create(db *gorm.DB, profile *entity.CustomerProfile) error {
	return db.Create(profile).Error
}

func (r *customerProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.CustomerProfile, error) {
	var profile entity.CustomerProfile
	err := db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *customerProfileRepository) FindAll(db *gorm.DB) ([]entity.CustomerProfile, error) {
	var profiles []entity.CustomerProfile
	err := db.
		Joins("JOIN users ON users.id = customer_profiles.user_id").
		Preload("User").
		Order("users.full_name ASC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *customerProfileRepository) Update(db *gorm.DB, profile *entity.CustomerProfile) error {
	return db.Omit("User").Save(profile).Error
}
