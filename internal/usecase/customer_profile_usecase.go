package usecase

import (
	"context"
	"errors"

	"salon-booking-api/internal/converter"
	"salon-booking-api/internal/delivery/dto"
	"salon-booking-api/internal/domain/entity"
	"salon-booking-api/internal/domain/repository"
	"salon-booking-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrCustomerNotFound = errors.New("customer not found")

type CustomerProfileUsecase interface {
	GetCustomer(ctx context.Context, customerID uuid.UUID) (*dto.CustomerResponse, error)
	GetAllCustomers(ctx context.Context) (*dto.CustomerListResponse, error)
	UpdateSelfProfile(ctx context.Context, customerID uuid.UUID, req *dto.UpdateCustomerRequest) (*dto.CustomerResponse, error)
}

type customerProfileUsecase struct {
	db                  *gorm.DB
	log                 *logrus.Logger
	userRepo            repository.UserRepository
	customerProfileRepo repository.CustomerProfileRepository
	auditService        service.AuditService
}

func NewCustomerProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	customerProfileRepo repository.CustomerProfileRepository,
	auditService service.AuditService,
) CustomerProfileUsecase {
	return &customerProfileUsecase{
		db:                  db,
		log:                 log,
		userRepo:            userRepo,
		customerProfileRepo: customerProfileRepo,
		auditService:        auditService,
	}
}

func (u *customerProfileUsecase) GetCustomer(ctx context.Context, customerID uuid.UUID) (*dto.CustomerResponse, error) {
	profile, err := u.customerProfileRepo.FindByUserID(u.db.WithContext(ctx), customerID)
	if err != nil {
		u.log.Warnf("Failed to find customer: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrCustomerNotFound
	}

	return converter.CustomerToResponse(profile), nil
}

func (u *customerProfileUsecase) GetAllCustomers(ctx context.Context) (*dto.CustomerListResponse, error) {
	profiles, err := u.customerProfileRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find customers: %+v", err)
		return nil, err
	}

	return &dto.CustomerListResponse{
		Customers: converter.CustomersToResponses(profiles),
		Total:     len(profiles),
	}, nil
}

func (u *customerProfileUsecase) UpdateSelfProfile(ctx context.Context, customerID uuid.UUID, req *dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.customerProfileRepo.FindByUserID(tx, customerID)
	if err != nil {
		u.log.Warnf("Failed to find customer: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrCustomerNotFound
	}

	if req.FullName != "" {
		profile.User.FullName = req.FullName
	}
	if req.PhoneNumber != "" {
		profile.PhoneNumber = req.PhoneNumber
	}

	// Password change requires the current one
	if req.NewPassword != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(profile.User.Password), []byte(req.OldPassword)); err != nil {
			return nil, ErrInvalidOldPassword
		}
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		profile.User.Password = string(hashedPassword)
	}

	if err := u.userRepo.Update(tx, &profile.User); err != nil {
		u.log.Warnf("Failed to update customer user: %+v", err)
		return nil, err
	}
	if err := u.customerProfileRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update customer profile: %+v", err)
		return nil, err
	}

	u.auditService.LogUpdate(ctx, tx, &customerID, entity.AuditActionProfileUpdate, "customer_profile", customerID.String(), nil, nil)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.CustomerToResponse(profile), nil
}
