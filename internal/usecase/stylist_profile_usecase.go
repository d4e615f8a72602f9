package usecase

import (
	"context"
	"errors"

	"salon-booking-api/internal/converter"
	"salon-booking-api/internal/delivery/dto"
	"salon-booking-api/internal/delivery/http/middleware"
	"salon-booking-api/internal/domain/entity"
	"salon-booking-api/internal/domain/repository"
	"salon-booking-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrStylistNotFound     = errors.New("stylist not found")
	ErrStylistEmailExists  = errors.New("email already exists")
	ErrInvalidOldPassword  = errors.New("invalid old password")
	ErrInvalidAvailability = errors.New("invalid weekly availability")
)

type StylistProfileUsecase interface {
	CreateStylist(ctx context.Context, req *dto.CreateStylistRequest) (*dto.StylistResponse, error)
	GetStylist(ctx context.Context, stylistID uuid.UUID) (*dto.StylistResponse, error)
	GetAllStylists(ctx context.Context) (*dto.StylistListResponse, error)
	UpdateStylist(ctx context.Context, stylistID uuid.UUID, req *dto.UpdateStylistRequest) (*dto.StylistResponse, error)
	UpdateSelfProfile(ctx context.Context, stylistID uuid.UUID, req *dto.StylistUpdateSelfRequest) (*dto.StylistResponse, error)
	DeleteStylist(ctx context.Context, stylistID uuid.UUID) error
}

type stylistProfileUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	userRepo           repository.UserRepository
	stylistProfileRepo repository.StylistProfileRepository
	auditService       service.AuditService
}

func NewStylistProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	stylistProfileRepo repository.StylistProfileRepository,
	auditService service.AuditService,
) StylistProfileUsecase {
	return &stylistProfileUsecase{
		db:                 db,
		log:                log,
		userRepo:           userRepo,
		stylistProfileRepo: stylistProfileRepo,
		auditService:       auditService,
	}
}

func (u *stylistProfileUsecase) CreateStylist(ctx context.Context, req *dto.CreateStylistRequest) (*dto.StylistResponse, error) {
	if err := req.Availability.Validate(); err != nil {
		u.log.Warnf("Rejected stylist availability: %v", err)
		return nil, ErrInvalidAvailability
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	// Create user with stylist profile in single insert using GORM association
	profile := &entity.StylistProfile{
		PhoneNumber:  req.PhoneNumber,
		Specialties:  req.Specialties,
		Biography:    req.Biography,
		Availability: req.Availability,
		User: entity.User{
			Email:    req.Email,
			Password: string(hashedPassword),
			FullName: req.FullName,
			RoleID:   entity.RoleIDStylist,
			IsActive: true,
		},
	}

	if err := u.stylistProfileRepo.Create(tx, profile); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrStylistEmailExists
		}
		if isForeignKeyError(err, "role") {
			return nil, ErrRoleNotFound
		}
		u.log.Warnf("Failed to create stylist: %+v", err)
		return nil, err
	}

	actorID, _ := middleware.GetUserIDFromContext(ctx)
	u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionStylistCreate, "stylist_profile", profile.UserID.String(), req.Email)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.StylistToResponse(profile), nil
}

func (u *stylistProfileUsecase) GetStylist(ctx context.Context, stylistID uuid.UUID) (*dto.StylistResponse, error) {
	profile, err := u.stylistProfileRepo.FindByUserID(u.db.WithContext(ctx), stylistID)
	if err != nil {
		u.log.Warnf("Failed to find stylist: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrStylistNotFound
	}

	return converter.StylistToResponse(profile), nil
}

func (u *stylistProfileUsecase) GetAllStylists(ctx context.Context) (*dto.StylistListResponse, error) {
	profiles, err := u.stylistProfileRepo.FindAllActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find stylists: %+v", err)
		return nil, err
	}

	return &dto.StylistListResponse{
		Stylists: converter.StylistsToResponses(profiles),
		Total:    len(profiles),
	}, nil
}

func (u *stylistProfileUsecase) UpdateStylist(ctx context.Context, stylistID uuid.UUID, req *dto.UpdateStylistRequest) (*dto.StylistResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.stylistProfileRepo.FindByUserID(tx, stylistID)
	if err != nil {
		u.log.Warnf("Failed to find stylist: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrStylistNotFound
	}

	// Update fields
	if req.FullName != "" {
		profile.User.FullName = req.FullName
	}
	if req.PhoneNumber != "" {
		profile.PhoneNumber = req.PhoneNumber
	}
	if req.Specialties != "" {
		profile.Specialties = req.Specialties
	}
	if req.Biography != "" {
		profile.Biography = req.Biography
	}
	if req.Availability != nil {
		if err := req.Availability.Validate(); err != nil {
			u.log.Warnf("Rejected stylist availability: %v", err)
			return nil, ErrInvalidAvailability
		}
		profile.Availability = req.Availability
	}
	if req.IsActive != nil {
		profile.User.IsActive = *req.IsActive
	}

	if err := u.userRepo.Update(tx, &profile.User); err != nil {
		u.log.Warnf("Failed to update stylist user: %+v", err)
		return nil, err
	}
	if err := u.stylistProfileRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update stylist profile: %+v", err)
		return nil, err
	}

	actorID, _ := middleware.GetUserIDFromContext(ctx)
	u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionStylistUpdate, "stylist_profile", stylistID.String(), nil, req)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.StylistToResponse(profile), nil
}

func (u *stylistProfileUsecase) UpdateSelfProfile(ctx context.Context, stylistID uuid.UUID, req *dto.StylistUpdateSelfRequest) (*dto.StylistResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.stylistProfileRepo.FindByUserID(tx, stylistID)
	if err != nil {
		u.log.Warnf("Failed to find stylist: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrStylistNotFound
	}

	if req.PhoneNumber != "" {
		profile.PhoneNumber = req.PhoneNumber
	}
	if req.Specialties != "" {
		profile.Specialties = req.Specialties
	}
	if req.Biography != "" {
		profile.Biography = req.Biography
	}
	if req.Availability != nil {
		if err := req.Availability.Validate(); err != nil {
			u.log.Warnf("Rejected stylist availability: %v", err)
			return nil, ErrInvalidAvailability
		}
		profile.Availability = req.Availability
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
		if err := u.userRepo.Update(tx, &profile.User); err != nil {
			u.log.Warnf("Failed to update stylist user: %+v", err)
			return nil, err
		}
	}

	if err := u.stylistProfileRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update stylist profile: %+v", err)
		return nil, err
	}

	u.auditService.LogUpdate(ctx, tx, &stylistID, entity.AuditActionProfileUpdate, "stylist_profile", stylistID.String(), nil, nil)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.StylistToResponse(profile), nil
}

func (u *stylistProfileUsecase) DeleteStylist(ctx context.Context, stylistID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.stylistProfileRepo.FindByUserID(tx, stylistID)
	if err != nil {
		u.log.Warnf("Failed to find stylist: %+v", err)
		return err
	}
	if profile == nil {
		return ErrStylistNotFound
	}

	// Deactivate rather than hard-delete: history and past appointments
	// keep referencing the account.
	profile.User.IsActive = false
	if err := u.userRepo.Update(tx, &profile.User); err != nil {
		u.log.Warnf("Failed to deactivate stylist: %+v", err)
		return err
	}

	actorID, _ := middleware.GetUserIDFromContext(ctx)
	u.auditService.LogDelete(ctx, tx, &actorID, entity.AuditActionStylistDelete, "stylist_profile", stylistID.String(), profile.User.Email)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
