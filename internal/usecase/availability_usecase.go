package usecase

import (
	"context"
	"errors"

	"salon-booking-api/internal/delivery/dto"
	"salon-booking-api/internal/domain/repository"
	"salon-booking-api/internal/scheduling"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrStylistUnavailable = errors.New("stylist has no availability configured")
	ErrServiceInactive    = errors.New("service is not active")
)

type AvailabilityUsecase interface {
	GetAvailableSlots(ctx context.Context, stylistID, serviceID uuid.UUID, date string) (*dto.AvailableSlotsResponse, error)
}

type availabilityUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	engine             *scheduling.Engine
	stylistProfileRepo repository.StylistProfileRepository
	serviceRepo        repository.ServiceRepository
	appointmentRepo    repository.AppointmentRepository
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	engine *scheduling.Engine,
	stylistProfileRepo repository.StylistProfileRepository,
	serviceRepo repository.ServiceRepository,
	appointmentRepo repository.AppointmentRepository,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:                 db,
		log:                log,
		engine:             engine,
		stylistProfileRepo: stylistProfileRepo,
		serviceRepo:        serviceRepo,
		appointmentRepo:    appointmentRepo,
	}
}

func (u *availabilityUsecase) GetAvailableSlots(ctx context.Context, stylistID, serviceID uuid.UUID, date string) (*dto.AvailableSlotsResponse, error) {
	db := u.db.WithContext(ctx)

	stylist, err := u.stylistProfileRepo.FindByUserID(db, stylistID)
	if err != nil {
		u.log.Warnf("Failed to find stylist: %+v", err)
		return nil, err
	}
	if stylist == nil || !stylist.User.IsActive {
		return nil, ErrStylistNotFound
	}

	svc, err := u.serviceRepo.FindByID(db, serviceID)
	if err != nil {
		u.log.Warnf("Failed to find service: %+v", err)
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	if !svc.IsActive {
		return nil, ErrServiceInactive
	}

	// Cancelled rows are included here; the engine skips them itself.
	appointments, err := u.appointmentRepo.FindByStylistAndDate(db, stylistID, date)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	slots, err := u.engine.AvailableSlots(date, stylist.Availability, svc.DurationMinutes, appointments, stylistID)
	if err != nil {
		return nil, err
	}

	return &dto.AvailableSlotsResponse{
		StylistID: stylistID,
		ServiceID: serviceID,
		Date:      date,
		Slots:     slots,
		Total:     len(slots),
	}, nil
}
