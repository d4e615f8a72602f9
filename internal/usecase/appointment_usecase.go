package usecase

import (
	"context"
	"errors"
	"time"

	"salon-booking-api/internal/converter"
	"salon-booking-api/internal/delivery/dto"
	"salon-booking-api/internal/delivery/http/middleware"
	"salon-booking-api/internal/domain/entity"
	"salon-booking-api/internal/domain/repository"
	"salon-booking-api/internal/scheduling"
	"salon-booking-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound      = errors.New("appointment not found")
	ErrSlotUnavailable          = errors.New("time slot is not available")
	ErrAppointmentNotModifiable = errors.New("appointment can no longer be modified")
	ErrNotAppointmentOwner      = errors.New("appointment belongs to another customer")
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	AdminCreateAppointment(ctx context.Context, req *dto.AdminCreateAppointmentRequest) (*dto.AppointmentResponse, error)
	RescheduleAppointment(ctx context.Context, appointmentID uuid.UUID, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error)
	CancelAppointment(ctx context.Context, appointmentID uuid.UUID) error
	CompleteAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	MarkNoShow(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetStylistDaySheet(ctx context.Context, date string) (*dto.AppointmentListResponse, error)
	GetAllAppointments(ctx context.Context, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error)
}

type appointmentUsecase struct {
	db                  *gorm.DB
	log                 *logrus.Logger
	engine              *scheduling.Engine
	appointmentRepo     repository.AppointmentRepository
	stylistProfileRepo  repository.StylistProfileRepository
	customerProfileRepo repository.CustomerProfileRepository
	serviceRepo         repository.ServiceRepository
	slotHoldService     *service.SlotHoldService
	notificationService *service.NotificationService
	auditService        service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	engine *scheduling.Engine,
	appointmentRepo repository.AppointmentRepository,
	stylistProfileRepo repository.StylistProfileRepository,
	customerProfileRepo repository.CustomerProfileRepository,
	serviceRepo repository.ServiceRepository,
	slotHoldService *service.SlotHoldService,
	notificationService *service.NotificationService,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:                  db,
		log:                 log,
		engine:              engine,
		appointmentRepo:     appointmentRepo,
		stylistProfileRepo:  stylistProfileRepo,
		customerProfileRepo: customerProfileRepo,
		serviceRepo:         serviceRepo,
		slotHoldService:     slotHoldService,
		notificationService: notificationService,
		auditService:        auditService,
	}
}

// CreateAppointment books the authenticated customer into a slot.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	customerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrCustomerNotFound
	}
	return u.book(ctx, customerID, req.StylistID, req.ServiceID, req.Date, req.StartTime, req.Notes)
}

// AdminCreateAppointment books on behalf of a named customer (call-in
// bookings taken at the front desk).
func (u *appointmentUsecase) AdminCreateAppointment(ctx context.Context, req *dto.AdminCreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	return u.book(ctx, req.CustomerID, req.StylistID, req.ServiceID, req.Date, req.StartTime, req.Notes)
}

func (u *appointmentUsecase) book(ctx context.Context, customerID, stylistID, serviceID uuid.UUID, date, startTime, notes string) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	customer, err := u.customerProfileRepo.FindByUserID(db, customerID)
	if err != nil {
		u.log.Warnf("Failed to find customer: %+v", err)
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

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

	// A slot whose end would cross midnight is never offerable.
	endTime, err := scheduling.AppointmentEndTime(startTime, svc.DurationMinutes)
	if err != nil {
		return nil, ErrSlotUnavailable
	}

	// Hold the slot for the check-then-insert window so two concurrent
	// requests cannot both pass the availability check.
	holdToken, err := u.slotHoldService.Acquire(ctx, stylistID, date, startTime)
	if err != nil {
		return nil, err
	}
	defer u.slotHoldService.Release(ctx, stylistID, date, startTime, holdToken)

	if err := u.assertBookable(db, stylist, svc.DurationMinutes, date, startTime, uuid.Nil); err != nil {
		return nil, err
	}

	parsedDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, err
	}

	appointment := &entity.Appointment{
		StylistID:  stylistID,
		CustomerID: customerID,
		ServiceID:  serviceID,
		Date:       parsedDate,
		StartTime:  startTime,
		EndTime:    endTime,
		Status:     entity.AppointmentStatusConfirmed,
		Notes:      notes,
	}

	tx := db.Begin()
	defer tx.Rollback()

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		// The exclusion constraint is the final authority on overlaps.
		if isExclusionError(err) {
			return nil, ErrSlotUnavailable
		}
		// Referenced rows can vanish between the lookups above and the
		// insert; report which one, not a slot conflict.
		if isForeignKeyError(err, "stylist") {
			return nil, ErrStylistNotFound
		}
		if isForeignKeyError(err, "customer") {
			return nil, ErrCustomerNotFound
		}
		if isForeignKeyError(err, "service") {
			return nil, ErrServiceNotFound
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	actorID, _ := middleware.GetUserIDFromContext(ctx)
	u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), map[string]string{
		"stylist_id": stylistID.String(),
		"date":       date,
		"start_time": startTime,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	full, err := u.appointmentRepo.FindByID(db, appointment.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", appointment.ID, err)
		return converter.AppointmentToResponse(appointment), nil
	}

	u.notificationService.AppointmentBooked(ctx, full)

	return converter.AppointmentToResponse(full), nil
}

// RescheduleAppointment moves a confirmed appointment to a new date and
// start time, keeping the same stylist and service.
func (u *appointmentUsecase) RescheduleAppointment(ctx context.Context, appointmentID uuid.UUID, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if err := u.assertOwnership(ctx, appointment); err != nil {
		return nil, err
	}
	if !appointment.IsConfirmed() {
		return nil, ErrAppointmentNotModifiable
	}

	stylist, err := u.stylistProfileRepo.FindByUserID(db, appointment.StylistID)
	if err != nil {
		u.log.Warnf("Failed to find stylist: %+v", err)
		return nil, err
	}
	if stylist == nil {
		return nil, ErrStylistNotFound
	}

	duration := appointment.Service.DurationMinutes
	if duration <= 0 {
		duration = scheduling.DefaultAppointmentDuration
	}

	endTime, err := scheduling.AppointmentEndTime(req.StartTime, duration)
	if err != nil {
		return nil, ErrSlotUnavailable
	}

	holdToken, err := u.slotHoldService.Acquire(ctx, appointment.StylistID, req.Date, req.StartTime)
	if err != nil {
		return nil, err
	}
	defer u.slotHoldService.Release(ctx, appointment.StylistID, req.Date, req.StartTime, holdToken)

	// Exclude the appointment being moved, or it conflicts with itself.
	if err := u.assertBookable(db, stylist, duration, req.Date, req.StartTime, appointment.ID); err != nil {
		return nil, err
	}

	parsedDate, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, err
	}

	oldValue := map[string]string{
		"date":       appointment.DateString(),
		"start_time": appointment.StartTime,
	}

	appointment.Date = parsedDate
	appointment.StartTime = req.StartTime
	appointment.EndTime = endTime

	tx := db.Begin()
	defer tx.Rollback()

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		if isExclusionError(err) {
			return nil, ErrSlotUnavailable
		}
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	actorID, _ := middleware.GetUserIDFromContext(ctx)
	u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionAppointmentReschedule, "appointment", appointmentID.String(), oldValue, map[string]string{
		"date":       req.Date,
		"start_time": req.StartTime,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.notificationService.AppointmentRescheduled(ctx, appointment)

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) CancelAppointment(ctx context.Context, appointmentID uuid.UUID) error {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}
	if err := u.assertOwnership(ctx, appointment); err != nil {
		return err
	}

	tx := db.Begin()
	defer tx.Rollback()

	affected, err := u.appointmentRepo.CancelAppointment(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotModifiable
	}

	actorID, _ := middleware.GetUserIDFromContext(ctx)
	u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionAppointmentCancel, "appointment", appointmentID.String(), string(appointment.Status), string(entity.AppointmentStatusCancelled))

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	appointment.Cancel()
	u.notificationService.AppointmentCancelled(ctx, appointment)

	return nil
}

func (u *appointmentUsecase) CompleteAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	return u.transition(ctx, appointmentID, entity.AppointmentStatusCompleted, entity.AuditActionAppointmentComplete)
}

func (u *appointmentUsecase) MarkNoShow(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	return u.transition(ctx, appointmentID, entity.AppointmentStatusNoShow, entity.AuditActionAppointmentNoShow)
}

// transition moves a confirmed appointment to a terminal status.
func (u *appointmentUsecase) transition(ctx context.Context, appointmentID uuid.UUID, to entity.AppointmentStatus, auditAction string) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	// Stylists may only close out their own appointments.
	roleID, _ := middleware.GetRoleIDFromContext(ctx)
	actorID, _ := middleware.GetUserIDFromContext(ctx)
	if roleID == entity.RoleIDStylist && appointment.StylistID != actorID {
		return nil, ErrNotAppointmentOwner
	}

	tx := db.Begin()
	defer tx.Rollback()

	affected, err := u.appointmentRepo.UpdateStatus(tx, appointmentID, entity.AppointmentStatusConfirmed, to)
	if err != nil {
		u.log.Warnf("Failed to update appointment status: %+v", err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrAppointmentNotModifiable
	}

	u.auditService.LogUpdate(ctx, tx, &actorID, auditAction, "appointment", appointmentID.String(), string(entity.AppointmentStatusConfirmed), string(to))

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	appointment.Status = to
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if err := u.assertOwnership(ctx, appointment); err != nil {
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

// GetMyAppointments returns the authenticated customer's booking history,
// most recent first.
func (u *appointmentUsecase) GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	customerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrCustomerNotFound
	}

	appointments, err := u.appointmentRepo.FindByCustomerID(u.db.WithContext(ctx), customerID)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// GetStylistDaySheet returns the authenticated stylist's schedule for one
// date, in chronological order.
func (u *appointmentUsecase) GetStylistDaySheet(ctx context.Context, date string) (*dto.AppointmentListResponse, error) {
	stylistID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrStylistNotFound
	}

	appointments, err := u.appointmentRepo.FindByStylistAndDate(u.db.WithContext(ctx), stylistID, date)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetAllAppointments(ctx context.Context, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// assertBookable checks that startTime is one of the offerable slots for
// the stylist, date and duration. excludeID removes the appointment being
// rescheduled from the conflict set; pass uuid.Nil for new bookings.
func (u *appointmentUsecase) assertBookable(db *gorm.DB, stylist *entity.StylistProfile, durationMinutes int, date, startTime string, excludeID uuid.UUID) error {
	appointments, err := u.appointmentRepo.FindByStylistAndDate(db, stylist.UserID, date)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return err
	}

	if excludeID != uuid.Nil {
		filtered := appointments[:0]
		for _, appt := range appointments {
			if appt.ID != excludeID {
				filtered = append(filtered, appt)
			}
		}
		appointments = filtered
	}

	slots, err := u.engine.AvailableSlots(date, stylist.Availability, durationMinutes, appointments, stylist.UserID)
	if err != nil {
		return err
	}
	for _, slot := range slots {
		if slot == startTime {
			return nil
		}
	}
	return ErrSlotUnavailable
}

// assertOwnership allows admins through and restricts customers and
// stylists to their own appointments.
func (u *appointmentUsecase) assertOwnership(ctx context.Context, appointment *entity.Appointment) error {
	roleID, _ := middleware.GetRoleIDFromContext(ctx)
	userID, _ := middleware.GetUserIDFromContext(ctx)

	switch roleID {
	case entity.RoleIDAdmin:
		return nil
	case entity.RoleIDStylist:
		if appointment.StylistID != userID {
			return ErrNotAppointmentOwner
		}
	default:
		if appointment.CustomerID != userID {
			return ErrNotAppointmentOwner
		}
	}
	return nil
}
