package service

import (
	"context"
	"time"

	"salon-booking-api/internal/domain/repository"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ReminderService mails customers about the next day's confirmed
// appointments on a cron schedule.
type ReminderService struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	notifications   *NotificationService
	location        *time.Location
	cron            *cron.Cron
	spec            string
}

func NewReminderService(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	notifications *NotificationService,
	location *time.Location,
	cronSpec string,
) *ReminderService {
	return &ReminderService{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		notifications:   notifications,
		location:        location,
		cron:            cron.New(cron.WithLocation(location)),
		spec:            cronSpec,
	}
}

// Start schedules the daily reminder job. Returns an error for a bad spec.
func (s *ReminderService) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.sendTomorrowReminders); err != nil {
		return err
	}
	s.cron.Start()
	s.log.Infof("Reminder job scheduled: %s", s.spec)
	return nil
}

// Stop halts the cron scheduler and waits for a running job to finish.
func (s *ReminderService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *ReminderService) sendTomorrowReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	tomorrow := time.Now().In(s.location).AddDate(0, 0, 1).Format("2006-01-02")

	appointments, err := s.appointmentRepo.FindConfirmedByDate(s.db.WithContext(ctx), tomorrow)
	if err != nil {
		s.log.Errorf("Failed to load appointments for %s: %+v", tomorrow, err)
		return
	}

	for i := range appointments {
		s.notifications.AppointmentReminder(ctx, &appointments[i])
	}

	s.log.Infof("Sent %d appointment reminders for %s", len(appointments), tomorrow)
}
