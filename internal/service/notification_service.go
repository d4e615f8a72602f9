package service

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"salon-booking-api/config"
	"salon-booking-api/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// Notifier delivers a message to a recipient address.
type Notifier interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SMTPNotifier sends email via unauthenticated SMTP (Mailpit-compatible).
type SMTPNotifier struct {
	addr string
	from string
}

func NewSMTPNotifier(cfg config.SMTPConfig) *SMTPNotifier {
	from := strings.TrimSpace(cfg.From)
	if from == "" {
		from = "no-reply@salon.local"
	}
	return &SMTPNotifier{
		addr: fmt.Sprintf("%s:%s", strings.TrimSpace(cfg.Host), strings.TrimSpace(cfg.Port)),
		from: from,
	}
}

func (n *SMTPNotifier) Send(_ context.Context, to, subject, body string) error {
	// Minimal RFC 5322 message; enough for Mailpit and most SMTP relays.
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		n.from, to, subject, body,
	)
	return smtp.SendMail(n.addr, nil, n.from, []string{to}, []byte(msg))
}

// NoopNotifier drops messages; used when SMTP is disabled.
type NoopNotifier struct{}

func NewNoopNotifier() *NoopNotifier {
	return &NoopNotifier{}
}

func (n *NoopNotifier) Send(_ context.Context, _, _, _ string) error {
	return nil
}

// NotificationService formats and dispatches booking lifecycle messages to
// customers. Delivery failures are logged and swallowed: a booking must
// never fail because the mail relay is down.
type NotificationService struct {
	notifier Notifier
	log      *logrus.Logger
}

func NewNotificationService(notifier Notifier, log *logrus.Logger) *NotificationService {
	return &NotificationService{
		notifier: notifier,
		log:      log,
	}
}

func (s *NotificationService) AppointmentBooked(ctx context.Context, appointment *entity.Appointment) {
	subject := "Your appointment is confirmed"
	body := fmt.Sprintf(
		"Hi %s,\n\nYour %s with %s on %s at %s is confirmed.\n\nSee you soon!",
		appointment.Customer.User.FullName,
		appointment.Service.Name,
		appointment.Stylist.User.FullName,
		appointment.DateString(),
		appointment.StartTime,
	)
	s.send(ctx, appointment, subject, body)
}

func (s *NotificationService) AppointmentRescheduled(ctx context.Context, appointment *entity.Appointment) {
	subject := "Your appointment has been rescheduled"
	body := fmt.Sprintf(
		"Hi %s,\n\nYour %s with %s has been moved to %s at %s.",
		appointment.Customer.User.FullName,
		appointment.Service.Name,
		appointment.Stylist.User.FullName,
		appointment.DateString(),
		appointment.StartTime,
	)
	s.send(ctx, appointment, subject, body)
}

func (s *NotificationService) AppointmentCancelled(ctx context.Context, appointment *entity.Appointment) {
	subject := "Your appointment has been cancelled"
	body := fmt.Sprintf(
		"Hi %s,\n\nYour %s on %s at %s has been cancelled.",
		appointment.Customer.User.FullName,
		appointment.Service.Name,
		appointment.DateString(),
		appointment.StartTime,
	)
	s.send(ctx, appointment, subject, body)
}

func (s *NotificationService) AppointmentReminder(ctx context.Context, appointment *entity.Appointment) {
	subject := "Reminder: appointment tomorrow"
	body := fmt.Sprintf(
		"Hi %s,\n\nA reminder that your %s with %s is tomorrow, %s at %s.",
		appointment.Customer.User.FullName,
		appointment.Service.Name,
		appointment.Stylist.User.FullName,
		appointment.DateString(),
		appointment.StartTime,
	)
	s.send(ctx, appointment, subject, body)
}

func (s *NotificationService) send(ctx context.Context, appointment *entity.Appointment, subject, body string) {
	to := appointment.Customer.User.Email
	if to == "" {
		s.log.Warnf("Appointment %s has no customer email, skipping notification", appointment.ID)
		return
	}
	if err := s.notifier.Send(ctx, to, subject, body); err != nil {
		s.log.Warnf("Failed to send %q to %s: %+v", subject, to, err)
	}
}
