package notification

import (
	"context"
	"fmt"

	"veranda/models"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"
)

// EmailNotificationService sends booking confirmations over SMTP.
type EmailNotificationService struct {
	dialer *gomail.Dialer
	from   string
	logger *zap.Logger
}

// NewEmailNotificationService builds an SMTP-backed notification service.
func NewEmailNotificationService(host string, port int, user, password, from string, logger *zap.Logger) *EmailNotificationService {
	return &EmailNotificationService{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   from,
		logger: logger,
	}
}

// SendBookingConfirmation emails the lead guest a booking summary.
func (s *EmailNotificationService) SendBookingConfirmation(ctx context.Context, email models.ConfirmationEmail) error {
	if email.Email == "" {
		return fmt.Errorf("confirmation email has no recipient")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email.Email)
	m.SetHeader("Subject", fmt.Sprintf("Booking confirmed — %s (%s)", email.HotelName, email.BookingID))
	m.SetBody("text/html", confirmationBody(email))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send confirmation email to %s: %w", email.Email, err)
	}

	s.logger.Info("confirmation email sent",
		zap.String("bookingId", email.BookingID),
		zap.String("to", email.Email))
	return nil
}

func confirmationBody(e models.ConfirmationEmail) string {
	return fmt.Sprintf(`<p>Dear %s,</p>
<p>Your booking at %s is confirmed.</p>
<ul>
  <li>Booking reference: <b>%s</b></li>
  <li>Room: %s</li>
  <li>Check-in: %s</li>
  <li>Check-out: %s</li>
  <li>Nights: %d</li>
  <li>Amount paid: %s %.2f</li>
</ul>
<p>We look forward to hosting you.</p>`,
		e.GuestName, e.HotelName, e.BookingID, e.RoomName,
		e.CheckIn, e.CheckOut, e.Nights, e.Currency, e.Amount)
}
