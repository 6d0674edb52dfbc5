package notification

import (
	"context"
	"fmt"

	"spordate/models"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// EmailNotificationService delivers confirmations through the Resend API.
type EmailNotificationService struct {
	client *resend.Client
	sender string
	logger *zap.Logger
}

// NewEmailNotificationService builds the Resend-backed service. An empty
// API key yields a nil client; sends then fail with a logged error, which
// the dispatch boundary swallows like any other delivery failure.
func NewEmailNotificationService(apiKey, sender string, logger *zap.Logger) *EmailNotificationService {
	var client *resend.Client
	if apiKey != "" {
		client = resend.NewClient(apiKey)
	} else {
		logger.Warn("email provider API key not configured, notifications will be dropped")
	}
	return &EmailNotificationService{client: client, sender: sender, logger: logger}
}

// NotifyPayer emails the buyer their booking confirmation.
func (s *EmailNotificationService) NotifyPayer(ctx context.Context, booking *models.Booking) error {
	if booking.PayerEmail == "" {
		return fmt.Errorf("booking %s has no payer email", booking.ID)
	}
	subject := "Your Spordate session is confirmed"
	body := fmt.Sprintf(
		"Your booking with %s is confirmed.\n\nBooking reference: %s\nPackage: %s\nAmount: %.2f %s\n\nSee you on the field!",
		booking.ProfileName, booking.ID, booking.PackageCode, booking.Amount, booking.Currency,
	)
	return s.send(ctx, booking.PayerEmail, subject, body)
}

// NotifyVenue sends the venue an informational heads-up about the session.
func (s *EmailNotificationService) NotifyVenue(ctx context.Context, booking *models.Booking, partner *models.Partner) error {
	if partner == nil || partner.Email == "" {
		return fmt.Errorf("booking %s has no venue email to notify", booking.ID)
	}
	subject := "New Spordate booking at your venue"
	body := fmt.Sprintf(
		"A Spordate session was booked at %s (%s, %s).\n\nBooking reference: %s\nPackage: %s",
		partner.Name, partner.Address, partner.City, booking.ID, booking.PackageCode,
	)
	return s.send(ctx, partner.Email, subject, body)
}

func (s *EmailNotificationService) send(ctx context.Context, to, subject, body string) error {
	if s.client == nil {
		return fmt.Errorf("email provider not configured")
	}
	params := &resend.SendEmailRequest{
		From:    s.sender,
		To:      []string{to},
		Subject: subject,
		Text:    body,
	}
	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("resend send failed: %w", err)
	}
	s.logger.Info("notification email sent",
		zap.String("to", to),
		zap.String("emailId", sent.Id))
	return nil
}
