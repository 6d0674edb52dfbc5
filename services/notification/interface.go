package notification

import (
	"context"

	"spordate/models"
)

// NotificationService sends best-effort confirmations after a booking is
// durably recorded. Implementations may fail; callers at the dispatch
// boundary log and swallow those failures so they never reach the booking
// flow or the provider acknowledgment.
type NotificationService interface {
	NotifyPayer(ctx context.Context, booking *models.Booking) error
	NotifyVenue(ctx context.Context, booking *models.Booking, partner *models.Partner) error
}
