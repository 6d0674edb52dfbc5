package notification

import (
	"context"
	"time"

	partnerRepo "spordate/database/repository/partner"
	"spordate/models"
	"spordate/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Dispatcher fires booking confirmations after the recorder has committed.
// With Redis configured the work is enqueued as an asynq task and retried
// with the queue's backoff; without it, delivery happens on a goroutine.
// In both modes a delivery failure never propagates to the caller: the
// webhook acknowledgment must stay 200 so the provider stops redelivering.
type Dispatcher struct {
	Service  NotificationService
	Partners partnerRepo.PartnerRepository
	Queue    *asynq.Client // nil when Redis is not configured
	Logger   *zap.Logger
}

// DispatchBookingConfirmed hands off payer and venue notifications.
func (d *Dispatcher) DispatchBookingConfirmed(booking *models.Booking) {
	payload := models.BookingNotification{Booking: *booking}

	if d.Queue != nil {
		task, opts, err := tasks.NewBookingNotifyTask(payload)
		if err == nil {
			if _, err = d.Queue.Enqueue(task, opts...); err == nil {
				return
			}
		}
		d.Logger.Warn("failed to enqueue notification task, sending inline",
			zap.String("bookingId", booking.ID),
			zap.Error(err))
	}

	go d.Deliver(payload)
}

// Deliver performs the actual sends inline, swallowing every failure.
// Queued deliveries go through the worker instead, where returned errors
// trigger the queue's retry; inline delivery has no second chance, so it
// only logs.
func (d *Dispatcher) Deliver(payload models.BookingNotification) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	booking := payload.Booking
	if err := d.Service.NotifyPayer(ctx, &booking); err != nil {
		d.Logger.Warn("payer notification failed",
			zap.String("bookingId", booking.ID),
			zap.Error(err))
	}

	if booking.PartnerID == "" {
		return
	}
	partner, err := d.Partners.GetByID(ctx, booking.PartnerID)
	if err != nil {
		d.Logger.Warn("venue lookup for notification failed",
			zap.String("bookingId", booking.ID),
			zap.String("partnerId", booking.PartnerID),
			zap.Error(err))
		return
	}
	if err := d.Service.NotifyVenue(ctx, &booking, partner); err != nil {
		d.Logger.Warn("venue notification failed",
			zap.String("bookingId", booking.ID),
			zap.String("partnerId", booking.PartnerID),
			zap.Error(err))
	}
}
