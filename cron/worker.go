package cron

import (
	"context"
	"encoding/json"
	"fmt"

	"spordate/config"
	partnerRepo "spordate/database/repository/partner"
	"spordate/models"
	"spordate/services/notification"
	"spordate/services/tasks"
	"spordate/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitNotificationWorker runs the async notification worker in background.
// Task failures are retried by the queue with its own backoff, fully
// decoupled from the booking transaction that enqueued them.
func InitNotificationWorker(notifSvc notification.NotificationService, partners partnerRepo.PartnerRepository) {
	logger := utils.GetLogger()

	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingNotify, handleBookingNotifyTask(notifSvc, partners))

	go func() {
		logger.Info("starting notification worker")
		if err := srv.Run(mux); err != nil {
			logger.Error("notification worker stopped", zap.Error(err))
		}
	}()
}

func handleBookingNotifyTask(notifSvc notification.NotificationService, partners partnerRepo.PartnerRepository) asynq.HandlerFunc {
	logger := utils.GetLogger()

	return func(ctx context.Context, t *asynq.Task) error {
		var payload models.BookingNotification
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			// Malformed payloads will never succeed; drop instead of retrying.
			logger.Error("dropping malformed notification task", zap.Error(err))
			return nil
		}
		booking := payload.Booking

		if err := notifSvc.NotifyPayer(ctx, &booking); err != nil {
			return fmt.Errorf("payer notification for booking %s: %w", booking.ID, err)
		}

		if booking.PartnerID != "" {
			partner, err := partners.GetByID(ctx, booking.PartnerID)
			if err != nil {
				// Unknown venue is permanent; log and finish the task.
				logger.Warn("venue lookup failed, skipping venue notification",
					zap.String("bookingId", booking.ID),
					zap.String("partnerId", booking.PartnerID),
					zap.Error(err))
				return nil
			}
			if err := notifSvc.NotifyVenue(ctx, &booking, partner); err != nil {
				return fmt.Errorf("venue notification for booking %s: %w", booking.ID, err)
			}
		}
		return nil
	}
}
