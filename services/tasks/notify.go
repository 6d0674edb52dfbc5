package tasks

import (
	"encoding/json"
	"time"

	"spordate/models"

	"github.com/hibiken/asynq"
)

const TypeBookingNotify = "notification:booking"

// NewBookingNotifyTask wraps a booking-notification payload for the queue.
// Retry/backoff policy lives here, decoupled from the booking transaction.
func NewBookingNotifyTask(payload models.BookingNotification) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingNotify, b)
	opts := []asynq.Option{
		asynq.MaxRetry(5),
		asynq.Timeout(30 * time.Second),
	}
	return task, opts, nil
}
