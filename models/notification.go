package models

// BookingNotification is the payload carried by a queued notification task
// after a booking has been durably recorded. It holds everything the worker
// needs so delivery never has to re-read the booking store.
type BookingNotification struct {
	Booking Booking `json:"booking"`
}
