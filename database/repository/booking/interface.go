package bookingRepo

import (
	"context"

	"spordate/models"
)

// RevenueBaseline seeds the revenue counter when the stats singleton is
// first created. The same constant is used by both backends so the primary
// and fallback paths report comparable aggregates.
const RevenueBaseline = 1250.0

// BookingRepository is the single seam over the booking store. Callers
// never branch on backend type themselves; the implementation is selected
// once at startup from configuration.
type BookingRepository interface {
	// RecordBooking persists a booking and applies the aggregate delta.
	// It deduplicates on the booking's session ID: a duplicate returns the
	// previously stored booking with AlreadyRecorded set and applies no
	// second stats delta.
	RecordBooking(ctx context.Context, booking *models.Booking) (*models.RecordOutcome, error)

	// GetStats returns the aggregate counters singleton.
	GetStats(ctx context.Context) (*models.GlobalStats, error)

	// GetConfirmedTickets returns the ids of confirmed bookings.
	GetConfirmedTickets(ctx context.Context) ([]string, error)
}
