package bookingRepo

import (
	"context"
	"sync"
	"time"

	"spordate/models"
)

// MemoryBookingRepo is the local fallback store used when no managed
// database is configured. It survives for the life of the process only and
// serializes every write through one mutex, so it is safe for concurrent
// handlers but explicitly not a production durability guarantee.
type MemoryBookingRepo struct {
	mu        sync.Mutex
	bookings  []*models.Booking
	bySession map[string]*models.Booking
	tickets   []string
	stats     models.GlobalStats
}

// NewMemoryBookingRepo returns an empty fallback store seeded with the
// shared revenue baseline.
func NewMemoryBookingRepo() *MemoryBookingRepo {
	return &MemoryBookingRepo{
		bySession: make(map[string]*models.Booking),
		stats: models.GlobalStats{
			TotalRevenue: RevenueBaseline,
			LastUpdated:  time.Now(),
		},
	}
}

// RecordBooking appends the booking and bumps the counters under the lock.
func (r *MemoryBookingRepo) RecordBooking(_ context.Context, booking *models.Booking) (*models.RecordOutcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.bySession[booking.SessionID]; ok {
		return &models.RecordOutcome{
			Booking:         existing,
			TotalRevenue:    r.stats.TotalRevenue,
			AlreadyRecorded: true,
		}, nil
	}

	r.bookings = append(r.bookings, booking)
	r.bySession[booking.SessionID] = booking
	if booking.Status == models.BookingConfirmed {
		r.tickets = append(r.tickets, booking.ID)
	}

	r.stats.TotalRevenue += booking.Amount
	r.stats.TotalBookings++
	r.stats.LastUpdated = time.Now()

	return &models.RecordOutcome{
		Booking:      booking,
		TotalRevenue: r.stats.TotalRevenue,
	}, nil
}

// GetStats returns a copy of the aggregate counters.
func (r *MemoryBookingRepo) GetStats(_ context.Context) (*models.GlobalStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := r.stats
	return &stats, nil
}

// GetConfirmedTickets returns the ids of confirmed bookings.
func (r *MemoryBookingRepo) GetConfirmedTickets(_ context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, len(r.tickets))
	copy(ids, r.tickets)
	return ids, nil
}
