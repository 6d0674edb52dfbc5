package bookingRepo

import (
	"context"
	"sync"
	"testing"
	"time"

	"spordate/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBooking(sessionID string, amount float64) *models.Booking {
	return &models.Booking{
		ID:        "bk-" + sessionID,
		SessionID: sessionID,
		PayerID:   "payer-1",
		Amount:    amount,
		Currency:  "eur",
		Status:    models.BookingConfirmed,
		CreatedAt: time.Now(),
	}
}

func TestMemoryRepoSeedsBaseline(t *testing.T) {
	repo := NewMemoryBookingRepo()

	stats, err := repo.GetStats(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, RevenueBaseline, stats.TotalRevenue, 0.001)
	assert.Equal(t, int64(0), stats.TotalBookings)
}

func TestMemoryRepoRecordBooking(t *testing.T) {
	repo := NewMemoryBookingRepo()
	ctx := context.Background()

	outcome, err := repo.RecordBooking(ctx, newBooking("cs_1", 50.00))
	require.NoError(t, err)
	assert.False(t, outcome.AlreadyRecorded)
	assert.InDelta(t, RevenueBaseline+50.00, outcome.TotalRevenue, 0.001)

	stats, err := repo.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalBookings)

	tickets, err := repo.GetConfirmedTickets(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"bk-cs_1"}, tickets)
}

// Redelivering the same completion event must leave exactly one booking
// and exactly one stats delta.
func TestMemoryRepoDeduplicatesOnSessionID(t *testing.T) {
	repo := NewMemoryBookingRepo()
	ctx := context.Background()

	first, err := repo.RecordBooking(ctx, newBooking("cs_dup", 25.00))
	require.NoError(t, err)

	second, err := repo.RecordBooking(ctx, newBooking("cs_dup", 25.00))
	require.NoError(t, err)
	assert.True(t, second.AlreadyRecorded)
	assert.Equal(t, first.Booking.ID, second.Booking.ID)
	assert.InDelta(t, first.TotalRevenue, second.TotalRevenue, 0.001)

	stats, err := repo.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalBookings)
	assert.InDelta(t, RevenueBaseline+25.00, stats.TotalRevenue, 0.001)
}

func TestMemoryRepoConcurrentDuplicateDeliveries(t *testing.T) {
	repo := NewMemoryBookingRepo()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.RecordBooking(ctx, newBooking("cs_race", 50.00))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stats, err := repo.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalBookings)
	assert.InDelta(t, RevenueBaseline+50.00, stats.TotalRevenue, 0.001)
}

func TestMemoryRepoDistinctSessions(t *testing.T) {
	repo := NewMemoryBookingRepo()
	ctx := context.Background()

	_, err := repo.RecordBooking(ctx, newBooking("cs_a", 25.00))
	require.NoError(t, err)
	_, err = repo.RecordBooking(ctx, newBooking("cs_b", 50.00))
	require.NoError(t, err)

	stats, err := repo.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalBookings)
	assert.InDelta(t, RevenueBaseline+75.00, stats.TotalRevenue, 0.001)
}
