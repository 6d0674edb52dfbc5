package booking

import (
	"context"
	"errors"
	"testing"

	bookingRepo "spordate/database/repository/booking"
	"spordate/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// failingRepo simulates an unreachable backend.
type failingRepo struct{}

func (failingRepo) RecordBooking(context.Context, *models.Booking) (*models.RecordOutcome, error) {
	return nil, errors.New("connection refused")
}

func (failingRepo) GetStats(context.Context) (*models.GlobalStats, error) {
	return nil, errors.New("connection refused")
}

func (failingRepo) GetConfirmedTickets(context.Context) ([]string, error) {
	return nil, errors.New("connection refused")
}

func duoInput(sessionID string) RecordInput {
	return RecordInput{
		SessionID:   sessionID,
		PayerID:     "payer-1",
		PayerEmail:  "payer@example.com",
		ProfileID:   42,
		ProfileName: "Camille",
		PackageCode: "duo",
		Amount:      50.00,
		Currency:    "eur",
	}
}

func TestRecordBookingWithoutPrimary(t *testing.T) {
	recorder := &DefaultRecorder{
		Fallback: bookingRepo.NewMemoryBookingRepo(),
		Logger:   zap.NewNop(),
	}

	result, err := recorder.RecordBooking(context.Background(), duoInput("cs_1"))
	require.NoError(t, err)

	assert.Equal(t, models.BackendFallback, result.Backend)
	assert.False(t, result.AlreadyRecorded)
	assert.Equal(t, models.BookingConfirmed, result.Booking.Status)
	assert.InDelta(t, 50.00, result.Booking.Amount, 0.001)
	assert.InDelta(t, bookingRepo.RevenueBaseline+50.00, result.TotalRevenue, 0.001)
}

// When the primary store is unreachable the write must still land, in the
// fallback, and the caller must learn which backend served it.
func TestRecordBookingFallsBackWhenPrimaryFails(t *testing.T) {
	recorder := &DefaultRecorder{
		Primary:  failingRepo{},
		Fallback: bookingRepo.NewMemoryBookingRepo(),
		Logger:   zap.NewNop(),
	}
	ctx := context.Background()

	before, err := recorder.GetStats(ctx)
	require.NoError(t, err)

	result, err := recorder.RecordBooking(ctx, duoInput("cs_fb"))
	require.NoError(t, err)
	assert.Equal(t, models.BackendFallback, result.Backend)

	after, err := recorder.GetStats(ctx)
	require.NoError(t, err)
	assert.InDelta(t, before.TotalRevenue+50.00, after.TotalRevenue, 0.001)
}

func TestRecordBookingDuplicateSession(t *testing.T) {
	recorder := &DefaultRecorder{
		Fallback: bookingRepo.NewMemoryBookingRepo(),
		Logger:   zap.NewNop(),
	}
	ctx := context.Background()

	first, err := recorder.RecordBooking(ctx, duoInput("cs_dup"))
	require.NoError(t, err)

	second, err := recorder.RecordBooking(ctx, duoInput("cs_dup"))
	require.NoError(t, err)
	assert.True(t, second.AlreadyRecorded)
	assert.Equal(t, first.Booking.ID, second.Booking.ID)

	stats, err := recorder.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalBookings)
}

func TestRecordBookingBothBackendsFail(t *testing.T) {
	recorder := &DefaultRecorder{
		Primary:  failingRepo{},
		Fallback: failingRepo{},
		Logger:   zap.NewNop(),
	}

	_, err := recorder.RecordBooking(context.Background(), duoInput("cs_lost"))

	var persistenceErr *PersistenceError
	require.True(t, errors.As(err, &persistenceErr))
	assert.Equal(t, "cs_lost", persistenceErr.SessionID)
}

func TestRecordBookingRequiresSessionID(t *testing.T) {
	recorder := &DefaultRecorder{
		Fallback: bookingRepo.NewMemoryBookingRepo(),
		Logger:   zap.NewNop(),
	}

	_, err := recorder.RecordBooking(context.Background(), RecordInput{Amount: 50.00})
	require.Error(t, err)
}
