package booking

import (
	"context"
	"errors"
	"time"

	bookingRepo "spordate/database/repository/booking"
	"spordate/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RecordInput carries the confirmed-payment details the recorder persists.
type RecordInput struct {
	SessionID   string
	PayerID     string
	PayerEmail  string
	ProfileID   int
	ProfileName string
	PartnerID   string
	PackageCode string
	Amount      float64
	Currency    string
}

// Recorder persists exactly one booking and exactly one stats delta per
// completed checkout session, however many times the completion event is
// delivered.
type Recorder interface {
	RecordBooking(ctx context.Context, input RecordInput) (*models.RecordResult, error)
	GetStats(ctx context.Context) (*models.GlobalStats, error)
	GetConfirmedTickets(ctx context.Context) ([]string, error)
}

// DefaultRecorder tries the primary store first and falls back to the
// local store when the primary is unreachable or not configured.
type DefaultRecorder struct {
	Primary  bookingRepo.BookingRepository // nil when no database configured
	Fallback bookingRepo.BookingRepository
	Logger   *zap.Logger
}

// RecordBooking builds the booking record and writes it through whichever
// backend is available. Which backend served the write is reported so
// callers can surface sync confidence, but it never blocks the flow.
func (r *DefaultRecorder) RecordBooking(ctx context.Context, input RecordInput) (*models.RecordResult, error) {
	if input.SessionID == "" {
		return nil, errors.New("record booking: session id is required")
	}

	booking := &models.Booking{
		ID:          uuid.New().String(),
		SessionID:   input.SessionID,
		PayerID:     input.PayerID,
		PayerEmail:  input.PayerEmail,
		ProfileID:   input.ProfileID,
		ProfileName: input.ProfileName,
		PartnerID:   input.PartnerID,
		PackageCode: input.PackageCode,
		Amount:      input.Amount,
		Currency:    input.Currency,
		Status:      models.BookingConfirmed,
		CreatedAt:   time.Now(),
	}

	var primaryErr error
	if r.Primary != nil {
		outcome, err := r.Primary.RecordBooking(ctx, booking)
		if err == nil {
			return toResult(outcome, models.BackendPrimary), nil
		}
		primaryErr = err
		r.Logger.Warn("primary booking write failed, using fallback store",
			zap.String("sessionId", input.SessionID),
			zap.Error(err))
	}

	outcome, err := r.Fallback.RecordBooking(ctx, booking)
	if err != nil {
		r.Logger.Error("booking lost on both backends, manual reconciliation required",
			zap.String("sessionId", input.SessionID),
			zap.String("package", input.PackageCode),
			zap.Float64("amount", input.Amount),
			zap.NamedError("primaryErr", primaryErr),
			zap.Error(err))
		return nil, &PersistenceError{SessionID: input.SessionID, PrimaryErr: primaryErr, FallbackErr: err}
	}
	return toResult(outcome, models.BackendFallback), nil
}

// GetStats reads the aggregate counters through the active backend.
func (r *DefaultRecorder) GetStats(ctx context.Context) (*models.GlobalStats, error) {
	if r.Primary != nil {
		stats, err := r.Primary.GetStats(ctx)
		if err == nil {
			return stats, nil
		}
		r.Logger.Warn("primary stats read failed, using fallback store", zap.Error(err))
	}
	return r.Fallback.GetStats(ctx)
}

// GetConfirmedTickets reads confirmed booking ids through the active backend.
func (r *DefaultRecorder) GetConfirmedTickets(ctx context.Context) ([]string, error) {
	if r.Primary != nil {
		tickets, err := r.Primary.GetConfirmedTickets(ctx)
		if err == nil {
			return tickets, nil
		}
		r.Logger.Warn("primary tickets read failed, using fallback store", zap.Error(err))
	}
	return r.Fallback.GetConfirmedTickets(ctx)
}

func toResult(outcome *models.RecordOutcome, backend models.Backend) *models.RecordResult {
	return &models.RecordResult{
		Booking:         outcome.Booking,
		TotalRevenue:    outcome.TotalRevenue,
		Backend:         backend,
		AlreadyRecorded: outcome.AlreadyRecorded,
	}
}
