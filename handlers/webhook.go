package handlers

import (
	"io"
	"net/http"
	"strconv"

	"spordate/metrics"
	"spordate/models"
	"spordate/services/booking"
	"spordate/services/notification"
	"spordate/services/payment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Provider payloads are small; anything larger is not a legitimate event.
const maxWebhookBodyBytes = int64(65536)

// WebhookHandler finalizes bookings from provider-pushed payment events.
// This path is the single source of truth for recording: the client-side
// status poll never writes.
type WebhookHandler struct {
	verifier payment.Verifier
	recorder booking.Recorder
	notifier *notification.Dispatcher
	logger   *zap.Logger
}

func NewWebhookHandler(verifier payment.Verifier, recorder booking.Recorder, notifier *notification.Dispatcher, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{verifier: verifier, recorder: recorder, notifier: notifier, logger: logger}
}

// PaymentWebhookHandler verifies the delivery, records the booking for a
// paid completed session, and acknowledges. Delivery is at-least-once, so
// everything downstream of verification is idempotent on the session id.
func (h *WebhookHandler) PaymentWebhookHandler(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes)
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read request body"})
		return
	}

	event, err := h.verifier.Verify(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		metrics.WebhookEventsRejected.Inc()
		respondError(c, err)
		return
	}
	metrics.WebhookEventsReceived.Inc()

	// Recognized but irrelevant events are acknowledged so the provider
	// stops redelivering them.
	if event.Type != payment.EventCheckoutCompleted || event.Session == nil {
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}
	session := event.Session
	if session.PaymentStatus != "paid" {
		h.logger.Info("completed session not paid, skipping booking",
			zap.String("sessionId", session.SessionID),
			zap.String("paymentStatus", session.PaymentStatus))
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	result, err := h.recorder.RecordBooking(c.Request.Context(), recordInputFromSession(session))
	if err != nil {
		respondError(c, err)
		return
	}
	metrics.BookingsRecorded.WithLabelValues(string(result.Backend)).Inc()

	if result.AlreadyRecorded {
		h.logger.Info("duplicate completion event, booking already recorded",
			zap.String("sessionId", session.SessionID),
			zap.String("bookingId", result.Booking.ID))
	} else {
		h.logger.Info("booking recorded",
			zap.String("sessionId", session.SessionID),
			zap.String("bookingId", result.Booking.ID),
			zap.Float64("amount", result.Booking.Amount),
			zap.String("backend", string(result.Backend)))
		h.notifier.DispatchBookingConfirmed(result.Booking)
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

func recordInputFromSession(session *models.CheckoutSession) booking.RecordInput {
	meta := session.Metadata
	profileID, _ := strconv.Atoi(meta["profileId"])

	amount := float64(session.AmountTotal) / 100
	if session.AmountTotal == 0 {
		// Older sessions carried the computed amount in metadata only.
		amount, _ = strconv.ParseFloat(meta["amount"], 64)
	}

	payerID := meta["payerId"]
	if payerID == "" {
		payerID = session.PayerEmail
	}

	return booking.RecordInput{
		SessionID:   session.SessionID,
		PayerID:     payerID,
		PayerEmail:  session.PayerEmail,
		ProfileID:   profileID,
		ProfileName: meta["profileName"],
		PartnerID:   meta["partnerId"],
		PackageCode: meta["packageType"],
		Amount:      amount,
		Currency:    session.Currency,
	}
}
