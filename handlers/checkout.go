package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"spordate/metrics"
	"spordate/models"
	"spordate/services/payment"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CheckoutHandler serves the purchase-initiation endpoints. It creates
// provider sessions and reads their status; booking finalization happens
// exclusively in the webhook path.
type CheckoutHandler struct {
	client payment.Client
	cache  *redis.Client // optional session snapshot cache, may be nil
	logger *zap.Logger
}

func NewCheckoutHandler(client payment.Client, cache *redis.Client, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{client: client, cache: cache, logger: logger}
}

// CreateCheckoutHandler validates the requested package against the
// catalog and creates a hosted payment session. The client's only job
// afterwards is redirecting the browser to the returned URL.
func (h *CheckoutHandler) CreateCheckoutHandler(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.client.CreateCheckoutSession(
		c.Request.Context(),
		models.PackageCode(req.PackageType),
		req.OriginURL,
		req.Metadata,
	)
	if err != nil {
		respondError(c, err)
		return
	}
	metrics.CheckoutSessionsCreated.Inc()

	// Cache a snapshot for the client's status poll. Presentation state
	// only; the webhook remains the single trigger for recording.
	h.cacheSnapshot(c, session)

	c.JSON(http.StatusOK, gin.H{
		"url":       session.URL,
		"sessionId": session.SessionID,
	})
}

// CheckoutStatusHandler reads the session's current state from the
// provider so the UI can update after the redirect returns. It never
// records a booking: two independent confirmation triggers would race.
func (h *CheckoutHandler) CheckoutStatusHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing session id"})
		return
	}

	session, err := h.client.GetCheckoutSession(c.Request.Context(), sessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        session.Status,
		"paymentStatus": session.PaymentStatus,
		"amountTotal":   session.AmountTotal,
		"currency":      session.Currency,
		"metadata":      session.Metadata,
	})
}

func (h *CheckoutHandler) cacheSnapshot(c *gin.Context, session *models.CheckoutSession) {
	if h.cache == nil {
		return
	}
	data, err := json.Marshal(session)
	if err != nil {
		return
	}
	if err := h.cache.Set(c.Request.Context(), "checkout:"+session.SessionID, data, 24*time.Hour).Err(); err != nil {
		h.logger.Debug("failed to cache checkout session snapshot",
			zap.String("sessionId", session.SessionID),
			zap.Error(err))
	}
}
