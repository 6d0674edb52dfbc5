package handlers

import (
	"errors"
	"net/http"

	"spordate/services/booking"
	"spordate/services/payment"
	"spordate/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto the stable JSON error shape. Stack
// traces and provider internals never reach the client.
func respondError(c *gin.Context, err error) {
	var (
		validationErr  *payment.ValidationError
		configErr      *payment.ConfigurationError
		authErr        *payment.AuthenticationError
		notFoundErr    *payment.NotFoundError
		upstreamErr    *payment.UpstreamError
		persistenceErr *booking.PersistenceError
	)

	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, "invalid request", validationErr.Error())
	case errors.As(err, &authErr):
		utils.JSONError(c, http.StatusBadRequest, "webhook verification failed", authErr.Error())
	case errors.As(err, &notFoundErr):
		utils.JSONError(c, http.StatusNotFound, "not found", notFoundErr.Error())
	case errors.As(err, &configErr):
		utils.JSONError(c, http.StatusServiceUnavailable, "payment provider not configured", configErr.Error())
	case errors.As(err, &persistenceErr):
		utils.JSONError(c, http.StatusInternalServerError, "failed to record booking", "booking could not be persisted; manual reconciliation required")
	case errors.As(err, &upstreamErr):
		utils.JSONError(c, http.StatusInternalServerError, "payment provider error", "the payment provider could not process the request")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error", "an unexpected error occurred")
	}
}
