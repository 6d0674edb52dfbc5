package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates the handlers wired in main so route
// registration depends on one type.
type HandlerBundle struct {
	// Checkout endpoints.
	CreateCheckoutHandler gin.HandlerFunc
	CheckoutStatusHandler gin.HandlerFunc
	PaymentWebhookHandler gin.HandlerFunc

	// Read surfaces.
	GetStatsHandler            gin.HandlerFunc
	GetConfirmedTicketsHandler gin.HandlerFunc
	ListPartnersHandler        gin.HandlerFunc
	GetPartnerHandler          gin.HandlerFunc
}
