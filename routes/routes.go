package routes

import (
	"net/http"
	"time"

	"spordate/handlers"
	"spordate/middleware"
	"spordate/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Stripe-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCheckoutRoutes(r, hb)
	RegisterWebhookRoutes(r, hb)
	RegisterStatsRoutes(r, hb)
	RegisterHealthRoute(r)
	RegisterMetricsRoute(r)
}

// RegisterCheckoutRoutes registers the purchase-initiation endpoints.
// These are browser-facing, so they sit behind the per-IP rate limiter.
func RegisterCheckoutRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	checkout := r.Group("/checkout")
	{
		checkout.Use(middleware.RateLimitMiddleware())
		checkout.POST("", hb.CreateCheckoutHandler)
		checkout.GET("/status/:sessionID", hb.CheckoutStatusHandler)
	}
}

// RegisterWebhookRoutes registers the provider callback endpoint. No rate
// limiting here: throttling a redelivery would only delay reconciliation.
func RegisterWebhookRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	webhooks := r.Group("/webhooks")
	{
		webhooks.POST("/payment", hb.PaymentWebhookHandler)
	}
}

// RegisterStatsRoutes registers the public read endpoints.
func RegisterStatsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/stats", hb.GetStatsHandler)
	r.GET("/stats/tickets", hb.GetConfirmedTicketsHandler)
	partners := r.Group("/partners")
	{
		partners.GET("", hb.ListPartnersHandler)
		partners.GET("/:id", hb.GetPartnerHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterMetricsRoute exposes Prometheus metrics.
func RegisterMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
