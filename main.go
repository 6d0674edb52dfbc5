// File: spordate/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"spordate/config"
	"spordate/cron"
	"spordate/database"
	bookingRepo "spordate/database/repository/booking"
	partnerRepo "spordate/database/repository/partner"
	"spordate/handlers"
	"spordate/metrics"
	"spordate/routes"
	"spordate/services/booking"
	"spordate/services/notification"
	"spordate/services/payment"
	"spordate/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	if err := database.InitDB(); err != nil {
		// A managed database is optional; bookings land in the fallback
		// store until one is configured.
		logger.Warn("managed database unavailable, running on fallback store", zap.Error(err))
	}
	utils.InitCache()
	metrics.Register()

	stripe.Key = config.AppConfig.StripeKey
	if stripe.Key == "" {
		logger.Warn("STRIPE_SECRET_KEY not set; checkout and webhook endpoints will refuse requests")
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories: primary when the database is reachable, fallback otherwise.
	var primary bookingRepo.BookingRepository
	var partners partnerRepo.PartnerRepository
	if database.MongoClient != nil {
		mongoBookings, err := bookingRepo.NewMongoBookingRepo()
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize booking repository: %v", err)
		}
		primary = mongoBookings

		mongoPartners, err := partnerRepo.NewMongoPartnerRepo()
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize partner repository: %v", err)
		}
		partners = mongoPartners
	} else {
		partners = partnerRepo.NewMemoryPartnerRepo()
	}
	fallback := bookingRepo.NewMemoryBookingRepo()

	// services.
	paymentClient := payment.NewStripeClient(logger)
	verifier := payment.NewStripeWebhookVerifier(
		config.AppConfig.StripeWebhookSecret,
		config.AppConfig.WebhookStrict,
		logger,
	)
	recorder := &booking.DefaultRecorder{
		Primary:  primary,
		Fallback: fallback,
		Logger:   logger,
	}
	notifService := notification.NewEmailNotificationService(
		config.AppConfig.ResendAPIKey,
		config.AppConfig.SenderEmail,
		logger,
	)

	var queueClient *asynq.Client
	if config.AppConfig.RedisAddr != "" {
		queueClient = asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisQueueDB,
		})
		cron.InitNotificationWorker(notifService, partners)
	}
	dispatcher := &notification.Dispatcher{
		Service:  notifService,
		Partners: partners,
		Queue:    queueClient,
		Logger:   logger,
	}

	// handlers.
	checkoutHandler := handlers.NewCheckoutHandler(paymentClient, utils.GetCacheClient(), logger)
	webhookHandler := handlers.NewWebhookHandler(verifier, recorder, dispatcher, logger)
	statsHandler := handlers.NewStatsHandler(recorder, partners)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		CreateCheckoutHandler: checkoutHandler.CreateCheckoutHandler,
		CheckoutStatusHandler: checkoutHandler.CheckoutStatusHandler,
		PaymentWebhookHandler: webhookHandler.PaymentWebhookHandler,

		GetStatsHandler:            statsHandler.GetStatsHandler,
		GetConfirmedTicketsHandler: statsHandler.GetConfirmedTicketsHandler,
		ListPartnersHandler:        statsHandler.ListPartnersHandler,
		GetPartnerHandler:          statsHandler.GetPartnerHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	if queueClient != nil {
		queueClient.Close()
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
