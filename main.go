// File: indodjija/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"indodjija/config"
	"indodjija/cron"
	"indodjija/database"
	reservationRepo "indodjija/database/repository/reservation"
	"indodjija/handlers"
	"indodjija/middleware"
	"indodjija/routes"
	"indodjija/services/booking"
	"indodjija/services/notification"
	"indodjija/services/tasks"
	"indodjija/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := database.InitDB(logger); err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	sessionClient := utils.GetSessionCacheClient()
	stripe.Key = config.AppConfig.StripeKey
	venue := config.VenueLocation()

	rootCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	// repositories.
	reservations := reservationRepo.NewMongoReservationRepo()
	if err := reservations.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	// background jobs.
	notificationService, err := notification.NewLogNotificationService(logger)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	worker := cron.InitReminderWorker(notificationService, logger)
	queueClient := asynq.NewClient(cron.QueueRedisOpt())
	defer queueClient.Close()

	snapshot := booking.NewReservationSnapshot(reservations, config.AppConfig.SnapshotRefreshInterval, logger)
	if err := snapshot.Refresh(rootCtx); err != nil {
		logger.Warn("Initial reservation snapshot failed", zap.Error(err))
	}
	snapshot.Start(rootCtx)

	queueHealthClient := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	utils.StartHealthMonitor(rootCtx, []*redis.Client{sessionClient, queueHealthClient}, database.MongoClient, 60*time.Second)

	// services.
	bookingService := &booking.DefaultBookingSessionService{
		Packages:  booking.NewCatalog(),
		Sessions:  booking.NewRedisSessionStore(sessionClient, config.AppConfig.SessionTTL),
		Store:     reservations,
		Snapshot:  snapshot,
		Payments:  booking.NewStripeGateway(logger),
		Reminders: &tasks.AsynqReminderScheduler{
			Client:   queueClient,
			Lead:     config.AppConfig.ReminderLead,
			Location: venue,
			Logger:   logger,
		},
		Logger:   logger,
		Currency: config.AppConfig.PaymentCurrency,
		Location: venue,
	}

	tokens, err := utils.NewTokenIssuer(config.AppConfig.JWTSecret, config.AppConfig.AdminTokenTTL)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	bookingHandler := handlers.NewBookingHandler(bookingService)
	adminHandler := handlers.NewAdminHandler(bookingService, tokens, handlers.AdminCredentials{
		Username:     config.AppConfig.AdminUsername,
		PasswordHash: config.AppConfig.AdminPasswordHash,
	})
	handlerBundle := handlers.NewHandlerBundle(bookingHandler, adminHandler)

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlerBundle)

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
	stopBackground()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	worker.Shutdown()
	if err := database.CloseDB(ctx); err != nil {
		logger.Sugar().Errorf("main: mongo disconnect: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
