package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"brightnest/config"
	"brightnest/cron"
	"brightnest/database"
	bookingRepoPkg "brightnest/database/repository/booking"
	userRepoPkg "brightnest/database/repository/user"
	"brightnest/handlers"
	"brightnest/middleware"
	"brightnest/routes"
	"brightnest/services/booking"
	"brightnest/services/intelligence"
	"brightnest/services/payment"
	"brightnest/services/pricing"
	"brightnest/services/tasks"
	"brightnest/services/user"
	"brightnest/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	db := database.DB()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(db)
	trackingRepo := bookingRepoPkg.NewMongoTrackingRepo(db)
	userRepo := userRepoPkg.NewMongoUserRepo(db)

	// services.
	quoteCache := pricing.NewRedisQuoteCache(
		utils.GetCacheClient(),
		time.Duration(config.AppConfig.QuoteCacheTTL)*time.Second,
		logger,
	)
	calculator := pricing.NewCalculator(quoteCache)

	userService := &user.DefaultUserService{
		Repo:      userRepo,
		AuthCache: utils.GetAuthCacheClient(),
		Logger:    logger,
	}

	reminderScheduler := tasks.NewAsynqReminderScheduler(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}, logger)

	bookingService := &booking.DefaultBookingService{
		Repo:       bookingRepo,
		Tracking:   trackingRepo,
		Calculator: calculator,
		Reminders:  reminderScheduler,
		Logger:     logger,
	}

	paymentService := payment.NewStripePaymentService("usd", logger)

	ctxStore := intelligence.NewRedisContextStore(utils.GetCacheClient(), 30*time.Minute)
	aiService := intelligence.NewDefaultAIService(
		intelligence.NewGeminiClient(config.AppConfig.GeminiAPIKey),
		ctxStore,
	)

	// handlers.
	pricingHandler := handlers.NewPricingHandler(calculator, logger)
	userHandler := handlers.NewUserHandler(userService, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, paymentService, logger)
	aiHandler := handlers.NewAIHandler(aiService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		QuoteHandler: pricingHandler.QuoteHandler,

		RegisterHandler:    userHandler.RegisterHandler,
		LoginHandler:       userHandler.LoginHandler,
		ProfileHandler:     userHandler.ProfileHandler,
		RevokeTokenHandler: userHandler.RevokeTokenHandler,

		CreateBookingHandler:        bookingHandler.CreateBookingHandler,
		GetBookingHandler:           bookingHandler.GetBookingHandler,
		ListMyBookingsHandler:       bookingHandler.ListMyBookingsHandler,
		ListProviderBookingsHandler: bookingHandler.ListProviderBookingsHandler,
		UpdateBookingStatusHandler:  bookingHandler.UpdateBookingStatusHandler,
		CancelBookingHandler:        bookingHandler.CancelBookingHandler,
		PaymentIntentHandler:        bookingHandler.PaymentIntentHandler,

		ListAllBookingsHandler: bookingHandler.ListAllBookingsHandler,
		ListTrackingHandler:    bookingHandler.ListTrackingHandler,

		ChatHandler:      aiHandler.ChatHandler,
		ResetChatHandler: aiHandler.ResetChatHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle, utils.GetAuthCacheClient())

	// Start the background reminder worker.
	cron.InitReminderWorker(userService)

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

	logger.Sugar().Info("main: server stopped gracefully")
}
