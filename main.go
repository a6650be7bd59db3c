// File: veranda/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"veranda/config"
	"veranda/cron"
	"veranda/database"
	bookingRepo "veranda/database/repository/booking"
	roomRepo "veranda/database/repository/room"
	"veranda/handlers"
	"veranda/middleware"
	"veranda/routes"
	"veranda/services/booking"
	"veranda/services/notification"
	"veranda/services/payment"
	"veranda/services/quote"
	"veranda/services/rooms"
	"veranda/services/storage"
	"veranda/services/tasks"
	"veranda/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitQuoteCache()

	storageService, err := storage.NewCloudinaryStorageService(
		config.AppConfig.CloudinaryCloudName,
		config.AppConfig.CloudinaryAPIKey,
		config.AppConfig.CloudinaryAPISecret,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	roomRepository := roomRepo.NewMongoRoomRepo()
	bookingRepository := bookingRepo.NewMongoBookingRepo()

	// services.
	roomService := &rooms.DefaultRoomService{
		Repo:   roomRepository,
		Logger: logger,
	}

	quoteService := &quote.DefaultQuoteService{
		Rooms:  roomRepository,
		Cache:  utils.GetQuoteCacheClient(),
		Logger: logger,
	}

	gateway := payment.NewRazorpayGateway(
		config.AppConfig.RazorpayKeyID,
		config.AppConfig.RazorpayKeySecret,
		logger,
	)

	mailQueueOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailQueueDB,
	}
	dispatcher := tasks.NewAsynqDispatcher(mailQueueOpts, logger)

	bookingService := &booking.DefaultBookingService{
		Quotes:          quoteService,
		Repo:            bookingRepository,
		Gateway:         gateway,
		Dispatcher:      dispatcher,
		Logger:          logger,
		HotelName:       config.AppConfig.HotelName,
		Currency:        "INR",
		SignatureSecret: config.AppConfig.RazorpayKeySecret,
	}

	notificationService := notification.NewEmailNotificationService(
		config.AppConfig.SMTPHost,
		config.AppConfig.SMTPPort,
		config.AppConfig.SMTPUser,
		config.AppConfig.SMTPPassword,
		config.AppConfig.SMTPFrom,
		logger,
	)
	cron.InitMailWorker(notificationService)

	roomHandler := handlers.NewRoomHandler(roomService, logger)
	quoteHandler := handlers.NewQuoteHandler(quoteService, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	storageHandler := handlers.NewStorageHandler(storageService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		CreateRoomHandler:    roomHandler.CreateRoomHandler,
		UpdateRoomHandler:    roomHandler.UpdateRoomHandler,
		DeleteRoomHandler:    roomHandler.DeleteRoomHandler,
		GetRoomByIDHandler:   roomHandler.GetRoomByIDHandler,
		GetRoomBySlugHandler: roomHandler.GetRoomBySlugHandler,
		ListRoomsHandler:     roomHandler.ListRoomsHandler,

		AddPricingRuleHandler:    roomHandler.AddPricingRuleHandler,
		UpdatePricingRuleHandler: roomHandler.UpdatePricingRuleHandler,
		RemovePricingRuleHandler: roomHandler.RemovePricingRuleHandler,
		GetRoomRateHandler:       roomHandler.GetRoomRateHandler,

		CreateQuoteHandler: quoteHandler.CreateQuoteHandler,
		GetQuoteHandler:    quoteHandler.GetQuoteHandler,

		InitiateOrderHandler: bookingHandler.InitiateOrderHandler,
		VerifyPaymentHandler: bookingHandler.VerifyPaymentHandler,
		GetBookingHandler:    bookingHandler.GetBookingHandler,
		CancelBookingHandler: bookingHandler.CancelBookingHandler,

		UploadPhotoHandler: storageHandler.UploadPhotoHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
