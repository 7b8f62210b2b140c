package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fixmarkt/config"
	"fixmarkt/database"
	bookingRepoPkg "fixmarkt/database/repository/booking"
	offerRepoPkg "fixmarkt/database/repository/offer"
	requestRepoPkg "fixmarkt/database/repository/request"
	reviewRepoPkg "fixmarkt/database/repository/review"
	userRepoPkg "fixmarkt/database/repository/user"
	vehicleRepoPkg "fixmarkt/database/repository/vehicle"
	workshopRepoPkg "fixmarkt/database/repository/workshop"
	"fixmarkt/handlers"
	"fixmarkt/routes"
	"fixmarkt/services/booking"
	"fixmarkt/services/notification"
	"fixmarkt/services/offer"
	"fixmarkt/services/payout"
	"fixmarkt/services/request"
	"fixmarkt/services/review"
	"fixmarkt/services/storage"
	"fixmarkt/services/user"
	"fixmarkt/services/workshop"
	"fixmarkt/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	var storageService storage.StorageService
	if config.AppConfig.CloudinaryCloudName != "" {
		svc, err := utils.Cloudinary()
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
		}
		storageService = svc
	} else {
		logger.Sugar().Warn("main: cloudinary not configured, report uploads disabled")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	workshopRepo := workshopRepoPkg.NewMongoWorkshopRepo()
	vehicleRepo := vehicleRepoPkg.NewMongoVehicleRepo()
	requestRepo := requestRepoPkg.NewMongoRequestRepo()
	offerRepo := offerRepoPkg.NewMongoOfferRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()

	// services.
	notificationService := &notification.DefaultNotificationService{
		Users:     userRepo,
		Workshops: workshopRepo,
		Mailer:    notification.NewSMTPMailer(),
	}

	userService := &user.DefaultUserService{
		Repo:      userRepo,
		AuthCache: utils.GetAuthCacheClient(),
		Notifier:  notificationService,
	}

	workshopService := &workshop.DefaultWorkshopService{
		Repo:      workshopRepo,
		AuthCache: utils.GetAuthCacheClient(),
		Notifier:  notificationService,
	}

	requestService := &request.DefaultRequestService{
		Repo:     requestRepo,
		Vehicles: vehicleRepo,
	}

	offerService := &offer.DefaultOfferService{
		Repo:       offerRepo,
		Requests:   requestRepo,
		Workshops:  workshopRepo,
		RequestSvc: requestService,
	}

	bookingService := &booking.DefaultBookingService{
		Repo:           bookingRepo,
		Offers:         offerRepo,
		Requests:       requestRepo,
		RequestSvc:     requestService,
		Notifier:       notificationService,
		CommissionRate: config.AppConfig.CommissionRate,
	}

	reviewService := &review.DefaultReviewService{
		Repo:     reviewRepo,
		Bookings: bookingRepo,
	}

	payoutService := &payout.DefaultPayoutService{
		Bookings: bookingRepo,
	}

	// handlers.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:     userRepo,
		WorkshopRepo: workshopRepo,

		Auth:     handlers.NewAuthHandler(userService, workshopService),
		Vehicle:  handlers.NewVehicleHandler(vehicleRepo),
		Request:  handlers.NewRequestHandler(requestService, offerService),
		Offer:    handlers.NewOfferHandler(offerService),
		Booking:  handlers.NewBookingHandler(bookingService),
		Review:   handlers.NewReviewHandler(reviewService),
		Payout:   handlers.NewPayoutHandler(payoutService),
		Workshop: handlers.NewWorkshopHandler(workshopService),
		Storage:  handlers.NewStorageHandler(storageService),
	}

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
