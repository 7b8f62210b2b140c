package routes

import (
	"net/http"
	"time"

	"fixmarkt/handlers"
	"fixmarkt/middleware"
	"fixmarkt/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers customer account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.RegisterUserHandler)
		api.POST("/login", hb.Auth.AuthenticateUserHandler)
	}
}

// RegisterWorkshopRoutes registers workshop account and profile endpoints.
func RegisterWorkshopRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/workshops")
	{
		api.POST("/register", hb.Auth.RegisterWorkshopHandler)
		api.POST("/login", hb.Auth.AuthenticateWorkshopHandler)
		api.GET("/:id", hb.Workshop.GetWorkshopHandler)
		api.GET("/:id/reviews", hb.Review.ListWorkshopReviewsHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.WorkshopRepo))
		protected.Use(middleware.RequireRole(models.RoleWorkshop, models.RoleAdmin))
		protected.PUT("/:id", hb.Workshop.UpdateWorkshopHandler)
	}
}

// RegisterVehicleRoutes registers the customer vehicle endpoints.
func RegisterVehicleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/vehicles")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.WorkshopRepo))
		api.Use(middleware.RequireRole(models.RoleCustomer, models.RoleAdmin))
		api.POST("", hb.Vehicle.CreateVehicleHandler)
		api.GET("", hb.Vehicle.ListMyVehiclesHandler)
	}
}

// RegisterRequestRoutes registers the repair request lifecycle endpoints.
func RegisterRequestRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/requests")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.WorkshopRepo))

		// Workshop matching comes before the :id routes so gin resolves it first.
		api.GET("/available", middleware.RequireRole(models.RoleWorkshop), hb.Request.FindAvailableRequestsHandler)

		api.POST("", middleware.RequireRole(models.RoleCustomer), hb.Request.CreateRequestHandler)
		api.GET("", middleware.RequireRole(models.RoleCustomer, models.RoleAdmin), hb.Request.ListMyRequestsHandler)
		api.GET("/:id", hb.Request.GetRequestHandler)
		api.POST("/:id/cancel", middleware.RequireRole(models.RoleCustomer, models.RoleAdmin), hb.Request.CancelRequestHandler)
		api.GET("/:id/offers", hb.Offer.ListRequestOffersHandler)
	}
}

// RegisterOfferRoutes registers the workshop bidding endpoints.
func RegisterOfferRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/offers")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.WorkshopRepo))
		api.Use(middleware.RequireRole(models.RoleWorkshop))
		api.POST("", hb.Offer.CreateOfferHandler)
		api.PATCH("/:id", hb.Offer.UpdateOfferHandler)
		api.GET("", hb.Offer.ListMyOffersHandler)
	}
}

// RegisterBookingRoutes registers the booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.WorkshopRepo))
		api.POST("", middleware.RequireRole(models.RoleCustomer), hb.Booking.CreateBookingHandler)
		api.GET("", hb.Booking.ListMyBookingsHandler)
		api.GET("/:id", hb.Booking.GetBookingHandler)
		api.PATCH("/:id", hb.Booking.UpdateBookingHandler)
	}
}

// RegisterReviewRoutes registers the review endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.WorkshopRepo))
		api.POST("", middleware.RequireRole(models.RoleCustomer), hb.Review.CreateReviewHandler)
	}
}

// RegisterPayoutRoutes registers the admin payout reporting endpoint.
func RegisterPayoutRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payouts")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.WorkshopRepo))
		api.Use(middleware.RequireRole(models.RoleAdmin))
		api.GET("", hb.Payout.AggregatePayoutsHandler)
	}
}

// RegisterReportRoutes registers inspection report upload and download endpoints.
func RegisterReportRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reports")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.WorkshopRepo))
		api.POST("/upload", middleware.RequireRole(models.RoleCustomer, models.RoleAdmin), hb.Storage.UploadReportHandler)
		api.GET("/:id/url", hb.Storage.ReportURLHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm FixMarkt"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterWorkshopRoutes(r, hb)
	RegisterVehicleRoutes(r, hb)
	RegisterRequestRoutes(r, hb)
	RegisterOfferRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterPayoutRoutes(r, hb)
	RegisterReportRoutes(r, hb)
}
