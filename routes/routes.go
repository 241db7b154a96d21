package routes

import (
	"net/http"
	"time"

	"brightnest/handlers"
	"brightnest/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// RegisterPricingRoutes registers the public quote endpoint.
func RegisterPricingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/pricing")
	{
		api.POST("/quote", hb.QuoteHandler)
	}
}

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle, authCache *redis.Client) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(authCache))
		api.GET("/me", hb.ProfileHandler)
		api.DELETE("/revoke", hb.RevokeTokenHandler)
	}
}

// RegisterBookingRoutes sets up the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle, authCache *redis.Client) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(authCache))
		api.POST("", hb.CreateBookingHandler)
		api.GET("", hb.ListMyBookingsHandler)
		api.GET("/assigned", hb.ListProviderBookingsHandler)
		api.GET("/:id", hb.GetBookingHandler)
		api.PATCH("/:id/status", hb.UpdateBookingStatusHandler)
		api.POST("/:id/cancel", hb.CancelBookingHandler)
		api.POST("/:id/payment-intent", hb.PaymentIntentHandler)
	}
}

// RegisterAIRoutes registers assistant endpoints.
func RegisterAIRoutes(r *gin.Engine, hb *handlers.HandlerBundle, authCache *redis.Client) {
	api := r.Group("/api/assistant")
	{
		api.Use(middleware.JWTAuthMiddleware(authCache))
		api.POST("/chat", hb.ChatHandler)
		api.DELETE("/chat", hb.ResetChatHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle, authCache *redis.Client) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthMiddleware(authCache))
		adminGroup.Use(middleware.AdminOnlyMiddleware())
		adminGroup.GET("/bookings", hb.ListAllBookingsHandler)
		adminGroup.GET("/bookings/:id/tracking", hb.ListTrackingHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Brightnest"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, authCache *redis.Client) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterPricingRoutes(r, hb)
	RegisterUserRoutes(r, hb, authCache)
	RegisterBookingRoutes(r, hb, authCache)
	RegisterAIRoutes(r, hb, authCache)
	RegisterAdminRoutes(r, hb, authCache)
}
