package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle collects every route handler the router needs.
type HandlerBundle struct {
	// Pricing endpoints.
	QuoteHandler gin.HandlerFunc

	// User endpoints.
	RegisterHandler    gin.HandlerFunc
	LoginHandler       gin.HandlerFunc
	ProfileHandler     gin.HandlerFunc
	RevokeTokenHandler gin.HandlerFunc

	// Booking endpoints.
	CreateBookingHandler        gin.HandlerFunc
	GetBookingHandler           gin.HandlerFunc
	ListMyBookingsHandler       gin.HandlerFunc
	ListProviderBookingsHandler gin.HandlerFunc
	UpdateBookingStatusHandler  gin.HandlerFunc
	CancelBookingHandler        gin.HandlerFunc
	PaymentIntentHandler        gin.HandlerFunc

	// Admin endpoints.
	ListAllBookingsHandler gin.HandlerFunc
	ListTrackingHandler    gin.HandlerFunc

	// Assistant endpoints.
	ChatHandler      gin.HandlerFunc
	ResetChatHandler gin.HandlerFunc
}
