package handlers

import (
	"net/http"

	"brightnest/middleware"
	"brightnest/models"
	"brightnest/services/booking"
	"brightnest/services/payment"
	"brightnest/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves booking creation, reads, and lifecycle mutations.
type BookingHandler struct {
	Service  booking.BookingService
	Payments payment.PaymentService
	Logger   *zap.Logger
}

func NewBookingHandler(service booking.BookingService, payments payment.PaymentService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: service, Payments: payments, Logger: logger}
}

// serviceErrorStatus maps booking ServiceError codes to HTTP statuses.
func serviceErrorStatus(code string) int {
	switch code {
	case booking.CodeAuthenticationRequired:
		return http.StatusUnauthorized
	case booking.CodeNotFound:
		return http.StatusNotFound
	case booking.CodeUnauthorized:
		return http.StatusForbidden
	case booking.CodeInvalidStateTransition:
		return http.StatusConflict
	case booking.CodeValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *BookingHandler) respondServiceError(c *gin.Context, err error) {
	if se, ok := booking.AsServiceError(err); ok {
		utils.JSONError(c, serviceErrorStatus(se.Code), se.Message, "")
		return
	}
	h.Logger.Error("booking operation failed", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "something went wrong", "please try again later")
}

// CreateBookingHandler creates a pending booking for the authenticated customer.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req booking.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	record, err := h.Service.CreateBooking(c.Request.Context(), req, middleware.GetActor(c))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// GetBookingHandler fetches one booking, if the actor may see it.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	record, err := h.Service.GetBooking(c.Request.Context(), c.Param("id"), middleware.GetActor(c))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// ListMyBookingsHandler lists the actor's own bookings.
func (h *BookingHandler) ListMyBookingsHandler(c *gin.Context) {
	records, err := h.Service.ListUserBookings(c.Request.Context(), middleware.GetActor(c))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": records})
}

// ListProviderBookingsHandler lists bookings assigned to the actor's
// provider account.
func (h *BookingHandler) ListProviderBookingsHandler(c *gin.Context) {
	records, err := h.Service.ListProviderBookings(c.Request.Context(), middleware.GetActor(c))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": records})
}

// UpdateBookingStatusHandler moves a booking to a new lifecycle status.
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	var input struct {
		Status models.BookingStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Service.UpdateBookingStatus(c.Request.Context(), c.Param("id"), input.Status, middleware.GetActor(c))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CancelBookingHandler cancels a booking.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	result, err := h.Service.CancelBooking(c.Request.Context(), c.Param("id"), middleware.GetActor(c))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// PaymentIntentHandler creates a Stripe payment intent for one of the
// actor's bookings.
func (h *BookingHandler) PaymentIntentHandler(c *gin.Context) {
	record, err := h.Service.GetBooking(c.Request.Context(), c.Param("id"), middleware.GetActor(c))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	intent, err := h.Payments.CreatePaymentIntent(c.Request.Context(), record)
	if err != nil {
		h.Logger.Error("failed to create payment intent", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "payment unavailable", "please try again later")
		return
	}
	c.JSON(http.StatusOK, intent)
}

// ListAllBookingsHandler lists every booking. Admin-gated at the route level.
func (h *BookingHandler) ListAllBookingsHandler(c *gin.Context) {
	records, err := h.Service.ListAllBookings(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": records})
}

// ListTrackingHandler lists the audit trail for a booking. Admin-gated.
func (h *BookingHandler) ListTrackingHandler(c *gin.Context) {
	records, err := h.Service.ListTracking(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tracking": records})
}
