package booking

import (
	"context"

	bookingRepo "brightnest/database/repository/booking"
	"brightnest/models"
	"brightnest/services/pricing"

	"go.uber.org/zap"
)

// Cancellation reasons recorded on the tracking trail.
const (
	ReasonCancelledByCustomer = "cancelled_by_customer"
	ReasonCancelledByAdmin    = "cancelled_by_admin"
)

// UpdateResult is the outcome of a successful mutation. Warning is set when
// the audit-trail write failed; the status change itself still went through.
type UpdateResult struct {
	Booking *models.Booking `json:"booking"`
	Warning string          `json:"warning,omitempty"`
}

// CreateBookingRequest is the input for creating a booking. The pricing
// fields are validated and priced through the calculator before anything is
// persisted.
type CreateBookingRequest struct {
	Pricing        models.PricingRequest `json:"pricing"`
	Date           string                `json:"date"`
	Start          int                   `json:"start"`
	Address        string                `json:"address"`
	ProviderUserID string                `json:"provider_user_id,omitempty"`
}

// BookingService owns booking creation, reads, and the status lifecycle.
type BookingService interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest, actor *models.ActorIdentity) (*models.Booking, error)
	GetBooking(ctx context.Context, bookingID string, actor *models.ActorIdentity) (*models.Booking, error)
	ListUserBookings(ctx context.Context, actor *models.ActorIdentity) ([]models.Booking, error)
	ListProviderBookings(ctx context.Context, actor *models.ActorIdentity) ([]models.Booking, error)
	ListAllBookings(ctx context.Context) ([]models.Booking, error)
	ListTracking(ctx context.Context, bookingID string) ([]models.TrackingRecord, error)

	UpdateBookingStatus(ctx context.Context, bookingID string, newStatus models.BookingStatus, actor *models.ActorIdentity) (*UpdateResult, error)
	CancelBooking(ctx context.Context, bookingID string, actor *models.ActorIdentity) (*UpdateResult, error)
}

// ReminderScheduler enqueues a reminder for a confirmed booking. Failures are
// logged and never fail the status change.
type ReminderScheduler interface {
	ScheduleBookingReminder(ctx context.Context, booking *models.Booking) error
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo       bookingRepo.BookingRepository
	Tracking   bookingRepo.TrackingRepository
	Calculator *pricing.Calculator
	Reminders  ReminderScheduler // optional
	Logger     *zap.Logger
}
