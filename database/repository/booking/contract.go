package bookingRepo

import (
	"context"
	"errors"
	"time"

	"brightnest/models"
)

// ErrNotFound is returned when no booking matches the given ID.
var ErrNotFound = errors.New("booking not found")

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(ctx context.Context, booking *models.Booking) error
	// FindByID retrieves a booking by its unique ID.
	FindByID(ctx context.Context, id string) (*models.Booking, error)
	// UpdateStatus sets the booking's status and updated_at. Last write wins;
	// there is no version check.
	UpdateStatus(ctx context.Context, id string, status models.BookingStatus, updatedAt time.Time) error
	// ListByUser retrieves all bookings owned by the given customer.
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	// ListByProvider retrieves all bookings assigned to the given provider account.
	ListByProvider(ctx context.Context, providerUserID string) ([]models.Booking, error)
	// ListAll retrieves every booking (admin dashboard).
	ListAll(ctx context.Context) ([]models.Booking, error)
}

// TrackingRepository appends booking status-change audit records.
type TrackingRepository interface {
	// Insert appends a tracking record. Callers treat failures as non-fatal.
	Insert(ctx context.Context, record *models.TrackingRecord) error
	// ListByBooking retrieves the audit trail for one booking, oldest first.
	ListByBooking(ctx context.Context, bookingID string) ([]models.TrackingRecord, error)
}
