package booking

import (
	"context"
	"errors"
	"time"

	bookingRepo "brightnest/database/repository/booking"
	"brightnest/models"
	"brightnest/services/pricing"

	"github.com/google/uuid"
)

// CreateBooking validates and prices the request, then persists a pending
// booking with the full breakdown captured at creation time.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req CreateBookingRequest, actor *models.ActorIdentity) (*models.Booking, error) {
	if actor == nil || actor.UserID == "" {
		return nil, ErrAuthenticationRequired
	}
	if !pricing.ValidateOptions(req.Pricing) {
		return nil, NewValidationError("invalid size, frequency, or addons")
	}
	if req.Date == "" {
		return nil, NewValidationError("date is required")
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, NewValidationError("date must be in YYYY-MM-DD format")
	}

	breakdown, err := s.Calculator.Calculate(ctx, req.Pricing)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	record := &models.Booking{
		ID:             uuid.New().String(),
		UserID:         actor.UserID,
		ProviderUserID: req.ProviderUserID,
		Size:           req.Pricing.Size,
		Frequency:      req.Pricing.Frequency,
		Addons:         req.Pricing.Addons,
		Date:           req.Date,
		Start:          req.Start,
		Address:        req.Address,
		Pricing:        *breakdown,
		Status:         models.StatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.Repo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// GetBooking returns a booking if the actor is its owner, its assigned
// provider, or an admin.
func (s *DefaultBookingService) GetBooking(ctx context.Context, bookingID string, actor *models.ActorIdentity) (*models.Booking, error) {
	if actor == nil || actor.UserID == "" {
		return nil, ErrAuthenticationRequired
	}

	target, err := s.Repo.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	isOwner := actor.UserID == target.UserID
	isAssignedProvider := target.ProviderUserID != "" && actor.UserID == target.ProviderUserID
	if !isOwner && !isAssignedProvider && actor.Role != models.RoleAdmin {
		return nil, ErrUpdateForbidden
	}
	return target, nil
}

// ListUserBookings returns the actor's own bookings.
func (s *DefaultBookingService) ListUserBookings(ctx context.Context, actor *models.ActorIdentity) ([]models.Booking, error) {
	if actor == nil || actor.UserID == "" {
		return nil, ErrAuthenticationRequired
	}
	return s.Repo.ListByUser(ctx, actor.UserID)
}

// ListProviderBookings returns the bookings assigned to the actor's provider
// account.
func (s *DefaultBookingService) ListProviderBookings(ctx context.Context, actor *models.ActorIdentity) ([]models.Booking, error) {
	if actor == nil || actor.UserID == "" {
		return nil, ErrAuthenticationRequired
	}
	return s.Repo.ListByProvider(ctx, actor.UserID)
}

// ListAllBookings returns every booking. Route-level admin gating applies.
func (s *DefaultBookingService) ListAllBookings(ctx context.Context) ([]models.Booking, error) {
	return s.Repo.ListAll(ctx)
}

// ListTracking returns the audit trail for a booking.
func (s *DefaultBookingService) ListTracking(ctx context.Context, bookingID string) ([]models.TrackingRecord, error) {
	return s.Tracking.ListByBooking(ctx, bookingID)
}
