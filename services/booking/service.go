package booking

import (
	"context"
	"errors"
	"time"

	bookingRepo "brightnest/database/repository/booking"
	"brightnest/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UpdateBookingStatus moves a booking to newStatus on behalf of actor.
// The owner, the assigned provider, or an admin may update; anyone else is
// rejected. The move itself must be a legal lifecycle transition. A tracking
// record is appended best-effort: if that write fails, the result carries a
// warning but the update stands.
func (s *DefaultBookingService) UpdateBookingStatus(ctx context.Context, bookingID string, newStatus models.BookingStatus, actor *models.ActorIdentity) (*UpdateResult, error) {
	if actor == nil || actor.UserID == "" {
		return nil, ErrAuthenticationRequired
	}
	if !IsKnownStatus(newStatus) {
		return nil, NewValidationError("unknown booking status: " + string(newStatus))
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

	if !CanTransition(target.Status, newStatus) {
		return nil, NewInvalidTransitionError(string(target.Status), string(newStatus))
	}

	now := time.Now()
	if err := s.Repo.UpdateStatus(ctx, target.ID, newStatus, now); err != nil {
		return nil, err
	}
	target.Status = newStatus
	target.UpdatedAt = now

	result := &UpdateResult{Booking: target}
	s.appendTracking(ctx, result, &models.TrackingRecord{
		ID:        uuid.New().String(),
		BookingID: target.ID,
		Status:    newStatus,
		ActorID:   actor.UserID,
		CreatedAt: now,
	})

	if newStatus == models.StatusConfirmed && s.Reminders != nil {
		if err := s.Reminders.ScheduleBookingReminder(ctx, target); err != nil {
			s.Logger.Warn("failed to schedule booking reminder",
				zap.String("bookingID", target.ID), zap.Error(err))
		}
	}

	return result, nil
}

// CancelBooking cancels a booking on behalf of actor. The terminal-state
// guard runs before authorization: a completed or cancelled booking cannot
// be cancelled no matter who asks. Only the owner or an admin may cancel;
// the assigned provider may not cancel on the customer's behalf.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, bookingID string, actor *models.ActorIdentity) (*UpdateResult, error) {
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

	if IsTerminal(target.Status) {
		return nil, ErrCancelTerminal
	}

	if actor.UserID != target.UserID && actor.Role != models.RoleAdmin {
		return nil, ErrCancelForbidden
	}

	now := time.Now()
	if err := s.Repo.UpdateStatus(ctx, target.ID, models.StatusCancelled, now); err != nil {
		return nil, err
	}
	target.Status = models.StatusCancelled
	target.UpdatedAt = now

	reason := ReasonCancelledByCustomer
	if actor.Role == models.RoleAdmin {
		reason = ReasonCancelledByAdmin
	}

	result := &UpdateResult{Booking: target}
	s.appendTracking(ctx, result, &models.TrackingRecord{
		ID:        uuid.New().String(),
		BookingID: target.ID,
		Status:    models.StatusCancelled,
		ActorID:   actor.UserID,
		Reason:    reason,
		CreatedAt: now,
	})

	return result, nil
}

// appendTracking writes the audit record and downgrades a failure to a
// warning on the result.
func (s *DefaultBookingService) appendTracking(ctx context.Context, result *UpdateResult, record *models.TrackingRecord) {
	if err := s.Tracking.Insert(ctx, record); err != nil {
		s.Logger.Warn("failed to write booking tracking record",
			zap.String("bookingID", record.BookingID), zap.Error(err))
		result.Warning = "status updated, but the change could not be recorded in the audit trail"
	}
}
