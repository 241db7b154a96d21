package booking

import (
	"context"
	"testing"
	"time"

	bookingRepo "brightnest/database/repository/booking"
	"brightnest/models"
	"brightnest/services/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBookingRepo struct {
	bookings  map[string]*models.Booking
	updateErr error
}

func newFakeBookingRepo(bookings ...*models.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
	for _, b := range bookings {
		copied := *b
		repo.bookings[b.ID] = &copied
	}
	return repo
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *models.Booking) error {
	copied := *booking
	r.bookings[booking.ID] = &copied
	return nil
}

func (r *fakeBookingRepo) FindByID(_ context.Context, id string) (*models.Booking, error) {
	booking, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	copied := *booking
	return &copied, nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id string, status models.BookingStatus, updatedAt time.Time) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	booking, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrNotFound
	}
	booking.Status = status
	booking.UpdatedAt = updatedAt
	return nil
}

func (r *fakeBookingRepo) ListByUser(_ context.Context, userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListByProvider(_ context.Context, providerID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ProviderUserID == providerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListAll(_ context.Context) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		out = append(out, *b)
	}
	return out, nil
}

type fakeTrackingRepo struct {
	records   []*models.TrackingRecord
	insertErr error
}

func (r *fakeTrackingRepo) Insert(_ context.Context, record *models.TrackingRecord) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.records = append(r.records, record)
	return nil
}

func (r *fakeTrackingRepo) ListByBooking(_ context.Context, bookingID string) ([]models.TrackingRecord, error) {
	var out []models.TrackingRecord
	for _, rec := range r.records {
		if rec.BookingID == bookingID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

type fakeReminderScheduler struct {
	scheduled []string
	err       error
}

func (s *fakeReminderScheduler) ScheduleBookingReminder(_ context.Context, booking *models.Booking) error {
	if s.err != nil {
		return s.err
	}
	s.scheduled = append(s.scheduled, booking.ID)
	return nil
}

func testBooking(status models.BookingStatus) *models.Booking {
	return &models.Booking{
		ID:             "bk-1",
		UserID:         "user-1",
		ProviderUserID: "provider-1",
		Size:           models.SizeMedium,
		Frequency:      models.FrequencyWeekly,
		Addons:         map[string]bool{},
		Date:           "2026-09-12",
		Start:          9,
		Status:         status,
	}
}

func newService(repo *fakeBookingRepo, tracking *fakeTrackingRepo) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:       repo,
		Tracking:   tracking,
		Calculator: pricing.NewCalculator(nil),
		Logger:     zap.NewNop(),
	}
}

var (
	owner    = &models.ActorIdentity{UserID: "user-1", Role: models.RoleCustomer}
	provider = &models.ActorIdentity{UserID: "provider-1", Role: models.RoleProvider}
	stranger = &models.ActorIdentity{UserID: "user-2", Role: models.RoleCustomer}
	admin    = &models.ActorIdentity{UserID: "admin-1", Role: models.RoleAdmin}
)

func TestUpdateBookingStatusAuthorization(t *testing.T) {
	tests := []struct {
		name    string
		actor   *models.ActorIdentity
		from    models.BookingStatus
		to      models.BookingStatus
		wantErr string
	}{
		{"owner may confirm", owner, models.StatusPending, models.StatusConfirmed, ""},
		{"assigned provider may start", provider, models.StatusConfirmed, models.StatusInProgress, ""},
		{"admin may complete", admin, models.StatusInProgress, models.StatusCompleted, ""},
		{"unrelated user rejected", stranger, models.StatusPending, models.StatusConfirmed,
			"Unauthorized: You don't have permission to update this booking"},
		{"unrelated provider rejected", &models.ActorIdentity{UserID: "provider-2", Role: models.RoleProvider},
			models.StatusPending, models.StatusConfirmed,
			"Unauthorized: You don't have permission to update this booking"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeBookingRepo(testBooking(tt.from))
			tracking := &fakeTrackingRepo{}
			svc := newService(repo, tracking)

			result, err := svc.UpdateBookingStatus(context.Background(), "bk-1", tt.to, tt.actor)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				assert.Equal(t, tt.from, repo.bookings["bk-1"].Status, "a rejected update must not change the stored status")
				assert.Empty(t, tracking.records)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.to, result.Booking.Status)
			assert.Empty(t, result.Warning)
			assert.Equal(t, tt.to, repo.bookings["bk-1"].Status)
			require.Len(t, tracking.records, 1)
			assert.Equal(t, tt.to, tracking.records[0].Status)
			assert.Equal(t, tt.actor.UserID, tracking.records[0].ActorID)
		})
	}
}

func TestUpdateBookingStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    models.BookingStatus
		to      models.BookingStatus
		wantErr string
	}{
		{"pending to confirmed", models.StatusPending, models.StatusConfirmed, ""},
		{"confirmed to rescheduled", models.StatusConfirmed, models.StatusRescheduled, ""},
		{"rescheduled back to confirmed", models.StatusRescheduled, models.StatusConfirmed, ""},
		{"pending to completed", models.StatusPending, models.StatusCompleted,
			"InvalidStateTransition: Cannot change booking status from pending to completed"},
		{"completed is terminal", models.StatusCompleted, models.StatusConfirmed,
			"InvalidStateTransition: Cannot change booking status from completed to confirmed"},
		{"cancelled is terminal", models.StatusCancelled, models.StatusPending,
			"InvalidStateTransition: Cannot change booking status from cancelled to pending"},
		{"in-progress cannot be cancelled via update", models.StatusInProgress, models.StatusCancelled,
			"InvalidStateTransition: Cannot change booking status from in-progress to cancelled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeBookingRepo(testBooking(tt.from))
			svc := newService(repo, &fakeTrackingRepo{})

			result, err := svc.UpdateBookingStatus(context.Background(), "bk-1", tt.to, admin)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, result.Booking.Status)
		})
	}
}

func TestUpdateBookingStatusUnknownStatus(t *testing.T) {
	svc := newService(newFakeBookingRepo(testBooking(models.StatusPending)), &fakeTrackingRepo{})

	_, err := svc.UpdateBookingStatus(context.Background(), "bk-1", "archived", owner)
	require.Error(t, err)
	se, ok := AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, CodeValidation, se.Code)
}

func TestUpdateBookingStatusNotFound(t *testing.T) {
	svc := newService(newFakeBookingRepo(), &fakeTrackingRepo{})

	_, err := svc.UpdateBookingStatus(context.Background(), "missing", models.StatusConfirmed, owner)
	assert.Equal(t, ErrBookingNotFound, err)
}

func TestUpdateBookingStatusRequiresActor(t *testing.T) {
	svc := newService(newFakeBookingRepo(testBooking(models.StatusPending)), &fakeTrackingRepo{})

	_, err := svc.UpdateBookingStatus(context.Background(), "bk-1", models.StatusConfirmed, nil)
	assert.Equal(t, ErrAuthenticationRequired, err)

	_, err = svc.UpdateBookingStatus(context.Background(), "bk-1", models.StatusConfirmed, &models.ActorIdentity{})
	assert.Equal(t, ErrAuthenticationRequired, err)
}

func TestUpdateBookingStatusTrackingFailureIsWarning(t *testing.T) {
	repo := newFakeBookingRepo(testBooking(models.StatusPending))
	tracking := &fakeTrackingRepo{insertErr: context.DeadlineExceeded}
	svc := newService(repo, tracking)

	result, err := svc.UpdateBookingStatus(context.Background(), "bk-1", models.StatusConfirmed, owner)
	require.NoError(t, err, "a tracking failure must not fail the update")
	assert.Equal(t, models.StatusConfirmed, repo.bookings["bk-1"].Status)
	assert.Equal(t, "status updated, but the change could not be recorded in the audit trail", result.Warning)
}

func TestUpdateToConfirmedSchedulesReminder(t *testing.T) {
	repo := newFakeBookingRepo(testBooking(models.StatusPending))
	scheduler := &fakeReminderScheduler{}
	svc := newService(repo, &fakeTrackingRepo{})
	svc.Reminders = scheduler

	_, err := svc.UpdateBookingStatus(context.Background(), "bk-1", models.StatusConfirmed, owner)
	require.NoError(t, err)
	assert.Equal(t, []string{"bk-1"}, scheduler.scheduled)

	// Scheduler failures are absorbed.
	repo = newFakeBookingRepo(testBooking(models.StatusPending))
	svc = newService(repo, &fakeTrackingRepo{})
	svc.Reminders = &fakeReminderScheduler{err: context.DeadlineExceeded}
	_, err = svc.UpdateBookingStatus(context.Background(), "bk-1", models.StatusConfirmed, owner)
	assert.NoError(t, err)
}

func TestCancelBookingByOwner(t *testing.T) {
	repo := newFakeBookingRepo(testBooking(models.StatusConfirmed))
	tracking := &fakeTrackingRepo{}
	svc := newService(repo, tracking)

	result, err := svc.CancelBooking(context.Background(), "bk-1", owner)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, result.Booking.Status)
	assert.Equal(t, models.StatusCancelled, repo.bookings["bk-1"].Status)
	require.Len(t, tracking.records, 1)
	assert.Equal(t, ReasonCancelledByCustomer, tracking.records[0].Reason)
}

func TestCancelBookingByAdmin(t *testing.T) {
	repo := newFakeBookingRepo(testBooking(models.StatusPending))
	tracking := &fakeTrackingRepo{}
	svc := newService(repo, tracking)

	_, err := svc.CancelBooking(context.Background(), "bk-1", admin)
	require.NoError(t, err)
	require.Len(t, tracking.records, 1)
	assert.Equal(t, ReasonCancelledByAdmin, tracking.records[0].Reason)
}

func TestCancelBookingProviderForbidden(t *testing.T) {
	repo := newFakeBookingRepo(testBooking(models.StatusConfirmed))
	svc := newService(repo, &fakeTrackingRepo{})

	// The assigned provider may update a booking but never cancel it.
	_, err := svc.CancelBooking(context.Background(), "bk-1", provider)
	require.Error(t, err)
	assert.Equal(t, "Unauthorized: You can only cancel your own bookings", err.Error())
	assert.Equal(t, models.StatusConfirmed, repo.bookings["bk-1"].Status)
}

func TestCancelBookingStrangerForbidden(t *testing.T) {
	svc := newService(newFakeBookingRepo(testBooking(models.StatusPending)), &fakeTrackingRepo{})

	_, err := svc.CancelBooking(context.Background(), "bk-1", stranger)
	require.Error(t, err)
	assert.Equal(t, "Unauthorized: You can only cancel your own bookings", err.Error())
}

func TestCancelBookingTerminalGuardBeforeAuthorization(t *testing.T) {
	for _, status := range []models.BookingStatus{models.StatusCompleted, models.StatusCancelled} {
		svc := newService(newFakeBookingRepo(testBooking(status)), &fakeTrackingRepo{})

		// Even an unrelated actor sees the terminal error, not the
		// authorization one: the guard runs first.
		for _, actor := range []*models.ActorIdentity{owner, admin, stranger} {
			_, err := svc.CancelBooking(context.Background(), "bk-1", actor)
			require.Error(t, err)
			assert.Equal(t, "InvalidStateTransition: Cannot cancel a booking that is already completed or cancelled", err.Error())
		}
	}
}

func TestCancelBookingNotFound(t *testing.T) {
	svc := newService(newFakeBookingRepo(), &fakeTrackingRepo{})

	_, err := svc.CancelBooking(context.Background(), "missing", owner)
	assert.Equal(t, ErrBookingNotFound, err)
}

func TestCreateBooking(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newService(repo, &fakeTrackingRepo{})

	req := CreateBookingRequest{
		Pricing: models.PricingRequest{
			Size:      models.SizeMedium,
			Frequency: models.FrequencyWeekly,
			Addons:    map[string]bool{},
		},
		Date:    "2026-09-12",
		Start:   9,
		Address: "12 Alder Way",
	}

	created, err := svc.CreateBooking(context.Background(), req, owner)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, created.Status)
	assert.Equal(t, owner.UserID, created.UserID)
	assert.Equal(t, 133.33, created.Pricing.TotalPrice)
	assert.NotEmpty(t, created.ID)
	assert.Contains(t, repo.bookings, created.ID)
}

func TestCreateBookingValidation(t *testing.T) {
	svc := newService(newFakeBookingRepo(), &fakeTrackingRepo{})

	valid := CreateBookingRequest{
		Pricing: models.PricingRequest{Size: models.SizeSmall, Frequency: models.FrequencyOneTime, Addons: map[string]bool{}},
		Date:    "2026-09-12",
	}

	badSize := valid
	badSize.Pricing.Size = "castle"
	_, err := svc.CreateBooking(context.Background(), badSize, owner)
	se, ok := AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, CodeValidation, se.Code)

	badDate := valid
	badDate.Date = "12/09/2026"
	_, err = svc.CreateBooking(context.Background(), badDate, owner)
	se, ok = AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, CodeValidation, se.Code)

	_, err = svc.CreateBooking(context.Background(), valid, nil)
	assert.Equal(t, ErrAuthenticationRequired, err)
}

func TestGetBookingAuthorization(t *testing.T) {
	svc := newService(newFakeBookingRepo(testBooking(models.StatusPending)), &fakeTrackingRepo{})

	for _, actor := range []*models.ActorIdentity{owner, provider, admin} {
		got, err := svc.GetBooking(context.Background(), "bk-1", actor)
		require.NoError(t, err)
		assert.Equal(t, "bk-1", got.ID)
	}

	_, err := svc.GetBooking(context.Background(), "bk-1", stranger)
	require.Error(t, err)
	se, ok := AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, CodeUnauthorized, se.Code)
}
