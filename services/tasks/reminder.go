package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"brightnest/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeReminderSend = "reminder:send"

// reminderLead is how long before the appointment the reminder fires.
const reminderLead = 24 * time.Hour

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeReminderSend, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqReminderScheduler enqueues booking reminders on the Redis-backed queue.
type AsynqReminderScheduler struct {
	client *asynq.Client
	logger *zap.Logger
}

func NewAsynqReminderScheduler(redisOpt asynq.RedisClientOpt, logger *zap.Logger) *AsynqReminderScheduler {
	return &AsynqReminderScheduler{client: asynq.NewClient(redisOpt), logger: logger}
}

// ScheduleBookingReminder queues a reminder 24 hours before the appointment.
// Appointments closer than that get no reminder.
func (s *AsynqReminderScheduler) ScheduleBookingReminder(ctx context.Context, booking *models.Booking) error {
	day, err := time.ParseInLocation("2006-01-02", booking.Date, time.Local)
	if err != nil {
		return fmt.Errorf("invalid booking date %q: %w", booking.Date, err)
	}
	appointment := day.Add(time.Duration(booking.Start) * time.Minute)

	fireAt := appointment.Add(-reminderLead)
	if fireAt.Before(time.Now()) {
		s.logger.Debug("appointment too soon for a reminder", zap.String("bookingID", booking.ID))
		return nil
	}

	payload := models.ReminderPayload{
		BookingID: booking.ID,
		UserID:    booking.UserID,
		FireDate:  fireAt.Format(time.RFC3339),
		Title:     "Upcoming cleaning",
		Body:      fmt.Sprintf("Your cleaning is scheduled for %s.", appointment.Format("2 January, 3:04 PM")),
	}

	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	if _, err := s.client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder for booking %s: %w", booking.ID, err)
	}
	return nil
}
