package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending     BookingStatus = "pending"
	StatusConfirmed   BookingStatus = "confirmed"
	StatusInProgress  BookingStatus = "in-progress"
	StatusCompleted   BookingStatus = "completed"
	StatusCancelled   BookingStatus = "cancelled"
	StatusRescheduled BookingStatus = "rescheduled"
)

// Booking represents a scheduled cleaning. The pricing breakdown is captured
// at creation time so later catalog changes never rewrite history.
type Booking struct {
	ID             string        `bson:"id" json:"id"`
	UserID         string        `bson:"user_id" json:"user_id"`                                     // customer who owns the booking
	ProviderUserID string        `bson:"provider_user_id,omitempty" json:"provider_user_id,omitempty"` // account behind the assigned provider, if any
	Size           HomeSize      `bson:"size" json:"size"`
	Frequency      Frequency     `bson:"frequency" json:"frequency"`
	Addons         map[string]bool `bson:"addons" json:"addons"`
	Date           string        `bson:"date" json:"date"` // "YYYY-MM-DD"
	Start          int           `bson:"start" json:"start"` // minutes from midnight
	Address        string        `bson:"address,omitempty" json:"address,omitempty"`
	Pricing        PricingResult `bson:"pricing" json:"pricing"`
	Status         BookingStatus `bson:"status" json:"status"`
	CreatedAt      time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time     `bson:"updated_at" json:"updated_at"`
}

// TrackingRecord is an audit-log entry appended whenever a booking's status
// changes. Writes are best-effort and never block the status change itself.
type TrackingRecord struct {
	ID        string        `bson:"id" json:"id"`
	BookingID string        `bson:"booking_id" json:"booking_id"`
	Status    BookingStatus `bson:"status" json:"status"`
	ActorID   string        `bson:"actor_id" json:"actor_id"`
	Reason    string        `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
}
