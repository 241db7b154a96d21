package models

import "time"

// Role partitions accounts into the three permission classes the booking
// rules care about.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleProvider Role = "provider"
	RoleAdmin    Role = "admin"
)

// User is an account document. Providers and admins are users with the
// corresponding role; provider-specific fields stay empty for customers.
type User struct {
	ID            string         `bson:"id" json:"id"`
	Username      string         `bson:"username" json:"username"`
	Email         string         `bson:"email" json:"email"`
	PasswordHash  string         `bson:"password_hash" json:"-"`
	Role          Role           `bson:"role" json:"role"`
	PhoneNumber   string         `bson:"phone_number,omitempty" json:"phone_number,omitempty"`
	CompanyName   string         `bson:"company_name,omitempty" json:"company_name,omitempty"` // providers only
	Notifications []Notification `bson:"notifications,omitempty" json:"notifications,omitempty"`
	CreatedAt     time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time      `bson:"updated_at" json:"updated_at"`
}

// ActorIdentity is the authenticated caller as seen by the booking rules.
// The auth middleware builds it from a verified token; services trust it.
type ActorIdentity struct {
	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
}

// Notification is an in-app message appended to a user document.
type Notification struct {
	ID        string         `bson:"id" json:"id"`
	Type      string         `bson:"type" json:"type"`
	Title     string         `bson:"title" json:"title"`
	Message   string         `bson:"message" json:"message"`
	Data      map[string]any `bson:"data,omitempty" json:"data,omitempty"`
	CreatedAt time.Time      `bson:"created_at" json:"created_at"`
	Read      bool           `bson:"read" json:"read"`
}
