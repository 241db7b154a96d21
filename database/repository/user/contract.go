package userRepo

import (
	"context"
	"errors"

	"brightnest/models"
)

// ErrNotFound is returned when no user matches the given ID or email.
var ErrNotFound = errors.New("user not found")

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Create inserts a new user record.
	Create(ctx context.Context, user *models.User) error
	// GetByID retrieves a user by its unique ID.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Update modifies an existing user record.
	Update(ctx context.Context, user *models.User) error
	// AppendNotification pushes an in-app notification onto the user document.
	AppendNotification(ctx context.Context, userID string, notification models.Notification) error
}
