package user

import (
	"context"

	userRepo "brightnest/database/repository/user"
	"brightnest/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RegistrationRequest is the input for creating an account.
type RegistrationRequest struct {
	Username    string      `json:"username"`
	Email       string      `json:"email"`
	Password    string      `json:"password"`
	PhoneNumber string      `json:"phone_number,omitempty"`
	Role        models.Role `json:"role,omitempty"`         // defaults to customer; admin cannot be self-assigned
	CompanyName string      `json:"company_name,omitempty"` // providers only
}

// AuthResponse carries the signed token plus the basic profile.
type AuthResponse struct {
	ID       string      `json:"id"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Role     models.Role `json:"role"`
	Token    string      `json:"token"`
}

// UserService owns accounts: registration, authentication, and profile reads.
type UserService interface {
	Register(ctx context.Context, req RegistrationRequest) (*AuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	RevokeToken(ctx context.Context, userID string) error
	Notify(ctx context.Context, userID string, notification models.Notification) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo      userRepo.UserRepository
	AuthCache *redis.Client
	Logger    *zap.Logger
}
