package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	userRepo "brightnest/database/repository/user"
	"brightnest/models"
	"brightnest/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 24 * time.Hour

// Register creates an account and signs the caller in. Admin accounts are
// provisioned out of band, never through this endpoint.
func (s *DefaultUserService) Register(ctx context.Context, req RegistrationRequest) (*AuthResponse, error) {
	if req.Email == "" || req.Password == "" || req.Username == "" {
		return nil, fmt.Errorf("username, email and password are required")
	}

	role := req.Role
	switch role {
	case "", models.RoleCustomer:
		role = models.RoleCustomer
	case models.RoleProvider:
	default:
		return nil, fmt.Errorf("invalid role")
	}

	existing, err := s.Repo.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, userRepo.ErrNotFound) {
		s.Logger.Error("Register: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("a user with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	rec := &models.User{
		ID:           uuid.New().String(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		PhoneNumber:  req.PhoneNumber,
		CompanyName:  req.CompanyName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(ctx, rec); err != nil {
		s.Logger.Error("Register: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return s.issueToken(ctx, rec)
}

// Authenticate verifies credentials and issues a fresh token.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	rec, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, fmt.Errorf("invalid email or password")
		}
		s.Logger.Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	return s.issueToken(ctx, rec)
}

// issueToken signs a JWT and caches its hash so the token can be revoked.
func (s *DefaultUserService) issueToken(ctx context.Context, rec *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(rec.ID, rec.Email, rec.Role, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	cacheKey := utils.AuthCachePrefix + rec.ID
	if err := s.AuthCache.Set(ctx, cacheKey, utils.HashToken(token), utils.AuthCacheTTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to store auth session: %w", err)
	}

	return &AuthResponse{
		ID:       rec.ID,
		Username: rec.Username,
		Email:    rec.Email,
		Role:     rec.Role,
		Token:    token,
	}, nil
}

// GetUserByID fetches a user profile.
func (s *DefaultUserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.Repo.GetByID(ctx, id)
}

// RevokeToken invalidates the user's active token.
func (s *DefaultUserService) RevokeToken(ctx context.Context, userID string) error {
	if err := s.AuthCache.Del(ctx, utils.AuthCachePrefix+userID).Err(); err != nil {
		return fmt.Errorf("failed to revoke auth token: %w", err)
	}
	return nil
}

// Notify appends an in-app notification to the user document.
func (s *DefaultUserService) Notify(ctx context.Context, userID string, notification models.Notification) error {
	return s.Repo.AppendNotification(ctx, userID, notification)
}
