// Package service provides business logic services for PlanWise.
//
// Services receive an *ent.Client and must not manage transactions
// themselves; callers decide the transaction boundary.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"planwise.io/planwise/ent"
	apperrors "planwise.io/planwise/internal/pkg/errors"
	"planwise.io/planwise/internal/pkg/logger"

	entuser "planwise.io/planwise/ent/user"
)

// bcryptCost is intentionally above the library default.
const bcryptCost = 12

// UserService handles account registration and authentication.
type UserService struct {
	client *ent.Client
}

// NewUserService creates a new UserService.
func NewUserService(client *ent.Client) *UserService {
	return &UserService{client: client}
}

// Register creates a user account with hashed credentials and its default
// notification settings row.
func (s *UserService) Register(ctx context.Context, email, name, password string) (*ent.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidRequest, "email is required")
	}
	if len(password) < 8 {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidRequest, "password must be at least 8 characters")
	}

	exists, err := s.client.User.Query().
		Where(entuser.EmailEQ(email)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check email uniqueness: %w", err)
	}
	if exists {
		return nil, apperrors.Conflict(apperrors.CodeEmailTaken, "email is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	userID := uuid.Must(uuid.NewV7()).String()
	user, err := s.client.User.Create().
		SetID(userID).
		SetEmail(email).
		SetName(name).
		SetPasswordHash(string(hash)).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, apperrors.Conflict(apperrors.CodeEmailTaken, "email is already registered")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	// Every account gets a settings row with the opt-out defaults.
	_, err = s.client.NotificationSettings.Create().
		SetID(uuid.Must(uuid.NewV7()).String()).
		SetUserID(userID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create default notification settings: %w", err)
	}

	logger.Info("user registered",
		zap.String("user_id", userID),
		zap.String("email", email),
	)
	return user, nil
}

// Authenticate verifies credentials and returns the matching user.
// Unknown email and wrong password return the same error so callers
// cannot probe which addresses are registered.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*ent.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.client.User.Query().
		Where(entuser.EmailEQ(email)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.Unauthorized(apperrors.CodeInvalidCredentials, "invalid email or password")
		}
		return nil, fmt.Errorf("query user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.Unauthorized(apperrors.CodeInvalidCredentials, "invalid email or password")
	}

	return user, nil
}

// GetUser loads a user by ID.
func (s *UserService) GetUser(ctx context.Context, userID string) (*ent.User, error) {
	user, err := s.client.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeUserNotFound, "user not found")
		}
		return nil, fmt.Errorf("get user %s: %w", userID, err)
	}
	return user, nil
}
