package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/nextgen-analytics/ilms/pkg/models"
	"github.com/nextgen-analytics/ilms/pkg/persistence"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = persistence.ErrUserNotFound
)

type User struct {
	persistence persistence.Persistence
}

// NewUser creates a new user service.
func NewUser(persistence persistence.Persistence) *User {
	return &User{
		persistence: persistence,
	}
}

// List retrieves every registered user.
func (u *User) List(ctx context.Context) ([]models.User, error) {
	users, err := u.persistence.Users().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

// FetchByEmail resolves an account by email, case-insensitively.
func (u *User) FetchByEmail(ctx context.Context, email string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, NewValidationError("User.FetchByEmail", "EMPTY_EMAIL", "email cannot be empty", ErrInvalidRequest)
	}

	user, err := u.persistence.Users().GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, ErrUserNotFound
	}

	return user, nil
}

// Create registers a new account. New accounts are active by default.
func (u *User) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}

	if user.Role == "" {
		user.Role = models.RoleViewer
	}

	user.Active = true

	err := u.persistence.Users().Create(ctx, *user)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// SetActive toggles the active flag on an account.
func (u *User) SetActive(ctx context.Context, email string, active bool) (*models.User, error) {
	user, err := u.FetchByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	user.Active = active

	err = u.persistence.Users().Replace(ctx, user.ID, *user)
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}
