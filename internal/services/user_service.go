package services

import (
	"context"
	"fmt"

	"github.com/isdelr/portfolio-be/internal/models"
	"github.com/isdelr/portfolio-be/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	GetUserByID(ctx context.Context, id string) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	AuthenticateUser(ctx context.Context, username, password string) (models.User, error)
}

// UserService provides lookups and credential checks for the admin account.
type UserService struct {
	users store.Table[models.User]
}

// NewUserService creates a new UserService.
func NewUserService(s store.Store) *UserService {
	return &UserService{users: s.Users()}
}

// GetUserByID retrieves a single user by their ID, without the password hash.
func (s *UserService) GetUserByID(ctx context.Context, id string) (models.User, error) {
	user, ok, err := s.users.Get(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	if !ok {
		return models.User{}, fmt.Errorf("user with ID %s: %w", id, ErrNotFound)
	}
	user.PasswordHash = ""
	return user, nil
}

// GetUserByUsername retrieves a single user by username, including the password hash.
func (s *UserService) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	users, err := s.users.All(ctx)
	if err != nil {
		return models.User{}, err
	}
	for _, user := range users {
		if user.Username == username {
			return user, nil
		}
	}
	return models.User{}, fmt.Errorf("user with username %s: %w", username, ErrNotFound)
}

// AuthenticateUser verifies a user's credentials against the stored bcrypt hash.
func (s *UserService) AuthenticateUser(ctx context.Context, username, password string) (models.User, error) {
	user, err := s.GetUserByUsername(ctx, username)
	if err != nil {
		return models.User{}, fmt.Errorf("authentication failed: user not found: %w", ErrInvalidCredentials)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return models.User{}, fmt.Errorf("authentication failed: invalid password: %w", ErrInvalidCredentials)
	}

	// Don't send the password hash to the client
	user.PasswordHash = ""
	return user, nil
}
