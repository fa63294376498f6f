package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticateUser(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(seededStore(t))

	user, err := svc.AuthenticateUser(ctx, "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	assert.NotEmpty(t, user.ID)
	assert.Empty(t, user.PasswordHash)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "admin", "admin1234"},
		{"unknown user", "root", "admin123"},
		{"empty password", "admin", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AuthenticateUser(ctx, tt.username, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestGetUserByID(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(seededStore(t))

	admin, err := svc.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.NotEmpty(t, admin.PasswordHash)

	user, err := svc.GetUserByID(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	assert.Empty(t, user.PasswordHash)

	_, err = svc.GetUserByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
