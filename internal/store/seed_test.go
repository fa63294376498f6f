package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testAdmin() AdminSeed {
	return AdminSeed{Username: "admin", Password: "admin123", BcryptCost: bcrypt.MinCost}
}

func TestSeedPopulatesDefaults(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	require.NoError(t, Seed(ctx, s, testAdmin()))

	users, err := s.Users().All(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "admin", users[0].Username)
	assert.NotEqual(t, "admin123", users[0].PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users[0].PasswordHash), []byte("admin123")))

	skills, err := s.Skills().All(ctx)
	require.NoError(t, err)
	assert.Len(t, skills, len(defaultSkills))

	services, err := s.Services().All(ctx)
	require.NoError(t, err)
	assert.Len(t, services, 3)

	projects, err := s.Projects().All(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 3)
	for _, p := range projects {
		assert.NotEmpty(t, p.ID)
		assert.False(t, p.CreatedAt.IsZero())
		assert.Equal(t, p.CreatedAt, p.UpdatedAt)
	}
	assert.Nil(t, projects[0].LiveURL)
	require.NotNil(t, projects[2].LiveURL)
	assert.Equal(t, projects[0].CreatedAt, projects[1].CreatedAt)
	assert.Equal(t, projects[0].CreatedAt, projects[2].CreatedAt)
	require.NotNil(t, projects[0].ImageURL)
	assert.Contains(t, *projects[0].ImageURL, "pixabay.com")

	messages, err := s.Messages().All(ctx)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestSeedRunsOnce(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	require.NoError(t, Seed(ctx, s, testAdmin()))
	require.NoError(t, Seed(ctx, s, testAdmin()))

	users, err := s.Users().All(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	projects, err := s.Projects().All(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 3)
}

func TestSeedUsesPrecomputedHash(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	s := NewMemory()
	require.NoError(t, Seed(ctx, s, AdminSeed{Username: "owner", Password: "ignored", PasswordHash: string(hash)}))

	users, err := s.Users().All(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, string(hash), users[0].PasswordHash)
}
