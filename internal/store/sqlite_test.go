package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/isdelr/portfolio-be/internal/database"
	"github.com/isdelr/portfolio-be/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) *SQLite {
	t.Helper()
	db, err := database.New(filepath.Join(t.TempDir(), "portfolio.db"))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	s := NewSQLite(db)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLite(t)

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	project := models.ProjectInput{
		Title:        "Repeater",
		Description:  "ESP32 repeater",
		Category:     "IoT",
		Status:       models.ProjectStatusCompleted,
		Technologies: []string{"ESP32"},
	}.NewProject("p1", now)

	require.NoError(t, s.Projects().Insert(ctx, project.ID, project))
	assert.ErrorIs(t, s.Projects().Insert(ctx, project.ID, project), ErrDuplicateID)

	got, ok, err := s.Projects().Get(ctx, "p1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Repeater", got.Title)
	assert.Equal(t, []string{"ESP32"}, got.Technologies)
	assert.Nil(t, got.ImageURL)
	assert.True(t, now.Equal(got.CreatedAt))

	updated, ok, err := s.Projects().Update(ctx, "p1", func(p *models.Project) { p.Title = "Repeater v2" })
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Repeater v2", updated.Title)

	_, ok, err = s.Projects().Update(ctx, "missing", func(p *models.Project) {})
	require.NoError(t, err)
	assert.False(t, ok)

	removed, err := s.Projects().Delete(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = s.Projects().Delete(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, removed)

	_, ok, err = s.Projects().Get(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteKeepsPasswordHash(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLite(t)

	user := models.User{ID: "u1", Username: "admin", PasswordHash: "$2a$04$hash"}
	require.NoError(t, s.Users().Insert(ctx, user.ID, user))

	got, ok, err := s.Users().Get(ctx, "u1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, user, got)
}

func TestSQLiteSeedIsSkippedOnSecondStart(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLite(t)

	require.NoError(t, Seed(ctx, s, testAdmin()))
	require.NoError(t, Seed(ctx, s, testAdmin()))

	skills, err := s.Skills().All(ctx)
	require.NoError(t, err)
	assert.Len(t, skills, len(defaultSkills))
	assert.Equal(t, "Electronics & Circuit Design", skills[0].Name)
}
