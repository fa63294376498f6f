package services

import (
	"context"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/isdelr/portfolio-be/internal/models"
	"github.com/isdelr/portfolio-be/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMessageMissingEmail(t *testing.T) {
	ctx := context.Background()
	events := &recordingEvents{}
	svc := NewMessageService(store.NewMemory(), events)

	_, err := svc.CreateMessage(ctx, models.MessageInput{Name: "Ada", Message: "Hello"})

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "email")

	messages, err := svc.GetAllMessages(ctx)
	require.NoError(t, err)
	assert.Empty(t, messages)
	assert.Empty(t, events.types())
}

func TestGetAllMessagesNewestFirst(t *testing.T) {
	ctx := context.Background()
	svc := NewMessageService(store.NewMemory(), &recordingEvents{})
	svc.now = stepClock(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

	for _, name := range []string{"a", "b", "c"} {
		_, err := svc.CreateMessage(ctx, models.MessageInput{Name: name, Email: name + "@example.com", Message: "hi"})
		require.NoError(t, err)
	}

	messages, err := svc.GetAllMessages(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "c", messages[0].Name)
	assert.Equal(t, "a", messages[2].Name)
	for _, m := range messages {
		assert.False(t, m.IsRead)
	}
}

func TestMarkMessageAsReadIsIdempotent(t *testing.T) {
	ctx := context.Background()
	events := &recordingEvents{}
	svc := NewMessageService(store.NewMemory(), events)

	msg, err := svc.CreateMessage(ctx, models.MessageInput{Name: "Ada", Email: "ada@example.com", Message: "Hi"})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		ok, err := svc.MarkMessageAsRead(ctx, msg.ID)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	messages, err := svc.GetAllMessages(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.True(t, messages[0].IsRead)

	ok, err := svc.MarkMessageAsRead(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, []string{EventMessageCreated, EventMessageRead, EventMessageRead}, events.types())
}

func TestDeleteMessage(t *testing.T) {
	ctx := context.Background()
	svc := NewMessageService(store.NewMemory(), &recordingEvents{})

	msg, err := svc.CreateMessage(ctx, models.MessageInput{Name: "Ada", Email: "ada@example.com", Message: "Hi"})
	require.NoError(t, err)

	removed, err := svc.DeleteMessage(ctx, msg.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = svc.DeleteMessage(ctx, msg.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	messages, err := svc.GetAllMessages(ctx)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestGetStats(t *testing.T) {
	ctx := context.Background()
	s := seededStore(t)
	events := &recordingEvents{}
	messages := NewMessageService(s, events)
	stats := NewStatsService(NewProjectService(s, testCache(), events), NewSkillService(s, testCache(), events), messages)

	first, err := messages.CreateMessage(ctx, models.MessageInput{Name: "Ada", Email: "ada@example.com", Message: "Hi"})
	require.NoError(t, err)
	_, err = messages.CreateMessage(ctx, models.MessageInput{Name: "Bob", Email: "bob@example.com", Message: "Hey"})
	require.NoError(t, err)
	_, err = messages.MarkMessageAsRead(ctx, first.ID)
	require.NoError(t, err)

	got, err := stats.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Stats{Projects: 3, Skills: 5, Messages: 1, TotalMessages: 2}, got)
}
