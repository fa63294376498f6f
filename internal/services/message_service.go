package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/isdelr/portfolio-be/internal/models"
	"github.com/isdelr/portfolio-be/internal/store"
)

// MessageServiceProvider defines the interface for contact message services.
type MessageServiceProvider interface {
	GetAllMessages(ctx context.Context) ([]models.Message, error)
	CreateMessage(ctx context.Context, input models.MessageInput) (models.Message, error)
	MarkMessageAsRead(ctx context.Context, id string) (bool, error)
	DeleteMessage(ctx context.Context, id string) (bool, error)
}

// MessageService stores messages sent through the public contact form.
type MessageService struct {
	messages store.Table[models.Message]
	events   EventServiceProvider
	now      func() time.Time
}

// NewMessageService creates a new MessageService.
func NewMessageService(s store.Store, events EventServiceProvider) *MessageService {
	return &MessageService{
		messages: s.Messages(),
		events:   events,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// GetAllMessages returns every message, newest first.
func (s *MessageService) GetAllMessages(ctx context.Context) ([]models.Message, error) {
	messages, err := s.messages.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.After(messages[j].CreatedAt)
	})
	return messages, nil
}

// CreateMessage validates and stores a new, unread message.
func (s *MessageService) CreateMessage(ctx context.Context, input models.MessageInput) (models.Message, error) {
	if err := input.Validate(); err != nil {
		return models.Message{}, err
	}

	message := input.NewMessage(store.NewID(), s.now())
	if err := s.messages.Insert(ctx, message.ID, message); err != nil {
		return models.Message{}, fmt.Errorf("failed to create message: %w", err)
	}

	s.events.Publish(EventMessageCreated, message)
	return message, nil
}

// MarkMessageAsRead sets isRead. Marking an already read message succeeds.
func (s *MessageService) MarkMessageAsRead(ctx context.Context, id string) (bool, error) {
	message, ok, err := s.messages.Update(ctx, id, func(m *models.Message) {
		m.IsRead = true
	})
	if err != nil {
		return false, fmt.Errorf("failed to mark message as read: %w", err)
	}
	if ok {
		s.events.Publish(EventMessageRead, message)
	}
	return ok, nil
}

func (s *MessageService) DeleteMessage(ctx context.Context, id string) (bool, error) {
	removed, err := s.messages.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete message: %w", err)
	}
	if removed {
		s.events.Publish(EventMessageDeleted, deletedPayload(id))
	}
	return removed, nil
}
