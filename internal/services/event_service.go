package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/isdelr/portfolio-be/internal/models"
	"github.com/rs/zerolog/log"
)

// recentEventsCap bounds the in-memory activity feed.
const recentEventsCap = 100

// Event types pushed to connected admin clients.
const (
	EventProjectCreated = "project.created"
	EventProjectUpdated = "project.updated"
	EventProjectDeleted = "project.deleted"
	EventSkillCreated   = "skill.created"
	EventSkillUpdated   = "skill.updated"
	EventSkillDeleted   = "skill.deleted"
	EventServiceCreated = "service.created"
	EventServiceUpdated = "service.updated"
	EventServiceDeleted = "service.deleted"
	EventMessageCreated = "message.created"
	EventMessageRead    = "message.read"
	EventMessageDeleted = "message.deleted"
	EventMessagesDigest = "messages.digest"
)

// Broadcaster delivers an event to every connected client.
type Broadcaster interface {
	Broadcast(action string, payload interface{})
}

// EventServiceProvider defines the interface for event services.
type EventServiceProvider interface {
	Publish(eventType string, payload interface{})
}

// EventFeedProvider exposes recently published events.
type EventFeedProvider interface {
	GetRecentEvents(limit int) []models.Event
}

// EventService records content changes and fans them out to the websocket hub.
type EventService struct {
	hub Broadcaster

	mu     sync.Mutex
	recent []models.Event
}

// NewEventService creates a new EventService. A nil hub only records.
func NewEventService(hub Broadcaster) *EventService {
	return &EventService{hub: hub}
}

// Publish records an event and sends it to connected clients.
func (s *EventService) Publish(eventType string, payload interface{}) {
	if s == nil {
		return
	}
	log.Debug().Str("event", eventType).Msg("Publishing event")

	event := models.Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	}
	s.mu.Lock()
	s.recent = append(s.recent, event)
	if len(s.recent) > recentEventsCap {
		s.recent = s.recent[len(s.recent)-recentEventsCap:]
	}
	s.mu.Unlock()

	if s.hub != nil {
		s.hub.Broadcast(eventType, payload)
	}
}

// GetRecentEvents returns up to limit events, newest first.
func (s *EventService) GetRecentEvents(limit int) []models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 || limit > len(s.recent) {
		limit = len(s.recent)
	}
	events := make([]models.Event, 0, limit)
	for i := len(s.recent) - 1; i >= 0 && len(events) < limit; i-- {
		events = append(events, s.recent[i])
	}
	return events
}

func deletedPayload(id string) map[string]string {
	return map[string]string{"id": id}
}
