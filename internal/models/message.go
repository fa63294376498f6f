package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Message represents a contact form submission.
type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// MessageInput is the body of POST /api/messages.
type MessageInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (in MessageInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required),
		validation.Field(&in.Email, validation.Required),
		validation.Field(&in.Message, validation.Required),
	)
}

// NewMessage builds an unread message.
func (in MessageInput) NewMessage(id string, now time.Time) Message {
	return Message{
		ID:        id,
		Name:      in.Name,
		Email:     in.Email,
		Message:   in.Message,
		IsRead:    false,
		CreatedAt: now,
	}
}
