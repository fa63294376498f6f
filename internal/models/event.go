package models

import "time"

// Event records a content change pushed to admin clients.
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"` // e.g., "project.created", "messages.digest"
	Payload   interface{} `json:"payload"`
	CreatedAt time.Time   `json:"createdAt"`
}
