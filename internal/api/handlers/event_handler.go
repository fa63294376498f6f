package handlers

import (
	"net/http"
	"strconv"

	"github.com/isdelr/portfolio-be/internal/services"
)

// EventHandler handles HTTP requests related to the admin activity feed.
type EventHandler struct {
	service services.EventFeedProvider
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(service services.EventFeedProvider) *EventHandler {
	return &EventHandler{service: service}
}

// GetRecent handles the request to get recent activity/events.
func (h *EventHandler) GetRecent(w http.ResponseWriter, r *http.Request) {
	limitStr := r.URL.Query().Get("limit")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = 20 // Default limit
	}

	writeJSON(w, http.StatusOK, h.service.GetRecentEvents(limit))
}
