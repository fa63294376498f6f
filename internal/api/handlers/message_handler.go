package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/isdelr/portfolio-be/internal/models"
	"github.com/isdelr/portfolio-be/internal/services"
	"github.com/rs/zerolog/log"
)

var messageMessages = messages{invalid: "Invalid message data", notFound: "Message not found"}

// MessageHandler handles the public contact form and the admin inbox.
type MessageHandler struct {
	service services.MessageServiceProvider
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(service services.MessageServiceProvider) *MessageHandler {
	return &MessageHandler{service: service}
}

// GetAll lists every message, newest first.
func (h *MessageHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.service.GetAllMessages(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve messages")
		WriteMessage(w, http.StatusInternalServerError, "Failed to fetch messages")
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

// Create stores a message sent through the contact form.
func (h *MessageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input models.MessageInput
	if !decode(w, r, &input, messageMessages.invalid) {
		return
	}

	msg, err := h.service.CreateMessage(r.Context(), input)
	if err != nil {
		writeServiceError(w, err, messageMessages, "Failed to send message")
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

// MarkRead flags a message as read.
func (h *MessageHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	ok, err := h.service.MarkMessageAsRead(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err, messageMessages, "Failed to update message")
		return
	}
	if !ok {
		WriteMessage(w, http.StatusNotFound, messageMessages.notFound)
		return
	}
	WriteMessage(w, http.StatusOK, "Message marked as read")
}

func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	removed, err := h.service.DeleteMessage(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err, messageMessages, "Failed to delete message")
		return
	}
	if !removed {
		WriteMessage(w, http.StatusNotFound, messageMessages.notFound)
		return
	}
	WriteMessage(w, http.StatusOK, "Message deleted")
}
