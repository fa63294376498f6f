package handlers

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/isdelr/portfolio-be/internal/auth"
	ws "github.com/isdelr/portfolio-be/internal/websocket"
	"github.com/rs/zerolog/log"
)

// WebSocketHandler upgrades authenticated admin requests to the live event feed.
type WebSocketHandler struct {
	hub      *ws.Hub
	upgrader websocket.Upgrader
}

// NewWebSocketHandler creates a new WebSocketHandler.
func NewWebSocketHandler(hub *ws.Hub) *WebSocketHandler {
	return &WebSocketHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Origins are enforced by CORS and the bearer token.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Serve handles the WebSocket connection request.
func (h *WebSocketHandler) Serve(w http.ResponseWriter, r *http.Request) {
	principal, _ := auth.PrincipalFromContext(r.Context())

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("Failed to upgrade websocket connection")
		return
	}

	client := ws.NewClient(h.hub, conn, principal.Username)
	if !h.hub.Join(client) {
		conn.Close()
		return
	}

	go client.WritePump()
	go func() {
		client.ReadPump()
		h.hub.Leave(client)
	}()
}
