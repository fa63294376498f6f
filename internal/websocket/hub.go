package websocket

import (
	"encoding/json"

	"github.com/isdelr/portfolio-be/internal/metrics"
	"github.com/rs/zerolog/log"
)

const broadcastBuffer = 64

// Hub maintains the set of active admin clients and broadcasts events to them.
type Hub struct {
	// Registered clients.
	clients map[*Client]bool

	// Outbound messages for every client.
	broadcast chan []byte

	// Register requests from the clients.
	Register chan *Client

	// Unregister requests from clients.
	Unregister chan *Client

	// count answers ClientCount queries from inside the run loop.
	count chan chan int

	quit chan struct{}
	done chan struct{}
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		broadcast:  make(chan []byte, broadcastBuffer),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		count:      make(chan chan int),
		clients:    make(map[*Client]bool),
		quit:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

// Run starts the Hub's message processing loop. It returns after Stop.
func (h *Hub) Run() {
	defer close(h.done)
	for {
		select {
		case client := <-h.Register:
			h.clients[client] = true
			metrics.SetWebSocketClients(len(h.clients))
			log.Info().Int("total_clients", len(h.clients)).Msg("Client connected")
		case client := <-h.Unregister:
			if _, ok := h.clients[client]; ok {
				h.remove(client)
				log.Info().Int("total_clients", len(h.clients)).Msg("Client disconnected")
			}
		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.Send <- message:
				default:
					log.Warn().Msg("Dropping slow websocket client")
					h.remove(client)
				}
			}
		case reply := <-h.count:
			reply <- len(h.clients)
		case <-h.quit:
			for client := range h.clients {
				h.remove(client)
			}
			return
		}
	}
}

// Stop ends the run loop and closes every client's send channel.
func (h *Hub) Stop() {
	select {
	case <-h.quit:
	default:
		close(h.quit)
	}
	<-h.done
}

// Broadcast encodes an event and queues it for every connected client.
// The event is dropped if the queue is full.
func (h *Hub) Broadcast(action string, payload interface{}) {
	message, err := json.Marshal(Message{Action: action, Payload: payload})
	if err != nil {
		log.Error().Err(err).Str("action", action).Msg("Failed to encode websocket message")
		return
	}

	select {
	case h.broadcast <- message:
	default:
		log.Warn().Str("action", action).Msg("Websocket broadcast queue full, dropping event")
	}
}

// Join registers a client unless the hub has stopped.
func (h *Hub) Join(client *Client) bool {
	select {
	case h.Register <- client:
		return true
	case <-h.done:
		return false
	}
}

// Leave unregisters a client. It is a no-op once the hub has stopped.
func (h *Hub) Leave(client *Client) {
	select {
	case h.Unregister <- client:
	case <-h.done:
	}
}

// ClientCount returns the number of registered clients.
func (h *Hub) ClientCount() int {
	reply := make(chan int, 1)
	select {
	case h.count <- reply:
		return <-reply
	case <-h.done:
		return 0
	}
}

func (h *Hub) remove(client *Client) {
	delete(h.clients, client)
	close(client.Send)
	metrics.SetWebSocketClients(len(h.clients))
}
