// Package hub provides a thread-safe websocket broadcast hub using the
// idiomatic Go channel-based fan-out pattern. The simulation driver
// pushes frame snapshots in; every connected dashboard client gets a
// copy, and clients that cannot keep up are dropped rather than allowed
// to stall the frame loop.
package hub

import (
	"encoding/json"
	"sync"

	"github.com/nellwatson/go-floorcrew/internal/log"
)

// Hub maintains the set of active clients and broadcasts messages to
// them.
type Hub struct {
	name string

	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex
}

// New creates a new Hub. name is used for logging only.
func New(name string) *Hub {
	return &Hub{
		name:       name,
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run starts the hub's main loop. Call it in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			count := len(h.clients)
			h.mu.Unlock()
			log.Debug("hub client connected", "hub", h.name, "clients", count)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			count := len(h.clients)
			h.mu.Unlock()
			log.Debug("hub client disconnected", "hub", h.name, "clients", count)

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Client buffer full. Drop the slow client so the
					// broadcast never blocks.
					close(client.send)
					delete(h.clients, client)
					log.Warn("hub dropped slow client", "hub", h.name)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast queues a message for all connected clients. Drops the
// message if the broadcast queue itself is full.
func (h *Hub) Broadcast(data []byte) {
	select {
	case h.broadcast <- data:
	default:
		log.Warn("hub broadcast queue full", "hub", h.name)
	}
}

// BroadcastJSON encodes and broadcasts a JSON message.
func (h *Hub) BroadcastJSON(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	h.Broadcast(data)
	return nil
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
