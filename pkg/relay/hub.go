// Package relay is the watch-party chat relay: a websocket hub that
// groups clients into rooms and fans each message out to the room.
package relay

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/holynakamoto/mmtui/pkg/chat"
)

// Hub owns the client set. Register, unregister and broadcast all flow
// through channels into Run's select loop.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan chat.Message
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
	log        *zap.Logger

	idCounter uint64
}

func NewHub(log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan chat.Message, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		log:        log,
	}
}

// Run dispatches until the hub's channels close. Start it once, in its
// own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mu.Unlock()
			h.log.Info("client joined",
				zap.String("room", client.room),
				zap.String("handle", client.handle),
				zap.Int("clients", total))
			h.systemNotice(client.room, client.handle+" joined")

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			total := len(h.clients)
			h.mu.Unlock()
			h.log.Info("client left",
				zap.String("room", client.room),
				zap.String("handle", client.handle),
				zap.Int("clients", total))
			h.systemNotice(client.room, client.handle+" left")

		case message := <-h.broadcast:
			h.deliver(message)
		}
	}
}

// Broadcast queues a message for everyone in its room.
func (h *Hub) Broadcast(m chat.Message) {
	h.broadcast <- m
}

func (h *Hub) deliver(m chat.Message) {
	payload, err := json.Marshal(m)
	if err != nil {
		h.log.Error("marshal message", zap.Error(err))
		return
	}

	var dropped []*Client
	h.mu.RLock()
	for client := range h.clients {
		if client.room != m.Room {
			continue
		}
		select {
		case client.send <- payload:
		default:
			dropped = append(dropped, client)
		}
	}
	h.mu.RUnlock()

	// A full send buffer means the reader is gone or hopelessly slow.
	if len(dropped) > 0 {
		h.mu.Lock()
		for _, client := range dropped {
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
		}
		h.mu.Unlock()
	}
}

func (h *Hub) systemNotice(room, body string) {
	h.deliver(chat.Message{
		ID:     h.nextID(),
		Room:   room,
		Body:   body,
		System: true,
		SentAt: time.Now().UTC(),
	})
}

func (h *Hub) nextID() string {
	h.idCounter++
	return fmt.Sprintf("relay-%d-%d", time.Now().UnixNano(), h.idCounter)
}

// RoomCount reports connected clients in a room.
func (h *Hub) RoomCount(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for client := range h.clients {
		if client.room == room {
			n++
		}
	}
	return n
}
