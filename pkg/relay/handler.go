package relay

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/holynakamoto/mmtui/pkg/chat"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The relay serves terminal clients, not browsers.
	CheckOrigin: func(*http.Request) bool { return true },
}

// Client is one websocket connection pinned to a room.
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	room   string
	handle string
}

// Handler upgrades websocket connections. Room and handle arrive as
// query parameters; an unnamed client gets a generic handle.
func Handler(h *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		room := r.URL.Query().Get("room")
		if room == "" {
			http.Error(w, "missing room", http.StatusBadRequest)
			return
		}
		handle := r.URL.Query().Get("handle")
		if handle == "" {
			handle = "anon"
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.log.Warn("upgrade failed", zap.Error(err))
			return
		}

		client := &Client{
			hub:    h,
			conn:   conn,
			send:   make(chan []byte, 64),
			room:   room,
			handle: handle,
		}
		h.register <- client

		go client.writePump()
		go client.readPump()
	}
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.hub.log.Warn("read", zap.String("handle", c.handle), zap.Error(err))
			}
			return
		}

		var m chat.Message
		if err := json.Unmarshal(data, &m); err != nil {
			c.hub.log.Warn("bad message", zap.String("handle", c.handle), zap.Error(err))
			continue
		}

		// The connection, not the sender, is authoritative for
		// identity and room.
		m.Room = c.room
		m.From = c.handle
		m.System = false
		if m.ID == "" {
			m.ID = c.hub.nextID()
		}
		if m.SentAt.IsZero() {
			m.SentAt = time.Now().UTC()
		}
		c.hub.Broadcast(m)
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
