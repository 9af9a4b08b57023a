// Package chat implements the watch-party chat client: the wire
// message format shared with the relay, the bounded message log shown
// in the UI, and a websocket client that reconnects on its own.
package chat

import "time"

// Message is the wire format shared by the client and the relay.
type Message struct {
	ID     string    `json:"id"`
	Room   string    `json:"room"`
	From   string    `json:"from"`
	Body   string    `json:"body"`
	System bool      `json:"system,omitempty"`
	SentAt time.Time `json:"sentAt"`
}
