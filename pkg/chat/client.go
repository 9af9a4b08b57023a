package chat

import (
	"context"
	"fmt"
	"math/rand"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeTimeout = 5 * time.Second
	sendBuffer   = 16
	recvBuffer   = 64
)

// Client maintains a websocket connection to the relay, reconnecting
// with exponential backoff. Incoming messages stream over a channel;
// outgoing ones queue and drop when the buffer is full rather than
// blocking the UI.
type Client struct {
	url    string
	room   string
	handle string
	log    *zap.Logger

	outgoing chan Message
	incoming chan Message
}

func NewClient(rawURL, room, handle string, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		url:      rawURL,
		room:     room,
		handle:   handle,
		log:      log,
		outgoing: make(chan Message, sendBuffer),
		incoming: make(chan Message, recvBuffer),
	}
}

// Incoming streams messages received from the relay, including the
// synthetic connection notices this client generates.
func (c *Client) Incoming() <-chan Message {
	return c.incoming
}

// Send queues a chat message. Returns false when the queue is full,
// which the UI surfaces instead of blocking.
func (c *Client) Send(body string) bool {
	m := Message{
		ID:     newMessageID(),
		Room:   c.room,
		From:   c.handle,
		Body:   body,
		SentAt: time.Now().UTC(),
	}
	select {
	case c.outgoing <- m:
		return true
	default:
		return false
	}
}

// Run connects and pumps messages until ctx is cancelled. Each failed
// connection waits one exponential backoff step; a successful session
// resets the schedule.
func (c *Client) Run(ctx context.Context) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = time.Second
	bo.MaxInterval = 30 * time.Second
	bo.MaxElapsedTime = 0

	for {
		if err := c.session(ctx); err != nil {
			c.log.Warn("chat session ended", zap.Error(err))
		}
		if ctx.Err() != nil {
			return
		}
		c.notice("disconnected, retrying")

		select {
		case <-ctx.Done():
			return
		case <-time.After(bo.NextBackOff()):
		}
	}
}

// session dials, runs the read and write pumps, and returns when
// either side of the connection fails.
func (c *Client) session(ctx context.Context) error {
	dialURL, err := c.dialURL()
	if err != nil {
		return err
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, dialURL, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", dialURL, err)
	}
	defer conn.Close()

	c.log.Info("chat connected", zap.String("room", c.room))
	c.notice("connected to " + c.room)

	done := make(chan error, 2)

	// Closed when the session ends so the write pump never outlives it
	// and competes with the next session for the outgoing queue.
	quit := make(chan struct{})
	defer close(quit)

	go func() {
		for {
			var m Message
			if err := conn.ReadJSON(&m); err != nil {
				done <- err
				return
			}
			select {
			case c.incoming <- m:
			case <-ctx.Done():
				done <- ctx.Err()
				return
			}
		}
	}()

	go func() {
		for {
			select {
			case <-quit:
				return
			case <-ctx.Done():
				done <- ctx.Err()
				return
			case m := <-c.outgoing:
				conn.SetWriteDeadline(time.Now().Add(writeTimeout))
				if err := conn.WriteJSON(m); err != nil {
					done <- err
					return
				}
			}
		}
	}()

	err = <-done
	conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return err
}

func (c *Client) dialURL() (string, error) {
	u, err := url.Parse(c.url)
	if err != nil {
		return "", fmt.Errorf("chat url %q: %w", c.url, err)
	}
	q := u.Query()
	q.Set("room", c.room)
	q.Set("handle", c.handle)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// notice injects a local system message into the incoming stream.
func (c *Client) notice(body string) {
	m := Message{
		ID:     newMessageID(),
		Room:   c.room,
		Body:   body,
		System: true,
		SentAt: time.Now().UTC(),
	}
	select {
	case c.incoming <- m:
	default:
	}
}

func newMessageID() string {
	return fmt.Sprintf("%d-%04x", time.Now().UnixNano(), rand.Intn(0xffff))
}
