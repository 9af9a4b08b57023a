package chat

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

func waitConn(t *testing.T, conns chan *websocket.Conn) *websocket.Conn {
	t.Helper()
	select {
	case conn := <-conns:
		return conn
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for a connection")
		return nil
	}
}

func TestSendDeliversOnNewSessionAfterReconnect(t *testing.T) {
	up := websocket.Upgrader{}
	conns := make(chan *websocket.Conn, 2)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := up.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		conns <- conn
	}))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	c := NewClient(wsURL, "general", "tester", zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go c.Run(ctx)

	first := waitConn(t, conns)
	first.Close()

	second := waitConn(t, conns)
	defer second.Close()

	if !c.Send("back online") {
		t.Fatal("Send() = false, want message queued")
	}

	// The first session's write pump must be gone by now; only the
	// live session may drain the queue and put this on the wire.
	second.SetReadDeadline(time.Now().Add(5 * time.Second))
	var got Message
	if err := second.ReadJSON(&got); err != nil {
		t.Fatalf("reading relayed message: %v", err)
	}
	if got.Body != "back online" || got.From != "tester" {
		t.Fatalf("relayed message = %q from %q, want %q from %q",
			got.Body, got.From, "back online", "tester")
	}
}
