package relay

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/holynakamoto/mmtui/pkg/chat"
)

func dial(t *testing.T, srv *httptest.Server, room, handle string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/?room=" + room + "&handle=" + handle
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) chat.Message {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var m chat.Message
	if err := conn.ReadJSON(&m); err != nil {
		t.Fatalf("read: %v", err)
	}
	return m
}

func TestHubBroadcastWithinRoom(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()
	srv := httptest.NewServer(Handler(hub))
	defer srv.Close()

	alice := dial(t, srv, "finals", "alice")
	bob := dial(t, srv, "finals", "bob")

	// bob's join notice reaches alice once both are registered.
	for {
		m := readMessage(t, alice)
		if m.System && m.Body == "bob joined" {
			break
		}
	}

	if err := alice.WriteJSON(chat.Message{Body: "great game"}); err != nil {
		t.Fatalf("write: %v", err)
	}

	for {
		m := readMessage(t, bob)
		if m.System {
			continue
		}
		if m.From != "alice" || m.Body != "great game" || m.Room != "finals" {
			t.Fatalf("message = %+v", m)
		}
		if m.ID == "" || m.SentAt.IsZero() {
			t.Fatalf("relay did not stamp message: %+v", m)
		}
		break
	}
}

func TestHubRoomsAreIsolated(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()
	srv := httptest.NewServer(Handler(hub))
	defer srv.Close()

	early := dial(t, srv, "early", "alice")
	late := dial(t, srv, "late", "bob")

	if err := early.WriteJSON(chat.Message{Body: "wrong room"}); err != nil {
		t.Fatalf("write: %v", err)
	}

	late.SetReadDeadline(time.Now().Add(500 * time.Millisecond))
	var m chat.Message
	for {
		if err := late.ReadJSON(&m); err != nil {
			return // timed out with no leak
		}
		if !m.System {
			t.Fatalf("leaked across rooms: %+v", m)
		}
	}
}

func TestHubSpoofedIdentityOverwritten(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()
	srv := httptest.NewServer(Handler(hub))
	defer srv.Close()

	sender := dial(t, srv, "finals", "mallory")
	receiver := dial(t, srv, "finals", "victim")
	_ = receiver

	if err := sender.WriteJSON(chat.Message{From: "admin", System: true, Body: "pwned"}); err != nil {
		t.Fatalf("write: %v", err)
	}

	for {
		m := readMessage(t, sender)
		if m.Body != "pwned" {
			continue
		}
		if m.From != "mallory" || m.System {
			t.Fatalf("identity not enforced: %+v", m)
		}
		break
	}
}

func TestRoomCount(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()
	srv := httptest.NewServer(Handler(hub))
	defer srv.Close()

	dial(t, srv, "finals", "alice")
	dial(t, srv, "finals", "bob")
	dial(t, srv, "other", "carol")

	deadline := time.Now().Add(2 * time.Second)
	for hub.RoomCount("finals") != 2 {
		if time.Now().After(deadline) {
			t.Fatalf("RoomCount(finals) = %d, want 2", hub.RoomCount("finals"))
		}
		time.Sleep(10 * time.Millisecond)
	}
	if n := hub.RoomCount("other"); n != 1 {
		t.Fatalf("RoomCount(other) = %d, want 1", n)
	}
}
