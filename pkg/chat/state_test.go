package chat

import (
	"fmt"
	"testing"
)

func msg(id, body string) Message {
	return Message{ID: id, From: "a", Body: body}
}

func TestStateDedupe(t *testing.T) {
	s := NewState()
	if !s.Add(msg("1", "hello")) {
		t.Fatal("first add rejected")
	}
	if s.Add(msg("1", "hello")) {
		t.Fatal("duplicate id accepted")
	}
	if s.Len() != 1 {
		t.Fatalf("len = %d, want 1", s.Len())
	}
}

func TestStateHistoryLimit(t *testing.T) {
	s := NewState()
	for i := 0; i < HistoryLimit+25; i++ {
		s.Add(msg(fmt.Sprintf("m%d", i), "x"))
	}
	if s.Len() != HistoryLimit {
		t.Fatalf("len = %d, want %d", s.Len(), HistoryLimit)
	}
	if got := s.Messages()[0].ID; got != "m25" {
		t.Fatalf("oldest = %s, want m25", got)
	}
	// Evicted ids may be seen again.
	if !s.Add(msg("m0", "again")) {
		t.Fatal("evicted id still deduped")
	}
}

func TestStateSystemCoalescing(t *testing.T) {
	s := NewState()
	s.Add(msg("1", "hello"))
	s.Add(Message{ID: "s1", Body: "disconnected, retrying", System: true})
	s.Add(Message{ID: "s2", Body: "connected to lobby", System: true})

	if s.Len() != 2 {
		t.Fatalf("len = %d, want system messages coalesced", s.Len())
	}
	last := s.Messages()[s.Len()-1]
	if !last.System || last.Body != "connected to lobby" {
		t.Fatalf("last = %+v, want newest system notice", last)
	}

	// A user message breaks the run; the next notice appends.
	s.Add(msg("2", "back"))
	s.Add(Message{ID: "s3", Body: "notice", System: true})
	if s.Len() != 4 {
		t.Fatalf("len = %d, want 4", s.Len())
	}
}
