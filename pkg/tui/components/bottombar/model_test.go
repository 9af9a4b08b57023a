package bottombar

import (
	"strings"
	"testing"

	"github.com/holynakamoto/mmtui/pkg/tui/theme"
)

func TestViewDefaultHelp(t *testing.T) {
	m := New(theme.Theme{})
	view, lines := m.View()
	if lines != 1 {
		t.Fatalf("lines = %d, want 1", lines)
	}
	if !strings.Contains(view, "h/l=round") {
		t.Fatalf("default help missing: %q", view)
	}
}

func TestViewErrorAddsLine(t *testing.T) {
	m := New(theme.Theme{})
	m.SetError("fetch failed: 503")
	view, lines := m.View()
	if lines != 2 || m.Height() != 2 {
		t.Fatalf("lines = %d height = %d, want 2", lines, m.Height())
	}
	if !strings.Contains(view, "fetch failed: 503") || !strings.Contains(view, "e to dismiss") {
		t.Fatalf("error line wrong: %q", view)
	}

	m.SetError("")
	if _, lines := m.View(); lines != 1 {
		t.Fatal("error line should clear")
	}
}

func TestViewLiveAndSpinnerSegments(t *testing.T) {
	m := New(theme.Theme{})
	m.SetSpinner("⠋")
	m.SetLiveCount(3)
	m.SetStatus("updated 12s ago")
	view, _ := m.View()
	for _, want := range []string{"⠋", "● LIVE ×3", "updated 12s ago"} {
		if !strings.Contains(view, want) {
			t.Fatalf("segment %q missing from %q", want, view)
		}
	}
	// Spinner renders before the live badge.
	if strings.Index(view, "⠋") > strings.Index(view, "LIVE") {
		t.Fatalf("segment order wrong: %q", view)
	}
}

func TestSingleLiveGameHasNoCount(t *testing.T) {
	m := New(theme.Theme{})
	m.SetLiveCount(1)
	view, _ := m.View()
	if !strings.Contains(view, "● LIVE") || strings.Contains(view, "×") {
		t.Fatalf("live badge wrong: %q", view)
	}
}
