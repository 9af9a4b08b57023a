package picks

import (
	"fmt"
	"testing"

	"github.com/holynakamoto/mmtui/pkg/bracket"
)

// fixture builds a two-region mini bracket plus a National section.
func fixture() *bracket.Tournament {
	games := func(prefix string, n int) []bracket.Game {
		out := make([]bracket.Game, n)
		for i := range out {
			out[i] = bracket.Game{
				ID: fmt.Sprintf("%s-%d", prefix, i),
				Top: bracket.TeamSeed{Seed: 1, Team: &bracket.Team{
					ID: fmt.Sprintf("%s-%d-t", prefix, i), Name: "Top", ShortName: "Top"}},
				Bottom: bracket.TeamSeed{Seed: 2, Team: &bracket.Team{
					ID: fmt.Sprintf("%s-%d-b", prefix, i), Name: "Bottom", ShortName: "Bottom"}},
			}
		}
		return out
	}
	return &bracket.Tournament{
		Year: 2026,
		Regions: []bracket.Region{
			{Name: "East", Rounds: []bracket.Round{
				{Kind: bracket.First, Games: games("e1", 2)},
				{Kind: bracket.Second, Games: games("e2", 1)},
			}},
			{Name: "West", Rounds: []bracket.Round{
				{Kind: bracket.First, Games: games("w1", 2)},
				{Kind: bracket.Second, Games: games("w2", 1)},
			}},
			{Name: bracket.NationalRegion, Rounds: []bracket.Round{
				{Kind: bracket.FinalFour, Games: games("ff", 1)},
				{Kind: bracket.Championship, Games: games("ch", 1)},
			}},
		},
	}
}

func TestWizardWalksRoundOrder(t *testing.T) {
	tr := fixture()
	w := NewWizard(tr, New("me", 2026))

	var visited []string
	for !w.Completed() {
		g, _, _ := w.Current()
		visited = append(visited, g.ID)
		w.Select(SlotTop)
	}

	want := []string{"e1-0", "e1-1", "w1-0", "w1-1", "e2-0", "w2-0", "ff-0", "ch-0"}
	if len(visited) != len(want) {
		t.Fatalf("visited %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("visited %v, want %v", visited, want)
		}
	}
}

func TestWizardRegionAndRoundContext(t *testing.T) {
	w := NewWizard(fixture(), New("me", 2026))
	g, region, kind := w.Current()
	if g == nil || region != "East" || kind != bracket.First {
		t.Fatalf("current = (%v, %q, %v)", g, region, kind)
	}
}

func TestWizardBack(t *testing.T) {
	p := New("me", 2026)
	w := NewWizard(fixture(), p)
	w.Select(SlotTop)
	w.Select(SlotTop)
	w.Back()

	g, _, _ := w.Current()
	if g.ID != "e1-1" {
		t.Fatalf("after back, current = %s, want e1-1", g.ID)
	}

	w.Select(SlotBottom)
	if slot, _ := p.Picked("e1-1"); slot != SlotBottom {
		t.Fatalf("re-pick = %q, want bottom", slot)
	}
}

func TestWizardResumesAfterSavedPicks(t *testing.T) {
	p := New("me", 2026)
	p.Pick("e1-0", SlotTop)
	p.Pick("e1-1", SlotTop)

	w := NewWizard(fixture(), p)
	g, _, _ := w.Current()
	if g.ID != "w1-0" {
		t.Fatalf("resume at %s, want w1-0", g.ID)
	}
	done, total := w.Progress()
	if done != 2 || total != 8 {
		t.Fatalf("progress = %d/%d, want 2/8", done, total)
	}
}

func TestPicksCorrect(t *testing.T) {
	g := &bracket.Game{
		ID:     "g1",
		Top:    bracket.TeamSeed{Team: &bracket.Team{ID: "a", Name: "A"}},
		Bottom: bracket.TeamSeed{Team: &bracket.Team{ID: "b", Name: "B"}},
		Status: bracket.Final, WinnerID: "a",
	}
	p := New("me", 2026)
	p.Pick("g1", SlotTop)
	if !p.Correct(g) {
		t.Fatal("top pick should be correct")
	}
	p.Pick("g1", SlotBottom)
	if p.Correct(g) {
		t.Fatal("bottom pick should be wrong")
	}

	g.Status = bracket.InProgress
	p.Pick("g1", SlotTop)
	if p.Correct(g) {
		t.Fatal("live game is never correct yet")
	}
}
