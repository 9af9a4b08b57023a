package finalfour

import (
	"strings"
	"testing"

	"github.com/holynakamoto/mmtui/pkg/bracket"
	"github.com/holynakamoto/mmtui/pkg/tui/theme"
)

func nationalRegion(decided bool) *bracket.Region {
	fl := &bracket.Team{ID: "fl", Name: "Florida Gators", ShortName: "Florida"}
	hou := &bracket.Team{ID: "hou", Name: "Houston Cougars", ShortName: "Houston"}
	au := &bracket.Team{ID: "au", Name: "Auburn Tigers", ShortName: "Auburn"}
	duke := &bracket.Team{ID: "duke", Name: "Duke Blue Devils", ShortName: "Duke"}

	champ := bracket.Game{
		ID:     "champ",
		Top:    bracket.TeamSeed{Seed: 1, Team: fl},
		Bottom: bracket.TeamSeed{Seed: 1, Team: hou},
	}
	if decided {
		champ.Status = bracket.Final
		champ.Score = &bracket.Score{Top: 65, Bottom: 63}
		champ.WinnerID = "fl"
	}
	return &bracket.Region{
		ID:   "national",
		Name: bracket.NationalRegion,
		Rounds: []bracket.Round{
			{Kind: bracket.FinalFour, Games: []bracket.Game{
				{ID: "ff1", Top: bracket.TeamSeed{Seed: 1, Team: fl}, Bottom: bracket.TeamSeed{Seed: 1, Team: au}, Status: bracket.Final, Score: &bracket.Score{Top: 79, Bottom: 73}, WinnerID: "fl"},
				{ID: "ff2", Top: bracket.TeamSeed{Seed: 1, Team: hou}, Bottom: bracket.TeamSeed{Seed: 1, Team: duke}, Status: bracket.Final, Score: &bracket.Score{Top: 70, Bottom: 67}, WinnerID: "hou"},
			}},
			{Kind: bracket.Championship, Games: []bracket.Game{champ}},
		},
	}
}

func TestRenderTriPanel(t *testing.T) {
	m := New(theme.Theme{})
	lines := m.Render(nationalRegion(true), 100, Selection{}, nil)

	if !strings.Contains(lines[0], "── FINAL FOUR ──") {
		t.Fatalf("title missing: %q", lines[0])
	}
	// Panel rows are lines 2..4: top team, score/status, bottom team.
	top := lines[2]
	for _, name := range []string{"Florida", "Houston"} {
		if strings.Count(top, name) < 1 {
			t.Fatalf("top row missing %s: %q", name, top)
		}
	}
	if !strings.Contains(lines[3], "FINAL") {
		t.Fatalf("status row: %q", lines[3])
	}
	if !strings.Contains(lines[3], "────") {
		t.Fatalf("score row should carry connectors: %q", lines[3])
	}
	if !strings.Contains(lines[len(lines)-1], "Florida Gators") {
		t.Fatalf("champion line missing: %q", lines[len(lines)-1])
	}
}

func TestRenderUndecidedHasNoChampionLine(t *testing.T) {
	m := New(theme.Theme{})
	lines := m.Render(nationalRegion(false), 100, Selection{}, nil)
	for _, l := range lines {
		if strings.Contains(l, "🏆") {
			t.Fatalf("champion line rendered before the final: %q", l)
		}
	}
}

func TestRenderStackedFallback(t *testing.T) {
	m := New(theme.Theme{})
	lines := m.Render(nationalRegion(true), 40, Selection{}, nil)
	var labels []string
	for _, l := range lines {
		if strings.HasPrefix(l, "Semifinal") || strings.HasPrefix(l, "Championship") {
			labels = append(labels, l)
		}
	}
	want := []string{"Semifinal 1", "Semifinal 2", "Championship"}
	if len(labels) != len(want) {
		t.Fatalf("labels = %v, want %v", labels, want)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Fatalf("labels[%d] = %q, want %q", i, labels[i], want[i])
		}
	}
}

func TestRenderMissingNationalRegion(t *testing.T) {
	m := New(theme.Theme{})
	lines := m.Render(nil, 100, Selection{}, nil)
	if len(lines) == 0 {
		t.Fatal("expected placeholder output for nil region")
	}
}
