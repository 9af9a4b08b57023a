package picksview

import (
	"strings"
	"testing"

	"github.com/holynakamoto/mmtui/pkg/bracket"
	"github.com/holynakamoto/mmtui/pkg/picks"
	"github.com/holynakamoto/mmtui/pkg/tui/theme"
)

// tinyTournament has one region with a single first-round game plus a
// National championship, enough for a two-step wizard.
func tinyTournament() *bracket.Tournament {
	duke := &bracket.Team{ID: "duke", ShortName: "Duke"}
	unc := &bracket.Team{ID: "unc", ShortName: "UNC"}
	return &bracket.Tournament{
		ID:   "t",
		Year: 2025,
		Regions: []bracket.Region{
			{
				ID: "east", Name: "East",
				Rounds: []bracket.Round{{Kind: bracket.First, Games: []bracket.Game{{
					ID:       "g1",
					Top:      bracket.TeamSeed{Seed: 1, Team: duke},
					Bottom:   bracket.TeamSeed{Seed: 16, Team: unc},
					Status:   bracket.Final,
					WinnerID: "duke",
					Score:    &bracket.Score{Top: 80, Bottom: 60},
				}}}},
			},
			{
				ID: "national", Name: bracket.NationalRegion,
				Rounds: []bracket.Round{{Kind: bracket.Championship, Games: []bracket.Game{{
					ID:  "champ",
					Top: bracket.TeamSeed{Seed: 1, Team: duke},
					Bottom: bracket.TeamSeed{
						Placeholder: "TBD",
					},
				}}}},
			},
		},
	}
}

func TestViewInactive(t *testing.T) {
	m := New(theme.Theme{})
	if got := m.View(tinyTournament()); !strings.Contains(got, "No pick session") {
		t.Fatalf("View() = %q", got)
	}
}

func TestWizardFlow(t *testing.T) {
	tr := tinyTournament()
	m := New(theme.Theme{})
	m.Start(tr, picks.New("alice", 2025), "alice")

	view := m.View(tr)
	if !strings.Contains(view, "1st Round · East") {
		t.Fatalf("round header missing: %q", view)
	}
	if !strings.Contains(view, "▸ (1) Duke") {
		t.Fatalf("cursor should start on the top slot: %q", view)
	}

	m.Toggle()
	if view := m.View(tr); !strings.Contains(view, "▸ (16) UNC") {
		t.Fatalf("cursor should move to bottom slot: %q", view)
	}

	if done := m.Confirm(); done {
		t.Fatal("wizard should not complete after first pick")
	}
	if done := m.Confirm(); !done {
		t.Fatal("wizard should complete after last pick")
	}
}

func TestSummaryScoresAgainstFinals(t *testing.T) {
	tr := tinyTournament()
	m := New(theme.Theme{})
	m.Start(tr, picks.New("alice", 2025), "alice")

	m.Toggle() // pick UNC, the loser
	m.Confirm()
	m.Confirm() // champ pick: Duke slot

	view := m.View(tr)
	if !strings.Contains(view, "Correct picks: 0 of 1") {
		t.Fatalf("summary wrong: %q", view)
	}
	if !strings.Contains(view, "Champion pick: Duke") {
		t.Fatalf("champion pick missing: %q", view)
	}

	m.MarkSaved()
	if !strings.Contains(m.View(tr), "Saved.") {
		t.Fatal("saved flag not shown")
	}
}

func TestBackRevisitsPreviousGame(t *testing.T) {
	tr := tinyTournament()
	m := New(theme.Theme{})
	m.Start(tr, picks.New("bob", 2025), "bob")

	m.Confirm() // pick Duke
	m.Back()
	view := m.View(tr)
	if !strings.Contains(view, "Duke ●") {
		t.Fatalf("earlier pick should be marked on revisit: %q", view)
	}
}
