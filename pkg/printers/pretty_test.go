package printers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/holynakamoto/mmtui/pkg/bracket"
)

func capture(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevNoColor := color.Output, color.NoColor
	color.Output = &buf
	color.NoColor = true
	defer func() {
		color.Output = prevOut
		color.NoColor = prevNoColor
	}()
	fn()
	return buf.String()
}

func sampleTournament() *bracket.Tournament {
	duke := &bracket.Team{ID: "duke", ShortName: "Duke"}
	unc := &bracket.Team{ID: "unc", ShortName: "UNC"}
	return &bracket.Tournament{
		Name: "NCAA Tournament",
		Year: 2025,
		Regions: []bracket.Region{{
			Name: "East",
			Rounds: []bracket.Round{
				{Kind: bracket.First, Games: []bracket.Game{{
					ID:       "g1",
					Top:      bracket.TeamSeed{Seed: 1, Team: duke},
					Bottom:   bracket.TeamSeed{Seed: 16, Team: unc},
					Status:   bracket.Final,
					Score:    &bracket.Score{Top: 80, Bottom: 61},
					WinnerID: "duke",
				}}},
				{Kind: bracket.Second, Games: []bracket.Game{{
					ID:     "g2",
					Top:    bracket.TeamSeed{Seed: 1, Team: duke},
					Bottom: bracket.TeamSeed{Placeholder: "Winner of g3"},
					Status: bracket.Scheduled,
				}}},
			},
		}},
	}
}

func TestTournamentPrintsStartedRounds(t *testing.T) {
	out := capture(t, func() {
		pp := &PrettyPrint{}
		pp.Tournament(sampleTournament())
	})

	for _, want := range []string{"NCAA Tournament 2025", "East", "1st Round", "Duke", "80-61 FINAL"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	// The scheduled second round has not started and stays hidden.
	if strings.Contains(out, "2nd Round") {
		t.Fatalf("unstarted round should be hidden:\n%s", out)
	}
}

func TestTournamentAllRounds(t *testing.T) {
	out := capture(t, func() {
		pp := &PrettyPrint{AllRounds: true}
		pp.Tournament(sampleTournament())
	})
	if !strings.Contains(out, "2nd Round") || !strings.Contains(out, "Winner of g3") {
		t.Fatalf("all-rounds output incomplete:\n%s", out)
	}
}

func TestRoundFilter(t *testing.T) {
	out := capture(t, func() {
		pp := &PrettyPrint{Round: bracket.Second, RoundSet: true}
		pp.Tournament(sampleTournament())
	})
	if strings.Contains(out, "1st Round") || !strings.Contains(out, "2nd Round") {
		t.Fatalf("round filter wrong:\n%s", out)
	}
}
