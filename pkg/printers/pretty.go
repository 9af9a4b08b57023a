// Package printers renders bracket summaries for plain stdout use,
// outside the full-screen UI.
package printers

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/holynakamoto/mmtui/pkg/bracket"
)

// PrettyPrint writes a colorized tournament summary.
type PrettyPrint struct {
	// Round limits output to one round when RoundSet is true.
	Round    bracket.RoundKind
	RoundSet bool
	// AllRounds prints every round instead of just the started ones.
	AllRounds bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

// Tournament prints every region, National last.
func (pp *PrettyPrint) Tournament(t *bracket.Tournament) {
	title := color.New(color.Bold, color.Underline)
	_, _ = title.Printf("%s %d\n", t.Name, t.Year)
	pp.NewLine()
	for i := range t.Regions {
		pp.Region(&t.Regions[i])
	}
}

// Region prints one region's rounds.
func (pp *PrettyPrint) Region(r *bracket.Region) {
	head := color.New(color.Bold, color.FgHiYellow)
	_, _ = head.Println(r.Name)
	for i := range r.Rounds {
		round := &r.Rounds[i]
		if pp.RoundSet && round.Kind != pp.Round {
			continue
		}
		if !pp.RoundSet && !pp.AllRounds && !roundStarted(round) {
			continue
		}
		pp.round(round)
	}
	pp.NewLine()
}

func roundStarted(r *bracket.Round) bool {
	for i := range r.Games {
		if r.Games[i].Status != bracket.Scheduled {
			return true
		}
	}
	return false
}

func (pp *PrettyPrint) round(r *bracket.Round) {
	label := color.New(color.Faint)
	_, _ = label.Printf("  %s\n", r.Kind.Label())
	for i := range r.Games {
		pp.game(&r.Games[i])
	}
}

func (pp *PrettyPrint) game(g *bracket.Game) {
	line := color.New()
	live := color.New(color.FgHiRed, color.Bold)
	done := color.New(color.Faint)

	matchup := fmt.Sprintf("    (%2d) %-18s vs (%2d) %-18s",
		g.Top.Seed, clip(g.Top.DisplayName(), 18),
		g.Bottom.Seed, clip(g.Bottom.DisplayName(), 18))

	switch g.Status {
	case bracket.InProgress:
		_, _ = line.Print(matchup)
		_, _ = live.Printf("  %d-%d %dH %s\n", score(g, true), score(g, false), g.Period, g.Clock)
	case bracket.Final:
		_, _ = line.Print(matchup)
		winner := ""
		if w := g.Winner(); w != nil {
			winner = "  " + w.ShortName
		}
		_, _ = done.Printf("  %d-%d FINAL%s\n", score(g, true), score(g, false), winner)
	case bracket.Postponed:
		_, _ = line.Print(matchup)
		_, _ = done.Println("  PPD")
	default:
		_, _ = line.Print(matchup)
		if g.StartTime != nil {
			_, _ = done.Printf("  %s\n", g.StartTime.Local().Format("Mon 03:04 PM"))
		} else {
			_, _ = done.Println("")
		}
	}
}

func score(g *bracket.Game, top bool) int {
	if g.Score == nil {
		return 0
	}
	if top {
		return g.Score.Top
	}
	return g.Score.Bottom
}

func clip(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		return string(r[:width])
	}
	return s
}
