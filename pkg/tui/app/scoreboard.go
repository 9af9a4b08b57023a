package app

import (
	"fmt"
	"sort"
	"strings"

	"github.com/holynakamoto/mmtui/pkg/bracket"
)

// scoreboardRow pairs a game with where it sits in the bracket, for
// sorting and labels.
type scoreboardRow struct {
	game   *bracket.Game
	region string
	round  bracket.RoundKind
}

// scoreboardSection lists games across the whole bracket: live first,
// then scheduled, then finals, each block in round order.
func (m Model) scoreboardSection() string {
	t := m.nav.Tournament
	if t == nil {
		return "No tournament loaded."
	}

	var rows []scoreboardRow
	for ri := range t.Regions {
		region := &t.Regions[ri]
		for di := range region.Rounds {
			round := &region.Rounds[di]
			for gi := range round.Games {
				g := &round.Games[gi]
				if g.Top.Team == nil && g.Bottom.Team == nil {
					continue
				}
				rows = append(rows, scoreboardRow{game: g, region: region.Name, round: round.Kind})
			}
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if pa, pb := statusRank(a.game.Status), statusRank(b.game.Status); pa != pb {
			return pa < pb
		}
		return a.round < b.round
	})

	max := m.contentHeight() - 1
	if max < 1 {
		max = 1
	}
	var lines []string
	for _, row := range rows {
		if len(lines) >= max {
			break
		}
		lines = append(lines, m.scoreboardLine(row))
	}
	if len(lines) == 0 {
		return "No games yet."
	}
	return strings.Join(lines, "\n")
}

func statusRank(s bracket.GameStatus) int {
	switch s {
	case bracket.InProgress:
		return 0
	case bracket.Scheduled:
		return 1
	case bracket.Final:
		return 2
	}
	return 3
}

func (m Model) scoreboardLine(row scoreboardRow) string {
	g := row.game
	matchup := fmt.Sprintf("(%d) %-16s vs (%d) %-16s",
		g.Top.Seed, clipName(g.Top.DisplayName(), 16),
		g.Bottom.Seed, clipName(g.Bottom.DisplayName(), 16))

	var state string
	switch g.Status {
	case bracket.InProgress:
		state = m.theme.Bracket.LiveScore.Render(fmt.Sprintf("%3d-%3d  %dH %s", scoreTop(g), scoreBot(g), g.Period, g.Clock))
	case bracket.Final:
		state = m.theme.Bracket.FinalScore.Render(fmt.Sprintf("%3d-%3d  FINAL", scoreTop(g), scoreBot(g)))
	case bracket.Postponed:
		state = m.theme.Bracket.RoundLabel.Render("PPD")
	default:
		if g.StartTime != nil {
			state = m.theme.Bracket.RoundLabel.Render(g.StartTime.Local().Format("03:04 PM"))
		} else {
			state = m.theme.Bracket.RoundLabel.Render("Scheduled")
		}
	}

	where := m.theme.Bracket.RoundLabel.Render(fmt.Sprintf("%-9s %s", row.region, row.round.Label()))
	return matchup + "  " + state + "  " + where
}

func clipName(name string, width int) string {
	r := []rune(name)
	if len(r) > width {
		return string(r[:width])
	}
	return name
}

func scoreTop(g *bracket.Game) int {
	if g.Score == nil {
		return 0
	}
	return g.Score.Top
}

func scoreBot(g *bracket.Game) int {
	if g.Score == nil {
		return 0
	}
	return g.Score.Bottom
}
