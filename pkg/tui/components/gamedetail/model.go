// Package gamedetail renders the drill-down for one game: a score
// header, recent plays, and both box scores.
package gamedetail

import (
	"fmt"
	"strings"

	"github.com/gosuri/uitable"

	"github.com/holynakamoto/mmtui/pkg/bracket"
	"github.com/holynakamoto/mmtui/pkg/tui/theme"
)

// Model holds the currently inspected game and its fetched detail.
type Model struct {
	theme   theme.Theme
	game    *bracket.Game
	detail  *bracket.GameDetail
	loading bool
	scroll  int
}

func New(th theme.Theme) *Model {
	return &Model{theme: th}
}

// SetGame points the view at a game and clears stale detail.
func (m *Model) SetGame(g *bracket.Game) {
	if g == nil || m.game == nil || g.ID != m.game.ID {
		m.detail = nil
		m.scroll = 0
	}
	m.game = g
}

func (m *Model) SetDetail(d *bracket.GameDetail) {
	if m.game != nil && d != nil && d.GameID != m.game.ID {
		return // stale fetch for a game no longer shown
	}
	m.detail = d
	m.loading = false
}

func (m *Model) SetLoading(on bool) { m.loading = on }

func (m *Model) GameID() string {
	if m.game == nil {
		return ""
	}
	return m.game.ID
}

func (m *Model) ScrollDown(lines int) { m.scroll += lines }

func (m *Model) ScrollUp(lines int) {
	m.scroll -= lines
	if m.scroll < 0 {
		m.scroll = 0
	}
}

// View renders the detail pane into at most height lines.
func (m *Model) View(width, height int) string {
	if m.game == nil {
		return m.theme.Detail.Play.Render("No game selected. Press Enter on a bracket game.")
	}

	var lines []string
	lines = append(lines, m.header()...)

	if m.loading && m.detail == nil {
		lines = append(lines, "", m.theme.Detail.Play.Render("Loading game detail..."))
		return strings.Join(clip(lines, m.scroll, height), "\n")
	}
	if m.detail == nil {
		lines = append(lines, "", m.theme.Detail.Play.Render("No detail available for this game."))
		return strings.Join(clip(lines, m.scroll, height), "\n")
	}

	if len(m.detail.Plays) > 0 {
		lines = append(lines, "", m.theme.Detail.Header.Render("Recent plays"))
		lines = append(lines, m.playLines(width)...)
	}
	for _, box := range []bracket.BoxScore{m.detail.HomeBox, m.detail.AwayBox} {
		if box.Team == nil && len(box.Players) == 0 {
			continue
		}
		lines = append(lines, "")
		lines = append(lines, m.boxLines(box)...)
	}
	return strings.Join(clip(lines, m.scroll, height), "\n")
}

func (m *Model) header() []string {
	g := m.game
	top := fmt.Sprintf("(%d) %s", g.Top.Seed, g.Top.DisplayName())
	bot := fmt.Sprintf("(%d) %s", g.Bottom.Seed, g.Bottom.DisplayName())
	score := ""
	if g.Score != nil {
		score = fmt.Sprintf("  %d - %d", g.Score.Top, g.Score.Bottom)
	}
	head := m.theme.Detail.Header.Render(top + " vs " + bot + score)

	var status string
	switch g.Status {
	case bracket.InProgress:
		status = m.theme.Detail.Clock.Render(fmt.Sprintf("%dH %s", g.Period, g.Clock))
	case bracket.Final:
		status = "FINAL"
	case bracket.Postponed:
		status = "POSTPONED"
	default:
		if g.StartTime != nil {
			status = g.StartTime.Local().Format("Mon 03:04 PM")
		} else {
			status = "Scheduled"
		}
	}
	if g.Location != "" {
		status += "  " + g.Location
	}
	return []string{head, status}
}

// playLines renders the most recent plays first.
func (m *Model) playLines(width int) []string {
	const maxPlays = 20
	plays := m.detail.Plays
	if len(plays) > maxPlays {
		plays = plays[len(plays)-maxPlays:]
	}
	lines := make([]string, 0, len(plays))
	for i := len(plays) - 1; i >= 0; i-- {
		p := plays[i]
		text := fmt.Sprintf("%dH %-5s %s (%d-%d)", p.Period, p.Clock, p.Description, p.AwayScore, p.HomeScore)
		if r := []rune(text); width > 0 && len(r) > width {
			text = string(r[:width])
		}
		lines = append(lines, m.theme.Detail.Play.Render(text))
	}
	return lines
}

// boxLines renders one team's box score as an aligned table.
func (m *Model) boxLines(box bracket.BoxScore) []string {
	name := "Unknown"
	if box.Team != nil {
		name = box.Team.Name
	}
	table := uitable.New()
	table.MaxColWidth = 24
	table.AddRow("PLAYER", "MIN", "FG", "3PT", "REB", "AST", "PTS")
	for _, p := range box.Players {
		table.AddRow(p.Name, p.Minutes, p.FG, p.FG3, p.Rebounds, p.Assists, p.Points)
	}
	table.AddRow("TOTALS", "", box.Totals.FG, box.Totals.FG3, box.Totals.Rebounds, box.Totals.Assists, box.Totals.Points)

	lines := []string{m.theme.Detail.Header.Render(name)}
	for i, row := range strings.Split(table.String(), "\n") {
		switch {
		case i == 0:
			lines = append(lines, m.theme.Detail.TableHead.Render(row))
		case strings.HasPrefix(row, "TOTALS"):
			lines = append(lines, m.theme.Detail.Totals.Render(row))
		default:
			lines = append(lines, m.theme.Detail.TableRow.Render(row))
		}
	}
	return lines
}

// clip applies scroll and height to the assembled lines.
func clip(lines []string, scroll, height int) []string {
	if scroll >= len(lines) {
		scroll = len(lines) - 1
		if scroll < 0 {
			scroll = 0
		}
	}
	lines = lines[scroll:]
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	return lines
}
