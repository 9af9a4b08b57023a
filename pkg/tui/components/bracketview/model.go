// Package bracketview renders one regional bracket (First Round
// through Elite Eight) as a text canvas, positioning game cells and
// box-drawing connectors from the layout grid.
package bracketview

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/holynakamoto/mmtui/pkg/bracket"
	"github.com/holynakamoto/mmtui/pkg/bracket/layout"
	"github.com/holynakamoto/mmtui/pkg/picks"
	"github.com/holynakamoto/mmtui/pkg/tui/theme"
)

// Model renders regions with a shared theme.
type Model struct {
	theme theme.Theme
}

func New(th theme.Theme) Model {
	return Model{theme: th}
}

// Selection marks the highlighted game when the cursor is in the
// rendered region.
type Selection struct {
	Active bool
	Round  bracket.RoundKind
	Game   int
}

// chunk is a styled run of text anchored at a column. plainWidth is
// the unstyled rune count, used when padding between chunks.
type chunk struct {
	col        int
	plainWidth int
	text       string
}

// Render draws the region into layout.RegionHeight lines. Scroll and
// viewport clipping are the caller's concern.
func (m Model) Render(region *bracket.Region, width int, mirrored, flipped bool, sel Selection, pk *picks.Picks) []string {
	grid := layout.Compute(width, mirrored, flipped)
	rows := make([][]chunk, layout.RegionHeight)

	for _, seg := range grid.Connectors() {
		rows[seg.Row] = append(rows[seg.Row], chunk{
			col:        seg.Col,
			plainWidth: 1,
			text:       m.theme.Bracket.Connector.Render(string(seg.Rune)),
		})
	}

	for _, cell := range grid.Cells {
		game := gameAt(region, cell.Round, cell.GameIndex)
		if game == nil {
			continue
		}
		selected := sel.Active && sel.Round == cell.Round && sel.Game == cell.GameIndex
		m.placeCell(rows, cell, game, selected, pk)
	}

	lines := make([]string, layout.RegionHeight)
	for i, chunks := range rows {
		lines[i] = joinChunks(chunks)
	}
	return lines
}

// placeCell writes the three lines of one game cell: top team,
// score/status, bottom team. Team lines leave the last column for the
// pick marker.
func (m Model) placeCell(rows [][]chunk, cell layout.Cell, game *bracket.Game, selected bool, pk *picks.Picks) {
	put := func(rowOffset, col, plainWidth int, text string) {
		row := cell.CenterRow + rowOffset
		if row < 0 || row >= len(rows) {
			return
		}
		rows[row] = append(rows[row], chunk{col: col, plainWidth: plainWidth, text: text})
	}

	topScore, botScore := splitScore(game.Score)
	top := formatTeamLine(game.Top, topScore, cell.Width)
	mid := formatStatusLine(game, cell.Width)
	bot := formatTeamLine(game.Bottom, botScore, cell.Width)
	badgeCol := cell.Col + cell.Width - 1

	if selected {
		style := m.theme.Bracket.Selected
		put(-1, cell.Col, len([]rune(top)), style.Render(top))
		put(0, cell.Col, len([]rune(mid)), style.Render(mid))
		put(1, cell.Col, len([]rune(bot)), style.Render(bot))
		put(-1, badgeCol, 1, style.Render(badgeRune(pk, game, picks.SlotTop)))
		put(1, badgeCol, 1, style.Render(badgeRune(pk, game, picks.SlotBottom)))
		return
	}

	put(-1, cell.Col, len([]rune(top)), m.teamStyle(game, game.Top).Render(top))
	put(0, cell.Col, len([]rune(mid)), m.statusStyle(game).Render(mid))
	put(1, cell.Col, len([]rune(bot)), m.teamStyle(game, game.Bottom).Render(bot))
	put(-1, badgeCol, 1, m.theme.Bracket.PickBadge.Render(badgeRune(pk, game, picks.SlotTop)))
	put(1, badgeCol, 1, m.theme.Bracket.PickBadge.Render(badgeRune(pk, game, picks.SlotBottom)))
}

// GameBox renders one game as a standalone three-line box, outside any
// grid. The Final Four panels use this.
func (m Model) GameBox(game *bracket.Game, width int, selected bool, pk *picks.Picks) [3]string {
	if game == nil {
		blank := strings.Repeat(" ", width)
		ph := m.theme.Bracket.Placeholder.Render(blank)
		return [3]string{ph, ph, ph}
	}
	topScore, botScore := splitScore(game.Score)
	top := formatTeamLine(game.Top, topScore, width)
	mid := formatStatusLine(game, width)
	bot := formatTeamLine(game.Bottom, botScore, width)

	if selected {
		style := m.theme.Bracket.Selected
		return [3]string{
			style.Render(top) + style.Render(badgeRune(pk, game, picks.SlotTop)),
			style.Render(mid),
			style.Render(bot) + style.Render(badgeRune(pk, game, picks.SlotBottom)),
		}
	}
	badge := m.theme.Bracket.PickBadge
	return [3]string{
		m.teamStyle(game, game.Top).Render(top) + badge.Render(badgeRune(pk, game, picks.SlotTop)),
		m.statusStyle(game).Render(mid),
		m.teamStyle(game, game.Bottom).Render(bot) + badge.Render(badgeRune(pk, game, picks.SlotBottom)),
	}
}

func (m Model) teamStyle(g *bracket.Game, ts bracket.TeamSeed) lipgloss.Style {
	if ts.Team == nil {
		return m.theme.Bracket.Placeholder
	}
	if g.Status == bracket.Final {
		if w := g.Winner(); w != nil {
			if w.ID == ts.Team.ID {
				return m.theme.Bracket.Winner
			}
			return m.theme.Bracket.Eliminated
		}
	}
	return m.theme.TeamStyle(ts.Team.Color)
}

func (m Model) statusStyle(g *bracket.Game) lipgloss.Style {
	switch g.Status {
	case bracket.InProgress:
		return m.theme.Bracket.LiveScore
	case bracket.Final:
		return m.theme.Bracket.FinalScore
	}
	return m.theme.Bracket.RoundLabel
}

func gameAt(region *bracket.Region, kind bracket.RoundKind, index int) *bracket.Game {
	if region == nil {
		return nil
	}
	round := region.Round(kind)
	if round == nil || index >= len(round.Games) {
		return nil
	}
	return &round.Games[index]
}

func splitScore(s *bracket.Score) (top, bot string) {
	if s == nil {
		return "   ", "   "
	}
	return fmt.Sprintf("%3d", s.Top), fmt.Sprintf("%3d", s.Bottom)
}

func badgeRune(pk *picks.Picks, g *bracket.Game, slot picks.Slot) string {
	if pk != nil {
		if picked, ok := pk.Picked(g.ID); ok && picked == slot {
			return "●"
		}
	}
	return " "
}

// formatTeamLine renders a team slot into width-1 columns: two-wide
// seed, name padded to width-8, three-wide score. The final column is
// reserved for the pick marker.
func formatTeamLine(ts bracket.TeamSeed, score string, width int) string {
	seed := "  "
	if ts.Seed > 0 {
		seed = fmt.Sprintf("%2d", ts.Seed)
	}
	nameWidth := width - 8
	if nameWidth < 1 {
		nameWidth = 1
	}
	line := seed + " " + padName(ts.DisplayName(), nameWidth) + " " + score
	return fitWidth(line, width-1)
}

// formatStatusLine renders the middle cell line: tip time for
// scheduled games, period and clock while live, FINAL or PPD after.
func formatStatusLine(g *bracket.Game, width int) string {
	var text string
	switch g.Status {
	case bracket.InProgress:
		text = fmt.Sprintf(" %dH %s", g.Period, g.Clock)
	case bracket.Final:
		text = " FINAL"
	case bracket.Postponed:
		text = " PPD"
	default:
		if g.StartTime != nil {
			text = " " + g.StartTime.Local().Format("03:04 PM")
		} else {
			text = " Scheduled"
		}
	}
	return fitWidth(text, width)
}

func padName(name string, width int) string {
	r := []rune(name)
	if len(r) > width {
		return string(r[:width])
	}
	return name + strings.Repeat(" ", width-len(r))
}

func fitWidth(s string, width int) string {
	if width < 0 {
		width = 0
	}
	r := []rune(s)
	if len(r) > width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}

// joinChunks assembles one canvas row from non-overlapping chunks.
func joinChunks(chunks []chunk) string {
	sort.Slice(chunks, func(i, j int) bool { return chunks[i].col < chunks[j].col })
	var b strings.Builder
	col := 0
	for _, c := range chunks {
		if c.col > col {
			b.WriteString(strings.Repeat(" ", c.col-col))
			col = c.col
		}
		b.WriteString(c.text)
		col += c.plainWidth
	}
	return b.String()
}
