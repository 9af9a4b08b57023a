// Package finalfour renders the national rounds: two semifinals
// flanking the championship, joined by horizontal connectors, with a
// stacked fallback for narrow terminals.
package finalfour

import (
	"strings"

	"github.com/holynakamoto/mmtui/pkg/bracket"
	"github.com/holynakamoto/mmtui/pkg/picks"
	"github.com/holynakamoto/mmtui/pkg/tui/components/bracketview"
	"github.com/holynakamoto/mmtui/pkg/tui/theme"
)

const (
	wideCell   = 22
	narrowCell = 18
	panelGap   = 4
)

// Model renders the national bracket with a shared theme.
type Model struct {
	theme theme.Theme
	boxes bracketview.Model
}

func New(th theme.Theme) Model {
	return Model{theme: th, boxes: bracketview.New(th)}
}

// Selection marks the highlighted game within the national region.
type Selection struct {
	Active bool
	Round  bracket.RoundKind
	Game   int
}

// Render draws the Final Four and championship. Three panels fit side
// by side when the terminal allows; otherwise the games stack.
func (m Model) Render(national *bracket.Region, width int, sel Selection, pk *picks.Picks) []string {
	semi1, semi2 := semifinals(national)
	champ := championship(national)

	cellWidth := narrowCell
	if width >= 72 {
		cellWidth = wideCell
	}
	triWidth := cellWidth*3 + panelGap*2
	if width < triWidth {
		return m.renderStacked(semi1, semi2, champ, cellWidth, sel, pk)
	}

	title := "── FINAL FOUR ──"
	pad := (triWidth - len([]rune(title))) / 2
	if pad < 0 {
		pad = 0
	}
	lines := []string{
		strings.Repeat(" ", pad) + m.theme.Bracket.RegionTitle.Render(title),
		"",
	}

	left := m.boxes.GameBox(semi1, cellWidth, selected(sel, bracket.FinalFour, 0), pk)
	mid := m.boxes.GameBox(champ, cellWidth, selected(sel, bracket.Championship, 0), pk)
	right := m.boxes.GameBox(semi2, cellWidth, selected(sel, bracket.FinalFour, 1), pk)

	gap := strings.Repeat(" ", panelGap)
	// The score row carries connector dashes from each semifinal into
	// the championship panel.
	join := m.theme.Bracket.Connector.Render(strings.Repeat("─", panelGap))
	for row := 0; row < 3; row++ {
		g := gap
		if row == 1 {
			g = join
		}
		lines = append(lines, left[row]+g+mid[row]+g+right[row])
	}

	if line := m.championLine(champ); line != "" {
		lines = append(lines, "", strings.Repeat(" ", pad)+line)
	}
	return lines
}

func (m Model) renderStacked(semi1, semi2, champ *bracket.Game, cellWidth int, sel Selection, pk *picks.Picks) []string {
	var lines []string
	lines = append(lines, m.theme.Bracket.RegionTitle.Render("── FINAL FOUR ──"), "")
	sections := []struct {
		label string
		game  *bracket.Game
		on    bool
	}{
		{"Semifinal 1", semi1, selected(sel, bracket.FinalFour, 0)},
		{"Semifinal 2", semi2, selected(sel, bracket.FinalFour, 1)},
		{"Championship", champ, selected(sel, bracket.Championship, 0)},
	}
	for _, s := range sections {
		lines = append(lines, m.theme.Bracket.RoundLabel.Render(s.label))
		box := m.boxes.GameBox(s.game, cellWidth, s.on, pk)
		lines = append(lines, box[0], box[1], box[2], "")
	}
	if line := m.championLine(champ); line != "" {
		lines = append(lines, line)
	}
	return lines
}

func (m Model) championLine(champ *bracket.Game) string {
	if champ == nil || champ.Status != bracket.Final {
		return ""
	}
	w := champ.Winner()
	if w == nil {
		return ""
	}
	return m.theme.Bracket.Winner.Render("🏆 " + w.Name)
}

func selected(sel Selection, kind bracket.RoundKind, game int) bool {
	return sel.Active && sel.Round == kind && sel.Game == game
}

func semifinals(national *bracket.Region) (*bracket.Game, *bracket.Game) {
	if national == nil {
		return nil, nil
	}
	round := national.Round(bracket.FinalFour)
	if round == nil {
		return nil, nil
	}
	var a, b *bracket.Game
	if len(round.Games) > 0 {
		a = &round.Games[0]
	}
	if len(round.Games) > 1 {
		b = &round.Games[1]
	}
	return a, b
}

func championship(national *bracket.Region) *bracket.Game {
	if national == nil {
		return nil
	}
	round := national.Round(bracket.Championship)
	if round == nil || len(round.Games) == 0 {
		return nil
	}
	return &round.Games[0]
}
