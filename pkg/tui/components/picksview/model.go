// Package picksview renders the pick wizard: one game at a time with
// the two slots to choose between, a progress meter, and the score
// summary once picks exist against final results.
package picksview

import (
	"fmt"
	"strings"

	"github.com/holynakamoto/mmtui/pkg/bracket"
	"github.com/holynakamoto/mmtui/pkg/picks"
	"github.com/holynakamoto/mmtui/pkg/tui/theme"
)

// Model walks a wizard session for one user.
type Model struct {
	theme  theme.Theme
	wizard *picks.Wizard
	user   string
	saved  bool
	cursor picks.Slot
}

func New(th theme.Theme) *Model {
	return &Model{theme: th, cursor: picks.SlotTop}
}

// Start begins (or resumes) a wizard for the tournament.
func (m *Model) Start(t *bracket.Tournament, p *picks.Picks, user string) {
	m.wizard = picks.NewWizard(t, p)
	m.user = user
	m.saved = false
	m.cursor = picks.SlotTop
}

func (m *Model) Active() bool { return m.wizard != nil }

// Toggle flips the highlighted slot.
func (m *Model) Toggle() {
	if m.cursor == picks.SlotTop {
		m.cursor = picks.SlotBottom
	} else {
		m.cursor = picks.SlotTop
	}
}

// Confirm records the highlighted slot and advances. It reports
// whether the wizard just completed.
func (m *Model) Confirm() bool {
	if m.wizard == nil || m.wizard.Completed() {
		return false
	}
	m.wizard.Select(m.cursor)
	m.cursor = picks.SlotTop
	return m.wizard.Completed()
}

// Back revisits the previous game.
func (m *Model) Back() {
	if m.wizard != nil {
		m.wizard.Back()
		m.saved = false
	}
}

// MarkSaved flags the completed bracket as persisted.
func (m *Model) MarkSaved() { m.saved = true }

// Picks exposes the working selections for persistence.
func (m *Model) Picks() *picks.Picks {
	if m.wizard == nil {
		return nil
	}
	return m.wizard.Picks()
}

// View renders the wizard pane.
func (m *Model) View(t *bracket.Tournament) string {
	if m.wizard == nil {
		return m.theme.Detail.Play.Render("No pick session. Press n to start a bracket.")
	}
	if m.wizard.Completed() {
		return m.summary(t)
	}

	game, region, kind := m.wizard.Current()
	done, total := m.wizard.Progress()

	var b strings.Builder
	b.WriteString(m.theme.Detail.Header.Render(fmt.Sprintf("Pick Wizard — %s (%d/%d)", m.user, done, total)))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Bracket.RoundLabel.Render(fmt.Sprintf("%s · %s", kind.Label(), region)))
	b.WriteString("\n\n")
	b.WriteString(m.slotLine(game.Top, game, picks.SlotTop))
	b.WriteString("\n")
	b.WriteString(m.slotLine(game.Bottom, game, picks.SlotBottom))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Footer.Help.Render("j/k=choose  Enter=pick  u=undo last  Esc=leave"))
	return b.String()
}

func (m *Model) slotLine(ts bracket.TeamSeed, g *bracket.Game, slot picks.Slot) string {
	marker := "  "
	if m.cursor == slot {
		marker = "▸ "
	}
	label := ts.DisplayName()
	if ts.Seed > 0 {
		label = fmt.Sprintf("(%d) %s", ts.Seed, label)
	}
	// Carry the user's earlier pick forward when they step back.
	if picked, ok := m.wizard.Picks().Picked(g.ID); ok && picked == slot {
		label += " ●"
	}
	if m.cursor == slot {
		return marker + m.theme.Bracket.Selected.Render(label)
	}
	return marker + m.theme.Bracket.Team.Render(label)
}

// summary scores the finished bracket against final games.
func (m *Model) summary(t *bracket.Tournament) string {
	p := m.wizard.Picks()
	correct, decided := 0, 0
	for _, region := range t.Regions {
		for _, round := range region.Rounds {
			if round.Kind == bracket.FirstFour {
				continue
			}
			for i := range round.Games {
				g := &round.Games[i]
				if g.Status != bracket.Final {
					continue
				}
				decided++
				if p.Correct(g) {
					correct++
				}
			}
		}
	}

	var b strings.Builder
	b.WriteString(m.theme.Detail.Header.Render("Bracket complete — " + m.user))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Correct picks: %d of %d decided games\n", correct, decided))
	if champ := m.championPick(t); champ != "" {
		b.WriteString("Champion pick: " + m.theme.Bracket.PickBadge.Render(champ) + "\n")
	}
	if m.saved {
		b.WriteString("\n" + m.theme.Footer.Status.Render("Saved."))
	} else {
		b.WriteString("\n" + m.theme.Footer.Help.Render("s=save  u=revisit last pick"))
	}
	return b.String()
}

func (m *Model) championPick(t *bracket.Tournament) string {
	national := t.Region(bracket.NationalRegion)
	if national == nil {
		return ""
	}
	round := national.Round(bracket.Championship)
	if round == nil || len(round.Games) == 0 {
		return ""
	}
	seed, ok := m.wizard.Picks().PickedSeed(&round.Games[0])
	if !ok {
		return ""
	}
	return seed.DisplayName()
}
