package picks

import "github.com/holynakamoto/mmtui/pkg/bracket"

// gameRef locates one game in the tournament tree.
type gameRef struct {
	region string
	kind   bracket.RoundKind
	index  int
}

// Wizard steps through every pickable game in round order: all of a
// round across the regions before the next round, regions in the
// tournament's own order, the National games last. First Four games
// are not picked.
type Wizard struct {
	tournament *bracket.Tournament
	picks      *Picks
	order      []gameRef
	index      int
}

func NewWizard(t *bracket.Tournament, p *Picks) *Wizard {
	w := &Wizard{tournament: t, picks: p}
	for _, kind := range bracket.RoundKinds() {
		if kind == bracket.FirstFour {
			continue
		}
		for _, region := range t.Regions {
			round := region.Round(kind)
			if round == nil {
				continue
			}
			for i := range round.Games {
				w.order = append(w.order, gameRef{region: region.Name, kind: kind, index: i})
			}
		}
	}
	// Resume behind the last recorded pick.
	for w.index < len(w.order) {
		if _, ok := p.Picked(w.game(w.order[w.index]).ID); !ok {
			break
		}
		w.index++
	}
	return w
}

func (w *Wizard) game(ref gameRef) *bracket.Game {
	region := w.tournament.Region(ref.region)
	if region == nil {
		return nil
	}
	round := region.Round(ref.kind)
	if round == nil || ref.index >= len(round.Games) {
		return nil
	}
	return &round.Games[ref.index]
}

// Current returns the game awaiting a pick, with its region name and
// round, or nil when the wizard is done.
func (w *Wizard) Current() (*bracket.Game, string, bracket.RoundKind) {
	if w.Completed() {
		return nil, "", bracket.First
	}
	ref := w.order[w.index]
	return w.game(ref), ref.region, ref.kind
}

// Select records a pick for the current game and advances.
func (w *Wizard) Select(slot Slot) {
	if w.Completed() {
		return
	}
	if g := w.game(w.order[w.index]); g != nil {
		w.picks.Pick(g.ID, slot)
	}
	w.index++
}

// Back steps to the previous game so its pick can be changed.
func (w *Wizard) Back() {
	if w.index > 0 {
		w.index--
	}
}

// Completed reports whether every game has been visited.
func (w *Wizard) Completed() bool {
	return w.index >= len(w.order)
}

// Progress returns picks made so far and the total count.
func (w *Wizard) Progress() (done, total int) {
	done = 0
	for _, ref := range w.order {
		if g := w.game(ref); g != nil {
			if _, ok := w.picks.Picked(g.ID); ok {
				done++
			}
		}
	}
	return done, len(w.order)
}

// Picks exposes the underlying selections for persistence.
func (w *Wizard) Picks() *Picks {
	return w.picks
}
