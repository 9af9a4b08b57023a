// Package picks records a user's bracket predictions and walks the
// wizard that collects them, one game at a time in round order.
package picks

import "github.com/holynakamoto/mmtui/pkg/bracket"

// Slot names which side of a game was picked.
type Slot string

const (
	SlotTop    Slot = "top"
	SlotBottom Slot = "bottom"
)

// Picks is one user's bracket for one tournament year. Selections map
// game IDs to the chosen slot, so picks stay meaningful even while
// later-round slots are still placeholders.
type Picks struct {
	UserID     string          `json:"userId"`
	Year       int             `json:"year"`
	Selections map[string]Slot `json:"selections"`
}

func New(userID string, year int) *Picks {
	return &Picks{
		UserID:     userID,
		Year:       year,
		Selections: make(map[string]Slot),
	}
}

// Pick records a selection for a game.
func (p *Picks) Pick(gameID string, slot Slot) {
	if p.Selections == nil {
		p.Selections = make(map[string]Slot)
	}
	p.Selections[gameID] = slot
}

// Picked returns the recorded slot for a game, if any.
func (p *Picks) Picked(gameID string) (Slot, bool) {
	slot, ok := p.Selections[gameID]
	return slot, ok
}

// PickedSeed resolves a recorded slot against the live game.
func (p *Picks) PickedSeed(g *bracket.Game) (bracket.TeamSeed, bool) {
	slot, ok := p.Selections[g.ID]
	if !ok {
		return bracket.TeamSeed{}, false
	}
	if slot == SlotBottom {
		return g.Bottom, true
	}
	return g.Top, true
}

// Correct reports whether the pick matches a finished game's winner.
// Unfinished games and unresolved picks are never correct.
func (p *Picks) Correct(g *bracket.Game) bool {
	if g.Status != bracket.Final {
		return false
	}
	seed, ok := p.PickedSeed(g)
	if !ok || seed.Team == nil {
		return false
	}
	winner := g.Winner()
	return winner != nil && winner.ID == seed.Team.ID
}
