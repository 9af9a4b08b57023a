// Package nav owns cursor state over the bracket tree: which round is
// in view, which region and game are selected, and how far the view is
// scrolled. It is the only writer of the tree it holds; asynchronous
// fetch results are handed to it as owned values and merged here.
package nav

import "github.com/holynakamoto/mmtui/pkg/bracket"

// State is the navigation cursor over a loaded tournament.
type State struct {
	Tournament *bracket.Tournament

	// CurrentRound is the auto-detected "live" round.
	CurrentRound bracket.RoundKind
	// ViewRound is the round the user has navigated to; it starts at
	// CurrentRound on load and moves independently afterward.
	ViewRound bracket.RoundKind
	// SelectedRegion indexes the non-National regions. Ignored while
	// ViewRound is FinalFour or Championship.
	SelectedRegion int
	// SelectedGame indexes the game list of the viewed (region, round).
	SelectedGame int
	// ScrollOffset is the vertical scroll in terminal rows.
	ScrollOffset int
}

// Load stores a freshly built tournament, auto-detects the active round
// and resets the cursor. Called on every full (re)load.
func (s *State) Load(t *bracket.Tournament) {
	s.Tournament = t
	s.CurrentRound = detectActiveRound(t)
	s.ViewRound = s.CurrentRound
	s.SelectedRegion = 0
	s.SelectedGame = 0
	s.ScrollOffset = 0
}

// MergeUpdates patches games by ID and re-detects the active round so a
// newly live round surfaces without disturbing the user's cursor.
func (s *State) MergeUpdates(games []bracket.Game) {
	if s.Tournament == nil {
		return
	}
	s.Tournament.MergeUpdates(games)
	s.CurrentRound = detectActiveRound(s.Tournament)
}

// NextRound advances the viewed round, clamped at Championship.
func (s *State) NextRound() {
	if next, ok := s.ViewRound.Next(); ok {
		s.ViewRound = next
		s.SelectedGame = 0
		s.ScrollOffset = 0
	}
}

// PrevRound retreats the viewed round, clamped at FirstFour.
func (s *State) PrevRound() {
	if prev, ok := s.ViewRound.Prev(); ok {
		s.ViewRound = prev
		s.SelectedGame = 0
		s.ScrollOffset = 0
	}
}

// GameDown moves the selection toward the last game of the viewed round.
func (s *State) GameDown() {
	if max := s.gamesInView() - 1; s.SelectedGame < max {
		s.SelectedGame++
	}
}

// GameUp moves the selection toward the first game. Never negative.
func (s *State) GameUp() {
	if s.SelectedGame > 0 {
		s.SelectedGame--
	}
}

// CycleRegion advances the selected region modulo the non-National
// count. No-op while the Final Four or Championship is in view; those
// rounds always resolve to the National region.
func (s *State) CycleRegion() {
	if s.ViewRound.IsFinalFour() {
		return
	}
	count := 4
	if s.Tournament != nil {
		count = len(s.Tournament.Regions)
		if s.Tournament.Region(bracket.NationalRegion) != nil {
			count--
		}
	}
	if count < 1 {
		count = 1
	}
	s.SelectedRegion = (s.SelectedRegion + 1) % count
	s.SelectedGame = 0
	s.ScrollOffset = 0
}

// ViewedRegion resolves the region the cursor currently addresses:
// National for the Final Four rounds, the selected region otherwise.
func (s *State) ViewedRegion() *bracket.Region {
	if s.Tournament == nil {
		return nil
	}
	if s.ViewRound.IsFinalFour() {
		return s.Tournament.Region(bracket.NationalRegion)
	}
	if s.SelectedRegion >= len(s.Tournament.Regions) {
		return nil
	}
	return &s.Tournament.Regions[s.SelectedRegion]
}

// SelectedGameRef returns the game under the cursor, or nil if any link
// in region -> round -> game is absent (e.g. a round not yet populated).
func (s *State) SelectedGameRef() *bracket.Game {
	region := s.ViewedRegion()
	if region == nil {
		return nil
	}
	round := region.Round(s.ViewRound)
	if round == nil || s.SelectedGame >= len(round.Games) {
		return nil
	}
	return &round.Games[s.SelectedGame]
}

// SelectedGameID returns the ID of the game under the cursor, or "".
func (s *State) SelectedGameID() string {
	if g := s.SelectedGameRef(); g != nil {
		return g.ID
	}
	return ""
}

func (s *State) gamesInView() int {
	region := s.ViewedRegion()
	if region == nil {
		return 0
	}
	round := region.Round(s.ViewRound)
	if round == nil {
		return 0
	}
	return len(round.Games)
}

// detectActiveRound scans rounds in canonical order and returns the
// first with any in-progress game; failing that, the latest round with
// any final game; failing that, First.
func detectActiveRound(t *bracket.Tournament) bracket.RoundKind {
	lastFinal := bracket.First
	for _, kind := range bracket.RoundKinds() {
		live, finished := false, false
		for ri := range t.Regions {
			round := t.Regions[ri].Round(kind)
			if round == nil {
				continue
			}
			for gi := range round.Games {
				switch round.Games[gi].Status {
				case bracket.InProgress:
					live = true
				case bracket.Final:
					finished = true
				}
			}
		}
		if live {
			return kind
		}
		if finished {
			lastFinal = kind
		}
	}
	return lastFinal
}
