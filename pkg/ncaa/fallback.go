package ncaa

import (
	_ "embed"
	"encoding/json"

	"github.com/holynakamoto/mmtui/pkg/bracket"
	"github.com/holynakamoto/mmtui/pkg/ncaa/espn"
)

// fallbackBracket is the complete 2025 tournament in ESPN tournaments
// shape, the last resort when every network source fails.
//
//go:embed 2025_bracket.json
var fallbackBracket []byte

func loadEmbeddedTournament() (*bracket.Tournament, error) {
	var raw espn.TournamentsResponse
	if err := json.Unmarshal(fallbackBracket, &raw); err != nil {
		return nil, &ParseError{URL: "embedded 2025 bracket", Err: err}
	}
	entry, ok := selectTournamentEntry(raw.Tournaments)
	if !ok {
		return nil, ErrNotFound
	}
	return mapTournament(entry, FallbackYear), nil
}
