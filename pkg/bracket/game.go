package bracket

import (
	"strings"
	"time"
)

// GameStatus is the coarse lifecycle state of a game.
type GameStatus int

const (
	Scheduled GameStatus = iota
	InProgress
	Final
	Postponed
)

// String returns the short display form of the status.
func (s GameStatus) String() string {
	switch s {
	case InProgress:
		return "LIVE"
	case Final:
		return "FINAL"
	case Postponed:
		return "PPD"
	}
	return "Scheduled"
}

// ParseStatus maps an upstream game-state name to a GameStatus. Unknown
// codes fall back to Scheduled, which is the safe pre-tip default.
func ParseStatus(code string) GameStatus {
	switch strings.ToUpper(code) {
	case "STATUS_IN_PROGRESS", "STATUS_HALFTIME":
		return InProgress
	case "STATUS_FINAL", "STATUS_FINAL_OT":
		return Final
	case "STATUS_POSTPONED", "STATUS_CANCELLED", "STATUS_SUSPENDED":
		return Postponed
	}
	return Scheduled
}

// Team identifies a school in the field.
type Team struct {
	ID        string
	Name      string // "Duke Blue Devils"
	ShortName string // "Duke"
	Abbrev    string // "DUKE"
	Color     string // hex color from upstream, may be empty
}

// TeamSeed is one slot in a game. Team is nil until the slot resolves;
// Placeholder carries the label shown instead ("TBA", "Winner of ...").
type TeamSeed struct {
	Seed        int // 0 = unseeded / unknown
	Team        *Team
	Placeholder string
}

// DisplayName returns the short team name, the placeholder, or "TBD".
func (ts TeamSeed) DisplayName() string {
	if ts.Team != nil {
		return ts.Team.ShortName
	}
	if ts.Placeholder != "" {
		return ts.Placeholder
	}
	return "TBD"
}

// Score is a (top, bottom) score pair.
type Score struct {
	Top    int
	Bottom int
}

// Game is a single matchup in the bracket. ID is stable within the
// tournament and is the key partial updates are merged on.
type Game struct {
	ID        string
	Top       TeamSeed
	Bottom    TeamSeed
	Status    GameStatus
	Score     *Score
	WinnerID  string // team ID of the winner, empty until decided
	Period    int
	Clock     string
	StartTime *time.Time
	Location  string
}

// IsLive reports whether the game is in progress.
func (g *Game) IsLive() bool {
	return g.Status == InProgress
}

// Winner resolves WinnerID against the two slots. A slot with no resolved
// team never wins, regardless of what upstream flags claim.
func (g *Game) Winner() *Team {
	if g.WinnerID == "" {
		return nil
	}
	if g.Top.Team != nil && g.Top.Team.ID == g.WinnerID {
		return g.Top.Team
	}
	if g.Bottom.Team != nil && g.Bottom.Team.ID == g.WinnerID {
		return g.Bottom.Team
	}
	return nil
}
