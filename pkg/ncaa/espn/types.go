// Package espn holds the wire types for ESPN's public college
// basketball endpoints: the tournaments bracket feed, the scoreboard
// and the per-game summary. Everything is optional-by-default; ESPN
// responses omit fields freely, so pointers and zero values carry the
// "absent" signal through to the mappers.
package espn

// TournamentsResponse is the v2 tournaments list for one year.
type TournamentsResponse struct {
	Tournaments []TournamentEntry `json:"tournaments"`
}

// TournamentEntry is one tournament in the list. Only entries with a
// populated bracket are usable.
type TournamentEntry struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Bracket *Bracket `json:"bracket"`
}

// Bracket is a tournament's round list.
type Bracket struct {
	Rounds []Round `json:"rounds"`
	Full   bool    `json:"full"`
}

// Round carries an explicit round number and its matchups. Some
// responses nest games under "games" instead of "matchups".
type Round struct {
	Number   int       `json:"number"`
	Name     string    `json:"name"`
	Matchups []Matchup `json:"matchups"`
	Games    []Matchup `json:"games"`
}

// AllMatchups returns matchups and games in one slice.
func (r *Round) AllMatchups() []Matchup {
	if len(r.Games) == 0 {
		return r.Matchups
	}
	out := make([]Matchup, 0, len(r.Matchups)+len(r.Games))
	out = append(out, r.Matchups...)
	out = append(out, r.Games...)
	return out
}

// Matchup either embeds a full event or lists bare competitors. Note
// names the region on bracket endpoints (e.g. "SOUTH").
type Matchup struct {
	ID          string       `json:"id"`
	Event       *Event       `json:"event"`
	Competitors []Competitor `json:"competitors"`
	Note        string       `json:"note"`
}

// ScoreboardResponse is the live scoreboard feed.
type ScoreboardResponse struct {
	Events []Event `json:"events"`
}

// Event is one scheduled or played game.
type Event struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Status       *Status       `json:"status"`
	Competitions []Competition `json:"competitions"`
	Date         string        `json:"date"` // ISO 8601
	Venue        *Venue        `json:"venue"`
}

// Status wraps the game state, period and clock.
type Status struct {
	Type         *StatusType `json:"type"`
	Period       int         `json:"period"`
	DisplayClock string      `json:"displayClock"`
}

// StatusType names the state, e.g. "STATUS_IN_PROGRESS".
type StatusType struct {
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// Competition wraps an event's competitor list.
type Competition struct {
	Competitors []Competitor `json:"competitors"`
}

// Competitor is one side of a game. HomeAway doubles as the
// top/bottom assignment; Score arrives as a string.
type Competitor struct {
	ID          string `json:"id"`
	HomeAway    string `json:"homeAway"`
	Team        *Team  `json:"team"`
	Score       string `json:"score"`
	Winner      bool   `json:"winner"`
	CuratedRank *Rank  `json:"curatedRank"`
	Placeholder string `json:"placeholder"` // "Winner of Game #42"
}

// Team describes a school.
type Team struct {
	ID               string `json:"id"`
	DisplayName      string `json:"displayName"`
	ShortDisplayName string `json:"shortDisplayName"`
	Abbreviation     string `json:"abbreviation"`
	Color            string `json:"color"`
}

// Rank carries the tournament seed.
type Rank struct {
	Current int `json:"current"`
}

// Venue locates a game.
type Venue struct {
	FullName string `json:"fullName"`
	City     string `json:"city"`
	State    string `json:"state"`
}

// SummaryResponse is the per-game detail feed.
type SummaryResponse struct {
	Plays    []Play    `json:"plays"`
	Boxscore *Boxscore `json:"boxscore"`
}

// Play is one play-by-play line.
type Play struct {
	Period    *Period `json:"period"`
	Clock     *Clock  `json:"clock"`
	Text      string  `json:"text"`
	HomeScore int     `json:"homeScore"`
	AwayScore int     `json:"awayScore"`
}

// Period wraps a period number.
type Period struct {
	Number int `json:"number"`
}

// Clock wraps a display clock string.
type Clock struct {
	DisplayValue string `json:"displayValue"`
}

// Boxscore wraps per-team player statistics.
type Boxscore struct {
	Players []TeamPlayers `json:"players"`
}

// TeamPlayers is one team's stat block.
type TeamPlayers struct {
	Team       *Team          `json:"team"`
	Statistics []StatCategory `json:"statistics"`
}

// StatCategory is a keyed stat table; the "athletes" category carries
// per-player lines plus totals.
type StatCategory struct {
	Name     string         `json:"name"`
	Athletes []AthleteStats `json:"athletes"`
	Totals   []string       `json:"totals"`
	Keys     []string       `json:"keys"`
	Labels   []string       `json:"labels"`
}

// AthleteStats is one player's stat line, positionally keyed by Keys.
type AthleteStats struct {
	Athlete *Athlete `json:"athlete"`
	Stats   []string `json:"stats"`
}

// Athlete names a player.
type Athlete struct {
	DisplayName string `json:"displayName"`
}
