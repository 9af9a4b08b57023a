package bracket

// GameDetail is the on-demand drill-down for one game: play-by-play
// plus both box scores. Fetched separately from the bracket tree.
type GameDetail struct {
	GameID  string
	Plays   []Play
	HomeBox BoxScore
	AwayBox BoxScore
}

// Play is one play-by-play line.
type Play struct {
	Period      int
	Clock       string
	Description string
	HomeScore   int
	AwayScore   int
}

// BoxScore is one team's player stat table.
type BoxScore struct {
	Team    *Team
	Players []PlayerLine
	Totals  PlayerLine
}

// PlayerLine is one row of a box score.
type PlayerLine struct {
	Name     string
	Points   int
	Rebounds int
	Assists  int
	Minutes  string
	FG       string // "7-12"
	FG3      string // "2-5"
}
