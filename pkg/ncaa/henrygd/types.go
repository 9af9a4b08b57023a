// Package henrygd holds the wire types for the henrygd NCAA bracket
// API, the authoritative source for bracket topology.
// Endpoint: https://ncaa-api.henrygd.me/brackets/basketball-men/d1/{year}
package henrygd

// Response is the top-level bracket document.
type Response struct {
	Championships []Championship `json:"championships"`
}

// Championship is one tournament's full bracket.
type Championship struct {
	Title   string   `json:"title"`
	Year    int      `json:"year"`
	Games   []Game   `json:"games"`
	Rounds  []Round  `json:"rounds"`
	Regions []Region `json:"regions"`
}

// Game is one bracket slot. BracketPositionID/100 encodes the round
// number; SectionID groups games into regions.
type Game struct {
	BracketPositionID       int    `json:"bracketPositionId"`
	VictorBracketPositionID int    `json:"victorBracketPositionId"`
	ContestID               int64  `json:"contestId"`
	GameState               string `json:"gameState"`
	// Teams is empty pre-Selection Sunday.
	Teams     []Team `json:"teams"`
	SectionID int    `json:"sectionId"`
	StartDate string `json:"startDate"`
	StartTime string `json:"startTime"`
}

// Team is one side of a henrygd game.
type Team struct {
	TeamID      string `json:"teamId"`
	Name        string `json:"name"`
	ShortName   string `json:"shortName"`
	Seed        int    `json:"seed"`
	Winner      bool   `json:"winner"`
	Description string `json:"description"`
}

// Round labels a round number.
type Round struct {
	ID          string `json:"id"`
	RoundNumber int    `json:"roundNumber"`
	Label       string `json:"label"`
	Subtitle    string `json:"subtitle"`
}

// Region maps a section ID to a region title. Title is empty
// pre-Selection Sunday.
type Region struct {
	ID         string `json:"id"`
	SectionID  int    `json:"sectionId"`
	Title      string `json:"title"`
	RegionCode string `json:"regionCode"`
}
