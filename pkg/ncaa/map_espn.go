package ncaa

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/holynakamoto/mmtui/pkg/bracket"
	"github.com/holynakamoto/mmtui/pkg/ncaa/espn"
)

// selectTournamentEntry picks the best entry from a year's tournament
// list: a name that looks like the NCAA tournament (and not the NIT)
// with a non-empty bracket wins; failing that, any entry with a
// non-empty bracket; failing that, the year is a miss.
func selectTournamentEntry(entries []espn.TournamentEntry) (espn.TournamentEntry, bool) {
	hasBracket := func(t espn.TournamentEntry) bool {
		return t.Bracket != nil && len(t.Bracket.Rounds) > 0
	}
	nameMatch := func(t espn.TournamentEntry) bool {
		n := strings.ToLower(t.Name)
		wanted := strings.Contains(n, "ncaa") || strings.Contains(n, "march") ||
			strings.Contains(n, "championship") || strings.Contains(n, "tournament")
		return wanted && !strings.Contains(n, "nit") && !strings.Contains(n, "invitational")
	}

	for _, e := range entries {
		if hasBracket(e) && nameMatch(e) {
			return e, true
		}
	}
	for _, e := range entries {
		if hasBracket(e) {
			return e, true
		}
	}
	return espn.TournamentEntry{}, false
}

// mapTournament normalizes an ESPN tournament entry. Final Four and
// Championship matchups collapse into the National region; earlier
// rounds split per game by the free-text region note.
func mapTournament(entry espn.TournamentEntry, year int) *bracket.Tournament {
	name := entry.Name
	if name == "" {
		name = "NCAA Tournament"
	}

	byRegion := make(map[string][]bracket.Round)
	var bracketRounds []espn.Round
	if entry.Bracket != nil {
		bracketRounds = entry.Bracket.Rounds
	}

	for _, round := range bracketRounds {
		number := round.Number
		if number == 0 {
			number = 2
		}
		kind := bracket.RoundKindForNumber(number)
		matchups := round.AllMatchups()

		if kind.IsFinalFour() {
			games := make([]bracket.Game, 0, len(matchups))
			for i := range matchups {
				games = append(games, mapMatchup(matchups[i]))
			}
			if len(games) > 0 {
				byRegion[bracket.NationalRegion] = append(byRegion[bracket.NationalRegion],
					bracket.Round{Kind: kind, Games: games})
			}
			continue
		}

		split := make(map[string][]bracket.Game)
		for i := range matchups {
			regionName := titleCase(matchups[i].Note)
			if regionName == "" {
				regionName = "Region"
			}
			split[regionName] = append(split[regionName], mapMatchup(matchups[i]))
		}
		for regionName, games := range split {
			byRegion[regionName] = append(byRegion[regionName], bracket.Round{Kind: kind, Games: games})
		}
	}

	order := append(append([]string{}, bracket.RegionOrder...), "Region")
	var regions []bracket.Region
	for _, rname := range order {
		if rounds, ok := byRegion[rname]; ok {
			sortRounds(rounds)
			regions = append(regions, bracket.Region{
				ID:     strings.ToLower(rname),
				Name:   rname,
				Rounds: rounds,
			})
			delete(byRegion, rname)
		}
	}
	// Non-canonical region names land after the canonical set, sorted.
	// The National section always goes last.
	var leftover []string
	for rname := range byRegion {
		if rname != bracket.NationalRegion {
			leftover = append(leftover, rname)
		}
	}
	sort.Strings(leftover)
	for _, rname := range leftover {
		rounds := byRegion[rname]
		sortRounds(rounds)
		regions = append(regions, bracket.Region{ID: strings.ToLower(rname), Name: rname, Rounds: rounds})
	}
	if rounds, ok := byRegion[bracket.NationalRegion]; ok {
		sortRounds(rounds)
		regions = append(regions, bracket.Region{
			ID:     strings.ToLower(bracket.NationalRegion),
			Name:   bracket.NationalRegion,
			Rounds: rounds,
		})
	}

	return &bracket.Tournament{ID: entry.ID, Name: name, Year: year, Regions: regions}
}

func sortRounds(rounds []bracket.Round) {
	for i := 1; i < len(rounds); i++ {
		for j := i; j > 0 && rounds[j].Kind < rounds[j-1].Kind; j-- {
			rounds[j], rounds[j-1] = rounds[j-1], rounds[j]
		}
	}
}

// titleCase normalizes region notes like "SOUTH" to "South".
func titleCase(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// mapMatchup maps one bracket matchup: either an embedded event or
// bare competitors with string scores and winner flags.
func mapMatchup(m espn.Matchup) bracket.Game {
	if m.Event != nil {
		return mapEvent(*m.Event)
	}

	top, bottom := splitCompetitors(m.Competitors)
	score := scoreFromCompetitors(top, bottom)

	var winnerID string
	for _, c := range m.Competitors {
		if c.Winner && c.ID != "" {
			winnerID = c.ID
			break
		}
	}

	status := bracket.Scheduled
	if score != nil {
		status = bracket.Final
	}

	return bracket.Game{
		ID:       m.ID,
		Top:      mapCompetitor(top),
		Bottom:   mapCompetitor(bottom),
		Status:   status,
		Score:    score,
		WinnerID: winnerID,
	}
}

// mapEvent maps a full scoreboard/bracket event, including live period,
// clock, venue and start time.
func mapEvent(event espn.Event) bracket.Game {
	var status bracket.GameStatus
	period := 0
	clock := ""
	if event.Status != nil {
		if event.Status.Type != nil {
			status = bracket.ParseStatus(event.Status.Type.Name)
		}
		period = event.Status.Period
		clock = event.Status.DisplayClock
	}

	location := ""
	if v := event.Venue; v != nil {
		switch {
		case v.FullName != "":
			location = v.FullName
		case v.City != "" && v.State != "":
			location = v.City + ", " + v.State
		}
	}

	var startTime *time.Time
	if event.Date != "" {
		if t, err := time.Parse(time.RFC3339, event.Date); err == nil {
			utc := t.UTC()
			startTime = &utc
		}
	}

	var competitors []espn.Competitor
	for _, comp := range event.Competitions {
		competitors = append(competitors, comp.Competitors...)
	}
	top, bottom := splitCompetitors(competitors)
	score := scoreFromCompetitors(top, bottom)

	var winnerID string
	for _, c := range competitors {
		if c.Winner && c.ID != "" {
			winnerID = c.ID
			break
		}
	}

	return bracket.Game{
		ID:        event.ID,
		Top:       mapCompetitor(top),
		Bottom:    mapCompetitor(bottom),
		Status:    status,
		Score:     score,
		WinnerID:  winnerID,
		Period:    period,
		Clock:     clock,
		StartTime: startTime,
		Location:  location,
	}
}

// splitCompetitors assigns "home" to the top slot and "away" to the
// bottom, falling back to positional order when the tags are absent.
func splitCompetitors(competitors []espn.Competitor) (top, bottom *espn.Competitor) {
	for i := range competitors {
		switch competitors[i].HomeAway {
		case "home":
			if top == nil {
				top = &competitors[i]
			}
		case "away":
			if bottom == nil {
				bottom = &competitors[i]
			}
		}
	}
	for i := range competitors {
		c := &competitors[i]
		if c == top || c == bottom {
			continue
		}
		if top == nil {
			top = c
		} else if bottom == nil {
			bottom = c
		}
	}
	return top, bottom
}

func scoreFromCompetitors(top, bottom *espn.Competitor) *bracket.Score {
	if top == nil || bottom == nil {
		return nil
	}
	ts, errTop := strconv.Atoi(top.Score)
	bs, errBot := strconv.Atoi(bottom.Score)
	if errTop != nil || errBot != nil {
		return nil
	}
	return &bracket.Score{Top: ts, Bottom: bs}
}

func mapCompetitor(c *espn.Competitor) bracket.TeamSeed {
	if c == nil {
		return bracket.TeamSeed{Placeholder: "TBD"}
	}

	seed := 0
	if c.CuratedRank != nil {
		seed = c.CuratedRank.Current
	}

	if c.Team == nil {
		placeholder := c.Placeholder
		if placeholder == "" {
			placeholder = "TBD"
		}
		return bracket.TeamSeed{Seed: seed, Placeholder: placeholder}
	}

	short := c.Team.ShortDisplayName
	if short == "" {
		short = c.Team.DisplayName
	}
	return bracket.TeamSeed{
		Seed: seed,
		Team: &bracket.Team{
			ID:        c.Team.ID,
			Name:      c.Team.DisplayName,
			ShortName: short,
			Abbrev:    c.Team.Abbreviation,
			Color:     c.Team.Color,
		},
		Placeholder: c.Placeholder,
	}
}
