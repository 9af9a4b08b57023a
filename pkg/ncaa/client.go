// Package ncaa fetches and normalizes NCAA Men's Basketball Tournament
// data. Two wire shapes feed one domain tree: the henrygd bracket API
// (authoritative topology) and ESPN's public endpoints (brackets,
// scoreboard, game summaries). FetchTournament walks a provider chain
// so the viewer still renders something when a source is down or the
// bracket is not announced yet.
package ncaa

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/holynakamoto/mmtui/pkg/bracket"
	"github.com/holynakamoto/mmtui/pkg/ncaa/espn"
	"github.com/holynakamoto/mmtui/pkg/ncaa/henrygd"
)

const (
	espnSiteV2 = "https://site.api.espn.com/apis/site/v2/sports/basketball/mens-college-basketball"
	espnV2     = "https://site.api.espn.com/apis/v2/sports/basketball/mens-college-basketball"
	henrygdAPI = "https://ncaa-api.henrygd.me"

	userAgent = "mmtui/0.1 (terminal bracket viewer)"

	// OverrideEnv names a local ESPN-format JSON file that short-circuits
	// the network chain entirely. Mirrored by the config "bracket" key.
	OverrideEnv = "MMTUI_BRACKET_JSON"
)

// Client talks to the bracket sources. The base URLs are fields so
// tests can point the client at an httptest server.
type Client struct {
	HTTP *http.Client

	// OverridePath, when set, is a local ESPN-format JSON file used
	// instead of any network source. Falls back to OverrideEnv.
	OverridePath string

	HenrygdBase string
	ESPNSiteV2  string
	ESPNV2      string

	Now func() time.Time
}

// NewClient returns a client with production endpoints and a 10 second
// request timeout.
func NewClient() *Client {
	return &Client{
		HTTP:        &http.Client{Timeout: 10 * time.Second},
		HenrygdBase: henrygdAPI,
		ESPNSiteV2:  espnSiteV2,
		ESPNV2:      espnV2,
		Now:         time.Now,
	}
}

// provider is one strategy in the tournament fallback chain. A (nil,
// nil) return means "nothing here, try the next one".
type provider func(ctx context.Context) (*bracket.Tournament, error)

// FetchTournament resolves the current tournament bracket.
//
// Chain:
//  1. local override file (config/env), when configured
//  2. henrygd bracket for the season year
//  3. ESPN tournaments for each candidate year
//  4. embedded 2025 snapshot
//
// Exhaustion surfaces the last real error, or ErrNotFound when every
// source simply had nothing.
func (c *Client) FetchTournament(ctx context.Context) (*bracket.Tournament, error) {
	if path := c.overridePath(); path != "" {
		return c.loadOverride(path)
	}

	now := c.Now()
	chain := []provider{c.henrygdProvider(SeasonYear(now))}
	for _, year := range CandidateYears(now) {
		chain = append(chain, c.espnProvider(year))
	}
	chain = append(chain, embeddedProvider)

	var lastErr error
	for _, p := range chain {
		t, err := p(ctx)
		if err != nil {
			lastErr = err
			continue
		}
		if t != nil {
			return t, nil
		}
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, ErrNotFound
}

// FetchBracket loads the henrygd bracket skeleton for one year, used
// to pre-load next season's structure before Selection Sunday.
func (c *Client) FetchBracket(ctx context.Context, year int) (*bracket.Tournament, error) {
	url := fmt.Sprintf("%s/brackets/basketball-men/d1/%d", c.HenrygdBase, year)
	var raw henrygd.Response
	if err := c.getJSON(ctx, url, &raw); err != nil {
		return nil, err
	}
	if len(raw.Championships) == 0 {
		return nil, fmt.Errorf("no championship data for %d: %w", year, ErrNotFound)
	}
	return mapChampionship(raw.Championships[0]), nil
}

// FetchScoreboard loads live scores for tournament games. groups=100
// filters ESPN's scoreboard to the NCAA tournament.
func (c *Client) FetchScoreboard(ctx context.Context) ([]bracket.Game, error) {
	url := c.ESPNSiteV2 + "/scoreboard?groups=100&limit=50"
	var raw espn.ScoreboardResponse
	if err := c.getJSON(ctx, url, &raw); err != nil {
		return nil, err
	}
	games := make([]bracket.Game, 0, len(raw.Events))
	for i := range raw.Events {
		games = append(games, mapEvent(raw.Events[i]))
	}
	return games, nil
}

// FetchGameDetail loads play-by-play and box scores for one game.
func (c *Client) FetchGameDetail(ctx context.Context, gameID string) (*bracket.GameDetail, error) {
	url := c.ESPNSiteV2 + "/summary?event=" + gameID
	var raw espn.SummaryResponse
	if err := c.getJSON(ctx, url, &raw); err != nil {
		return nil, err
	}
	return mapSummary(gameID, raw), nil
}

func (c *Client) overridePath() string {
	if c.OverridePath != "" {
		return c.OverridePath
	}
	return os.Getenv(OverrideEnv)
}

func (c *Client) loadOverride(path string) (*bracket.Tournament, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}
	var raw espn.TournamentsResponse
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, &ParseError{URL: path, Err: err}
	}

	year, ok := inferYearFromPath(path)
	if !ok {
		year = SeasonYear(c.Now())
	}
	entry, ok := selectTournamentEntry(raw.Tournaments)
	if !ok {
		return nil, fmt.Errorf("no usable bracket in %s: %w", path, ErrNotFound)
	}
	return mapTournament(entry, year), nil
}

func (c *Client) henrygdProvider(year int) provider {
	return func(ctx context.Context) (*bracket.Tournament, error) {
		url := fmt.Sprintf("%s/brackets/basketball-men/d1/%d", c.HenrygdBase, year)
		var raw henrygd.Response
		if err := c.getJSON(ctx, url, &raw); err != nil {
			return nil, err
		}
		if len(raw.Championships) == 0 || len(raw.Championships[0].Games) == 0 {
			return nil, nil
		}
		return mapChampionship(raw.Championships[0]), nil
	}
}

func (c *Client) espnProvider(year int) provider {
	return func(ctx context.Context) (*bracket.Tournament, error) {
		url := fmt.Sprintf("%s/tournaments?limit=25&year=%d", c.ESPNV2, year)
		var raw espn.TournamentsResponse
		if err := c.getJSON(ctx, url, &raw); err != nil {
			return nil, err
		}
		entry, ok := selectTournamentEntry(raw.Tournaments)
		if !ok {
			return nil, nil
		}
		return mapTournament(entry, year), nil
	}
}

func embeddedProvider(context.Context) (*bracket.Tournament, error) {
	return loadEmbeddedTournament()
}

// getJSON performs one GET. Client errors (4xx) decode to the zero
// value of out and return nil: pre-announcement the bracket endpoints
// legitimately do not exist, and the chain treats that as "no data
// yet" rather than a failure.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &NetworkError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return &NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return &APIError{URL: url, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ParseError{URL: url, Err: err}
	}
	return nil
}

// inferYearFromPath pulls the first plausible 4-digit year out of an
// override file path, e.g. "testdata/2025_bracket.json".
func inferYearFromPath(path string) (int, bool) {
	digits := 0
	start := 0
	check := func(end int) (int, bool) {
		if digits != 4 {
			return 0, false
		}
		y, err := strconv.Atoi(path[start:end])
		if err != nil || y < 2000 || y > 2100 {
			return 0, false
		}
		return y, true
	}
	for i, r := range path {
		if r >= '0' && r <= '9' {
			if digits == 0 {
				start = i
			}
			digits++
			continue
		}
		if y, ok := check(i); ok {
			return y, true
		}
		digits = 0
	}
	return check(len(path))
}

// mapSummary builds the drill-down detail from an ESPN summary
// response. The first box score block is the home team.
func mapSummary(gameID string, raw espn.SummaryResponse) *bracket.GameDetail {
	detail := &bracket.GameDetail{GameID: gameID}

	for _, p := range raw.Plays {
		play := bracket.Play{
			Description: p.Text,
			HomeScore:   p.HomeScore,
			AwayScore:   p.AwayScore,
		}
		if p.Period != nil {
			play.Period = p.Period.Number
		}
		if p.Clock != nil {
			play.Clock = p.Clock.DisplayValue
		}
		detail.Plays = append(detail.Plays, play)
	}

	if raw.Boxscore != nil {
		for i, teamData := range raw.Boxscore.Players {
			box := buildBoxScore(teamData)
			switch i {
			case 0:
				detail.HomeBox = box
			case 1:
				detail.AwayBox = box
			}
		}
	}
	return detail
}

func buildBoxScore(teamData espn.TeamPlayers) bracket.BoxScore {
	box := bracket.BoxScore{}
	if t := teamData.Team; t != nil {
		box.Team = &bracket.Team{
			ID:        t.ID,
			Name:      t.DisplayName,
			ShortName: t.ShortDisplayName,
			Abbrev:    t.Abbreviation,
			Color:     t.Color,
		}
	}

	for _, cat := range teamData.Statistics {
		if cat.Name != "athletes" {
			continue
		}
		for _, a := range cat.Athletes {
			name := ""
			if a.Athlete != nil {
				name = a.Athlete.DisplayName
			}
			box.Players = append(box.Players, parsePlayerStats(name, a.Stats, cat.Keys))
		}
		box.Totals = parsePlayerStats("TOTALS", cat.Totals, cat.Keys)
		break
	}
	return box
}

// parsePlayerStats reads one positionally keyed stat line. Keys index
// into stats; absent or non-numeric columns read as zero values.
func parsePlayerStats(name string, stats, keys []string) bracket.PlayerLine {
	get := func(key string) string {
		for i, k := range keys {
			if k == key && i < len(stats) {
				return stats[i]
			}
		}
		return ""
	}
	num := func(key string) int {
		n, _ := strconv.Atoi(get(key))
		return n
	}

	return bracket.PlayerLine{
		Name:     name,
		Points:   num("PTS"),
		Rebounds: num("REB"),
		Assists:  num("AST"),
		Minutes:  get("MIN"),
		FG:       get("FG"),
		FG3:      get("3PT"),
	}
}
