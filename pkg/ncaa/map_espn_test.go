package ncaa

import (
	"testing"

	"github.com/holynakamoto/mmtui/pkg/bracket"
	"github.com/holynakamoto/mmtui/pkg/ncaa/espn"
)

func bracketEntry(name string, rounds ...espn.Round) espn.TournamentEntry {
	entry := espn.TournamentEntry{ID: "22", Name: name}
	if len(rounds) > 0 {
		entry.Bracket = &espn.Bracket{Rounds: rounds}
	}
	return entry
}

func seededCompetitor(id, name string, seed int, score string, winner bool, homeAway string) espn.Competitor {
	return espn.Competitor{
		ID:          id,
		HomeAway:    homeAway,
		Team:        &espn.Team{ID: id, DisplayName: name, ShortDisplayName: name},
		Score:       score,
		Winner:      winner,
		CuratedRank: &espn.Rank{Current: seed},
	}
}

func TestSelectTournamentEntry(t *testing.T) {
	round := espn.Round{Number: 2, Matchups: []espn.Matchup{{ID: "1"}}}

	tests := []struct {
		name    string
		entries []espn.TournamentEntry
		wantID  string
		wantOK  bool
	}{
		{
			"ncaa name with bracket wins",
			[]espn.TournamentEntry{
				bracketEntry("NIT Season Tip-Off", round),
				bracketEntry("NCAA Men's Basketball Championship", round),
			},
			"22", true,
		},
		{
			"invitational never matches by name",
			[]espn.TournamentEntry{bracketEntry("National Invitational Tournament", round)},
			"22", true, // still usable via the any-bracket fallback
		},
		{
			"empty bracket is unusable",
			[]espn.TournamentEntry{bracketEntry("NCAA Tournament")},
			"", false,
		},
		{
			"no entries",
			nil,
			"", false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, ok := selectTournamentEntry(tt.entries)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && entry.ID != tt.wantID {
				t.Fatalf("entry.ID = %q, want %q", entry.ID, tt.wantID)
			}
		})
	}
}

func TestSelectTournamentEntryPrefersNamed(t *testing.T) {
	round := espn.Round{Number: 2, Matchups: []espn.Matchup{{ID: "1"}}}
	other := bracketEntry("Maui Classic", round)
	other.ID = "99"
	ncaa := bracketEntry("March Madness", round)

	entry, ok := selectTournamentEntry([]espn.TournamentEntry{other, ncaa})
	if !ok || entry.ID != "22" {
		t.Fatalf("entry = %+v ok=%v, want the named tournament", entry, ok)
	}
}

func TestMapTournamentRegionsAndNational(t *testing.T) {
	entry := bracketEntry("NCAA Tournament",
		espn.Round{Number: 2, Matchups: []espn.Matchup{
			{ID: "1", Note: "SOUTH", Competitors: []espn.Competitor{
				seededCompetitor("aub", "Auburn", 1, "83", true, "home"),
				seededCompetitor("alst", "Alabama State", 16, "63", false, "away"),
			}},
			{ID: "2", Note: "EAST", Competitors: []espn.Competitor{
				seededCompetitor("duke", "Duke", 1, "93", true, "home"),
				seededCompetitor("msm", "Mount St. Mary's", 16, "49", false, "away"),
			}},
			{ID: "3", Note: "WEST", Competitors: []espn.Competitor{
				seededCompetitor("fla", "Florida", 1, "95", true, "home"),
				seededCompetitor("nsu", "Norfolk State", 16, "69", false, "away"),
			}},
			{ID: "4", Note: "MIDWEST", Competitors: []espn.Competitor{
				seededCompetitor("hou", "Houston", 1, "78", true, "home"),
				seededCompetitor("siue", "SIU Edwardsville", 16, "40", false, "away"),
			}},
		}},
		espn.Round{Number: 6, Matchups: []espn.Matchup{
			{ID: "5", Note: "Final Four", Competitors: []espn.Competitor{
				seededCompetitor("fla", "Florida", 1, "79", true, "home"),
				seededCompetitor("aub", "Auburn", 1, "73", false, "away"),
			}},
		}},
		espn.Round{Number: 7, Matchups: []espn.Matchup{
			{ID: "6", Note: "Championship", Competitors: []espn.Competitor{
				seededCompetitor("fla", "Florida", 1, "65", true, "home"),
				seededCompetitor("hou", "Houston", 1, "63", false, "away"),
			}},
		}},
	)

	tr := mapTournament(entry, 2025)
	if tr.Year != 2025 {
		t.Fatalf("year = %d, want 2025", tr.Year)
	}

	var names []string
	for _, r := range tr.Regions {
		names = append(names, r.Name)
	}
	want := []string{"East", "West", "South", "Midwest", "National"}
	for i := range want {
		if i >= len(names) || names[i] != want[i] {
			t.Fatalf("regions = %v, want %v", names, want)
		}
	}

	national := tr.Region(bracket.NationalRegion)
	if national.Round(bracket.FinalFour) == nil || national.Round(bracket.Championship) == nil {
		t.Fatalf("National rounds = %+v, want FinalFour and Championship", national.Rounds)
	}
}

func TestMapMatchupScoresAndWinner(t *testing.T) {
	m := espn.Matchup{ID: "1", Competitors: []espn.Competitor{
		seededCompetitor("fla", "Florida", 1, "65", true, "home"),
		seededCompetitor("hou", "Houston", 1, "63", false, "away"),
	}}
	g := mapMatchup(m)

	if g.Score == nil || g.Score.Top != 65 || g.Score.Bottom != 63 {
		t.Fatalf("score = %+v, want 65-63", g.Score)
	}
	if g.WinnerID != "fla" {
		t.Fatalf("winner = %q, want fla", g.WinnerID)
	}
	if g.Status != bracket.Final {
		t.Fatalf("status = %v, want Final", g.Status)
	}
	if g.Top.Seed != 1 || g.Bottom.Seed != 1 {
		t.Fatalf("seeds = %d/%d, want 1/1", g.Top.Seed, g.Bottom.Seed)
	}
}

func TestMapMatchupUnplayed(t *testing.T) {
	m := espn.Matchup{ID: "1", Competitors: []espn.Competitor{
		seededCompetitor("fla", "Florida", 1, "", false, "home"),
		{HomeAway: "away", Placeholder: "Winner of Game 42"},
	}}
	g := mapMatchup(m)

	if g.Score != nil {
		t.Fatalf("score = %+v, want nil before tip", g.Score)
	}
	if g.Status != bracket.Scheduled {
		t.Fatalf("status = %v, want Scheduled", g.Status)
	}
	if g.Bottom.DisplayName() != "Winner of Game 42" {
		t.Fatalf("bottom = %q, want the placeholder", g.Bottom.DisplayName())
	}
}

func TestSplitCompetitorsPositionalFallback(t *testing.T) {
	competitors := []espn.Competitor{
		{ID: "a", Team: &espn.Team{ID: "a", DisplayName: "A"}},
		{ID: "b", Team: &espn.Team{ID: "b", DisplayName: "B"}},
	}
	top, bottom := splitCompetitors(competitors)
	if top == nil || top.ID != "a" {
		t.Fatalf("top = %+v, want first competitor", top)
	}
	if bottom == nil || bottom.ID != "b" {
		t.Fatalf("bottom = %+v, want second competitor", bottom)
	}
}

func TestSplitCompetitorsSingleAway(t *testing.T) {
	competitors := []espn.Competitor{
		{ID: "a", HomeAway: "away", Team: &espn.Team{ID: "a", DisplayName: "A"}},
	}
	top, bottom := splitCompetitors(competitors)
	if bottom == nil || bottom.ID != "a" {
		t.Fatalf("bottom = %+v, want the away competitor", bottom)
	}
	if top != nil {
		t.Fatalf("top = %+v, want nil; the away side must not fill both slots", top)
	}
}

func TestSplitCompetitorsMixedTags(t *testing.T) {
	competitors := []espn.Competitor{
		{ID: "a", HomeAway: "away", Team: &espn.Team{ID: "a", DisplayName: "A"}},
		{ID: "b", Team: &espn.Team{ID: "b", DisplayName: "B"}},
	}
	top, bottom := splitCompetitors(competitors)
	if bottom == nil || bottom.ID != "a" {
		t.Fatalf("bottom = %+v, want the away competitor", bottom)
	}
	if top == nil || top.ID != "b" {
		t.Fatalf("top = %+v, want the untagged competitor", top)
	}
}

func TestMapMatchupEmpty(t *testing.T) {
	g := mapMatchup(espn.Matchup{ID: "1"})
	if g.Top.DisplayName() != "TBD" || g.Bottom.DisplayName() != "TBD" {
		t.Fatalf("slots = %q/%q, want TBD/TBD", g.Top.DisplayName(), g.Bottom.DisplayName())
	}
	if g.Status != bracket.Scheduled || g.Score != nil || g.WinnerID != "" {
		t.Fatalf("empty matchup mapped to %+v", g)
	}
}

func TestMapEventLiveFields(t *testing.T) {
	event := espn.Event{
		ID:   "401",
		Date: "2025-04-07T23:20:00Z",
		Status: &espn.Status{
			Type:         &espn.StatusType{Name: "STATUS_IN_PROGRESS"},
			Period:       2,
			DisplayClock: "12:34",
		},
		Venue: &espn.Venue{FullName: "Alamodome"},
		Competitions: []espn.Competition{{Competitors: []espn.Competitor{
			seededCompetitor("fla", "Florida", 1, "41", false, "home"),
			seededCompetitor("hou", "Houston", 1, "40", false, "away"),
		}}},
	}
	g := mapEvent(event)

	if g.Status != bracket.InProgress || g.Period != 2 || g.Clock != "12:34" {
		t.Fatalf("live fields = %v/%d/%q", g.Status, g.Period, g.Clock)
	}
	if g.Location != "Alamodome" {
		t.Fatalf("location = %q, want Alamodome", g.Location)
	}
	if g.StartTime == nil || g.StartTime.Year() != 2025 {
		t.Fatalf("start time = %v", g.StartTime)
	}
	if g.Score == nil || g.Score.Top != 41 {
		t.Fatalf("score = %+v, want 41-40", g.Score)
	}
}
