package ncaa

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/holynakamoto/mmtui/pkg/bracket"
	"github.com/holynakamoto/mmtui/pkg/ncaa/henrygd"
)

// nationalSectionID is the reserved henrygd section for the national
// semifinals and final, regardless of its declared title.
const nationalSectionID = 6

// mapChampionship normalizes a henrygd championship into the domain
// tree. Games bucket by sectionId then round; region names come from
// the regions array, falling back to "Region {n}" pre-Selection Sunday.
func mapChampionship(champ henrygd.Championship) *bracket.Tournament {
	regionNames := make(map[int]string, len(champ.Regions))
	for _, r := range champ.Regions {
		name := r.Title
		if name == "" {
			name = fmt.Sprintf("Region %d", r.SectionID)
		}
		regionNames[r.SectionID] = name
	}

	sections := make(map[int]map[bracket.RoundKind][]bracket.Game)
	for _, g := range champ.Games {
		kind := bracket.RoundKindForNumber(g.BracketPositionID / 100)
		if sections[g.SectionID] == nil {
			sections[g.SectionID] = make(map[bracket.RoundKind][]bracket.Game)
		}
		sections[g.SectionID][kind] = append(sections[g.SectionID][kind], mapHenrygdGame(g))
	}

	var sectionIDs []int
	for sid := range sections {
		if sid != nationalSectionID {
			sectionIDs = append(sectionIDs, sid)
		}
	}
	sort.Ints(sectionIDs)

	// Prefer the canonical East/West/South/Midwest order when every
	// named region is present; otherwise keep sorted section order.
	ordered := orderSectionsByName(sectionIDs, regionNames)

	var regions []bracket.Region
	for _, sid := range ordered {
		name, ok := regionNames[sid]
		if !ok {
			name = fmt.Sprintf("Region %d", sid)
		}
		regions = append(regions, bracket.Region{
			ID:     strings.ToLower(strings.ReplaceAll(name, " ", "-")),
			Name:   name,
			Rounds: buildRounds(sections[sid]),
		})
	}

	if rounds, ok := sections[nationalSectionID]; ok {
		regions = append(regions, bracket.Region{
			ID:     "national",
			Name:   bracket.NationalRegion,
			Rounds: buildRounds(rounds),
		})
	}

	return &bracket.Tournament{
		ID:      fmt.Sprintf("ncaa-%d", champ.Year),
		Name:    champ.Title,
		Year:    champ.Year,
		Regions: regions,
	}
}

func orderSectionsByName(sectionIDs []int, names map[int]string) []int {
	var named []int
	for _, want := range bracket.RegionOrder {
		for _, sid := range sectionIDs {
			if names[sid] == want {
				named = append(named, sid)
				break
			}
		}
	}
	if len(named) == len(sectionIDs) {
		return named
	}
	return sectionIDs
}

// buildRounds sorts a kind-keyed game map into rounds in canonical order.
func buildRounds(byKind map[bracket.RoundKind][]bracket.Game) []bracket.Round {
	rounds := make([]bracket.Round, 0, len(byKind))
	for kind, games := range byKind {
		rounds = append(rounds, bracket.Round{Kind: kind, Games: games})
	}
	sort.Slice(rounds, func(i, j int) bool { return rounds[i].Kind < rounds[j].Kind })
	return rounds
}

func mapHenrygdGame(g henrygd.Game) bracket.Game {
	top := henrygdSlot(g.Teams, 0)
	bottom := henrygdSlot(g.Teams, 1)

	var winnerID string
	for _, t := range g.Teams {
		if t.Winner && t.TeamID != "" {
			winnerID = t.TeamID
			break
		}
	}

	var status bracket.GameStatus
	switch g.GameState {
	case "L":
		status = bracket.InProgress
	case "F":
		status = bracket.Final
	default:
		status = bracket.Scheduled
	}

	// The bracket feed carries topology, not live scores; those arrive
	// through scoreboard refreshes.
	return bracket.Game{
		ID:       strconv.Itoa(g.BracketPositionID),
		Top:      top,
		Bottom:   bottom,
		Status:   status,
		WinnerID: winnerID,
	}
}

// henrygdSlot maps the i-th team entry, or a TBA placeholder when the
// entry is absent (zero team entries pre-announcement) or unresolved.
func henrygdSlot(teams []henrygd.Team, i int) bracket.TeamSeed {
	if i >= len(teams) {
		return bracket.TeamSeed{Placeholder: "TBA"}
	}
	t := teams[i]
	if t.TeamID == "" {
		placeholder := t.Description
		if placeholder == "" {
			placeholder = "TBA"
		}
		return bracket.TeamSeed{Seed: t.Seed, Placeholder: placeholder}
	}
	short := t.ShortName
	if short == "" {
		short = t.Name
	}
	return bracket.TeamSeed{
		Seed: t.Seed,
		Team: &bracket.Team{ID: t.TeamID, Name: t.Name, ShortName: short},
	}
}
