// Package bracket holds the canonical tournament tree: a Tournament of
// Regions, each with Rounds of Games. The tree is built by the ncaa
// normalizers and owned by the UI; it carries no back-references, so
// relationships resolve by array position and ID lookup.
package bracket

// NationalRegion is the display name of the synthetic region that holds
// the national semifinals and the championship. It always sorts last.
const NationalRegion = "National"

// RegionOrder is the canonical ordering of the four regional brackets.
var RegionOrder = []string{"East", "West", "South", "Midwest"}

// Tournament is the root of the bracket tree. It is rebuilt wholesale on
// a full load and patched in place by MergeUpdates on score refreshes.
type Tournament struct {
	ID      string
	Name    string
	Year    int
	Regions []Region
}

// Region is one quarter of the draw, or the National section.
type Region struct {
	ID     string
	Name   string
	Rounds []Round
}

// Round pairs a RoundKind with its games. A region holds at most one
// Round per RoundKind.
type Round struct {
	Kind  RoundKind
	Games []Game
}

// Region returns the region with the given display name.
func (t *Tournament) Region(name string) *Region {
	for i := range t.Regions {
		if t.Regions[i].Name == name {
			return &t.Regions[i]
		}
	}
	return nil
}

// Round returns the round of the given kind within the region.
func (r *Region) Round(kind RoundKind) *Round {
	for i := range r.Rounds {
		if r.Rounds[i].Kind == kind {
			return &r.Rounds[i]
		}
	}
	return nil
}

// FindGame scans all regions and rounds for the game with the given ID.
func (t *Tournament) FindGame(id string) *Game {
	for ri := range t.Regions {
		for di := range t.Regions[ri].Rounds {
			games := t.Regions[ri].Rounds[di].Games
			for gi := range games {
				if games[gi].ID == id {
					return &games[gi]
				}
			}
		}
	}
	return nil
}

// MergeUpdates patches games by ID in place. Games whose IDs do not
// appear in the tree are dropped; everything else in the tree is left
// untouched.
func (t *Tournament) MergeUpdates(updates []Game) {
	for i := range updates {
		if g := t.FindGame(updates[i].ID); g != nil {
			*g = updates[i]
		}
	}
}
