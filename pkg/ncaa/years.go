package ncaa

import (
	"sort"
	"time"
)

// FallbackYear is the fixed historical year of the embedded snapshot;
// it is always a candidate so the chain can land on known-good data.
const FallbackYear = 2025

// SeasonYear computes the tournament year for "now". Tournament naming
// tracks the spring the bracket is played in, so from November onward
// queries target the next calendar year.
func SeasonYear(now time.Time) int {
	if now.Month() >= time.November {
		return now.Year() + 1
	}
	return now.Year()
}

// CandidateYears builds the year list tried against the secondary
// source: the season year, its neighbors and the fallback year,
// deduplicated and sorted by absolute distance from the season year,
// ties broken by ascending year.
func CandidateYears(now time.Time) []int {
	season := SeasonYear(now)
	years := []int{season, season - 1, season + 1, FallbackYear}

	seen := make(map[int]bool, len(years))
	out := years[:0]
	for _, y := range years {
		if !seen[y] {
			seen[y] = true
			out = append(out, y)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		di, dj := abs(out[i]-season), abs(out[j]-season)
		if di != dj {
			return di < dj
		}
		return out[i] < out[j]
	})
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
