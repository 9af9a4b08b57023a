package ncaa

import (
	"reflect"
	"testing"
	"time"
)

func TestSeasonYear(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"march during tournament", time.Date(2026, time.March, 19, 0, 0, 0, 0, time.UTC), 2026},
		{"february pre-tournament", time.Date(2026, time.February, 24, 0, 0, 0, 0, time.UTC), 2026},
		{"november targets next spring", time.Date(2026, time.November, 1, 0, 0, 0, 0, time.UTC), 2027},
		{"december targets next spring", time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), 2026},
		{"october stays in year", time.Date(2026, time.October, 31, 0, 0, 0, 0, time.UTC), 2026},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SeasonYear(tt.now); got != tt.want {
				t.Fatalf("SeasonYear(%v) = %d, want %d", tt.now, got, tt.want)
			}
		})
	}
}

func TestCandidateYears(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want []int
	}{
		{
			"fallback year dedupes with neighbor",
			time.Date(2026, time.February, 24, 0, 0, 0, 0, time.UTC),
			[]int{2026, 2025, 2027},
		},
		{
			"fallback year is the season",
			time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC),
			[]int{2025, 2024, 2026},
		},
		{
			"distant season appends fallback last",
			time.Date(2030, time.March, 20, 0, 0, 0, 0, time.UTC),
			[]int{2030, 2029, 2031, 2025},
		},
		{
			"november rolls the season forward",
			time.Date(2026, time.November, 5, 0, 0, 0, 0, time.UTC),
			[]int{2027, 2026, 2028, 2025},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CandidateYears(tt.now); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("CandidateYears(%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestInferYearFromPath(t *testing.T) {
	tests := []struct {
		path string
		want int
		ok   bool
	}{
		{"testdata/2025_bracket.json", 2025, true},
		{"/home/user/brackets/ncaa-2024.json", 2024, true},
		{"bracket.json", 0, false},
		{"401700123.json", 0, false},
		{"1999_bracket.json", 0, false},
		{"2025", 2025, true},
	}
	for _, tt := range tests {
		got, ok := inferYearFromPath(tt.path)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("inferYearFromPath(%q) = (%d, %v), want (%d, %v)", tt.path, got, ok, tt.want, tt.ok)
		}
	}
}
