package bracket

// RoundKind is the stage of a single-elimination tournament. Values are
// ordered from earliest to latest, so RoundKind supports direct comparison.
type RoundKind int

const (
	FirstFour RoundKind = iota // play-in games before the main draw
	First                      // round of 64
	Second                     // round of 32
	Sweet16
	Elite8
	FinalFour // national semifinals
	Championship
)

// RoundKinds returns every round in canonical order.
func RoundKinds() []RoundKind {
	return []RoundKind{FirstFour, First, Second, Sweet16, Elite8, FinalFour, Championship}
}

// Label returns the display name for the round.
func (k RoundKind) Label() string {
	switch k {
	case FirstFour:
		return "First Four"
	case First:
		return "1st Round"
	case Second:
		return "2nd Round"
	case Sweet16:
		return "Sweet 16"
	case Elite8:
		return "Elite Eight"
	case FinalFour:
		return "Final Four"
	case Championship:
		return "Championship"
	}
	return "Unknown"
}

// IsFinalFour reports whether the round lives in the National region.
func (k RoundKind) IsFinalFour() bool {
	return k == FinalFour || k == Championship
}

// Next returns the following round, or false at the Championship boundary.
func (k RoundKind) Next() (RoundKind, bool) {
	if k >= Championship {
		return k, false
	}
	return k + 1, true
}

// Prev returns the preceding round, or false at the FirstFour boundary.
func (k RoundKind) Prev() (RoundKind, bool) {
	if k <= FirstFour {
		return k, false
	}
	return k - 1, true
}

// RoundKindForNumber maps a wire round number (1-7) to a RoundKind.
// Anything outside that range defaults to First.
func RoundKindForNumber(n int) RoundKind {
	switch n {
	case 1:
		return FirstFour
	case 2:
		return First
	case 3:
		return Second
	case 4:
		return Sweet16
	case 5:
		return Elite8
	case 6:
		return FinalFour
	case 7:
		return Championship
	}
	return First
}
