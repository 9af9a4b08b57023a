// Package layout computes terminal-cell positions for one 4-round
// regional bracket (First Round through Elite Eight). It is pure
// geometry: no rendering, no dependency on the domain tree beyond
// RoundKind, cheap enough to recompute on every resize.
package layout

import "github.com/holynakamoto/mmtui/pkg/bracket"

// GameHeight is the number of rows per game cell: top-team line,
// score/status line, bottom-team line.
const GameHeight = 3

// slot heights per bracket depth (d=0 First leaf ... d=3 Elite8 root).
// sh[0] = GameHeight; sh[d] = 2*sh[d-1] + 1.
var sh = [4]int{3, 7, 15, 31}

// RegionHeight is the total rows consumed by one regional bracket,
// independent of terminal width. Equals sh[3].
const RegionHeight = 31

// ConnectorWidth is the width of the connector zone between columns.
const ConnectorWidth = 3

// MaxCellWidth caps game cell width in wide terminals.
const MaxCellWidth = 22

// depths per round column.
var depthKinds = [4]bracket.RoundKind{bracket.First, bracket.Second, bracket.Sweet16, bracket.Elite8}

var depthCounts = [4]int{8, 4, 2, 1}

// cell offsets into Grid.Cells per depth: First(8) Second(4) Sweet16(2) Elite8(1).
var depthOffsets = [5]int{0, 8, 12, 14, 15}

// Cell is the pre-computed position of one game within the grid.
type Cell struct {
	// CenterRow is the row of the score/status line, relative to the
	// bracket origin. The team lines sit at CenterRow-1 and CenterRow+1.
	CenterRow int
	// Col is the starting column of the cell within the grid.
	Col int
	// Width of the cell in terminal columns.
	Width int
	// Round this cell belongs to.
	Round bracket.RoundKind
	// GameIndex within the round's game list.
	GameIndex int
	// HasParent is false only for the Elite8 cell; no connector is
	// drawn outward from it.
	HasParent bool
}

// Grid is the computed layout for one regional bracket.
//
// Column order left to right (normal): First | conn | Second | conn |
// Sweet16 | conn | Elite8. Mirrored reverses the column order; Flipped
// reflects rows so First sits at the bottom.
type Grid struct {
	// Cells in depth-major order: 8 First, 4 Second, 2 Sweet16, 1 Elite8.
	Cells []Cell
	// RoundCols holds the starting column per depth (0=First .. 3=Elite8).
	RoundCols [4]int
	// CellWidth chosen for the given terminal width, in [1, MaxCellWidth].
	CellWidth int
	// TotalWidth of the grid in columns.
	TotalWidth int
	// TotalHeight is always RegionHeight.
	TotalHeight int
	Mirrored    bool
	Flipped     bool
}

// Compute builds the grid for the given terminal width and orientation.
//
// Per-column cell width is (width - 3*ConnectorWidth)/4 clamped to
// [1, MaxCellWidth]. Center rows follow the triangle formula
// center[d][i] = sh[d]/2 + i*(sh[d+1]-sh[d]), producing [1,5,...,29]
// for First, [3,11,19,27] for Second, [7,23] for Sweet16 and [15] for
// Elite8. Every parent's center row is the exact midpoint of its two
// children's center rows in all four orientation variants; connector
// drawing depends on that.
func Compute(width int, mirrored, flipped bool) Grid {
	perCol := (width - ConnectorWidth*3) / 4
	cellWidth := perCol
	if cellWidth < 1 {
		cellWidth = 1
	}
	if cellWidth > MaxCellWidth {
		cellWidth = MaxCellWidth
	}

	stride := cellWidth + ConnectorWidth
	var roundCols [4]int
	for d := 0; d < 4; d++ {
		if mirrored {
			roundCols[d] = stride * (3 - d)
		} else {
			roundCols[d] = stride * d
		}
	}

	cells := make([]Cell, 0, 15)
	for d := 0; d < 4; d++ {
		spacing := 0
		if d < 3 {
			spacing = sh[d+1] - sh[d]
		}
		for i := 0; i < depthCounts[d]; i++ {
			center := sh[d]/2 + i*spacing
			if flipped {
				center = (RegionHeight - 1) - center
			}
			cells = append(cells, Cell{
				CenterRow: center,
				Col:       roundCols[d],
				Width:     cellWidth,
				Round:     depthKinds[d],
				GameIndex: i,
				HasParent: d < 3,
			})
		}
	}

	return Grid{
		Cells:       cells,
		RoundCols:   roundCols,
		CellWidth:   cellWidth,
		TotalWidth:  stride*3 + cellWidth,
		TotalHeight: RegionHeight,
		Mirrored:    mirrored,
		Flipped:     flipped,
	}
}

// CellsForDepth returns the cells at bracket depth d
// (0=First, 1=Second, 2=Sweet16, 3=Elite8).
func (g *Grid) CellsForDepth(d int) []Cell {
	return g.Cells[depthOffsets[d]:depthOffsets[d+1]]
}

// DepthForRound maps a RoundKind to its column depth within the grid.
// Rounds outside the regional bracket collapse to depth 0.
func DepthForRound(kind bracket.RoundKind) int {
	switch kind {
	case bracket.Second:
		return 1
	case bracket.Sweet16:
		return 2
	case bracket.Elite8:
		return 3
	}
	return 0
}
