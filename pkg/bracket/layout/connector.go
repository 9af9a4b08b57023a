package layout

// Segment is one positioned glyph of a connector path, in grid
// coordinates (same space as Cell.CenterRow / Cell.Col).
type Segment struct {
	Row  int
	Col  int
	Rune rune
}

// Connectors enumerates the box-drawing glyphs joining every parent to
// its two children. Cells are matched pairwise by position: children
// 2j and 2j+1 feed parent j at the next depth. The Elite8 cell produces
// nothing; it has no parent column in this sub-bracket.
//
// Normal orientation (children left of the parent):
//
//	child_top  ──┐
//	             │
//	parent     ──├──
//	             │
//	child_bot  ──┘
//
// Mirrored swaps the corners so the spine opens toward the left.
func (g *Grid) Connectors() []Segment {
	var segs []Segment
	for depth := 0; depth < 3; depth++ {
		children := g.CellsForDepth(depth)
		parents := g.CellsForDepth(depth + 1)

		// Connector zone sits right of the child column normally,
		// left of it when mirrored.
		base := g.RoundCols[depth] + g.CellWidth
		if g.Mirrored {
			base = g.RoundCols[depth] - ConnectorWidth
		}

		for j := range parents {
			a, b := children[2*j], children[2*j+1]
			top, bot := a.CenterRow, b.CenterRow
			if top > bot {
				top, bot = bot, top
			}
			mid := parents[j].CenterRow
			segs = append(segs, connectorSegments(top, mid, bot, base, g.Mirrored)...)
		}
	}
	return segs
}

func connectorSegments(top, mid, bot, base int, mirrored bool) []Segment {
	colA, colB, colC := base, base+1, base+2
	segs := make([]Segment, 0, (bot-top)+5)

	if mirrored {
		// Children on the right, parent on the left.
		segs = append(segs,
			Segment{Row: top, Col: colB, Rune: '┌'},
			Segment{Row: top, Col: colC, Rune: '─'},
		)
		for row := top + 1; row < mid; row++ {
			segs = append(segs, Segment{Row: row, Col: colB, Rune: '│'})
		}
		segs = append(segs,
			Segment{Row: mid, Col: colA, Rune: '─'},
			Segment{Row: mid, Col: colB, Rune: '┤'},
		)
		for row := mid + 1; row < bot; row++ {
			segs = append(segs, Segment{Row: row, Col: colB, Rune: '│'})
		}
		segs = append(segs,
			Segment{Row: bot, Col: colB, Rune: '└'},
			Segment{Row: bot, Col: colC, Rune: '─'},
		)
		return segs
	}

	segs = append(segs,
		Segment{Row: top, Col: colA, Rune: '─'},
		Segment{Row: top, Col: colB, Rune: '┐'},
	)
	for row := top + 1; row < mid; row++ {
		segs = append(segs, Segment{Row: row, Col: colB, Rune: '│'})
	}
	segs = append(segs,
		Segment{Row: mid, Col: colA, Rune: '─'},
		Segment{Row: mid, Col: colB, Rune: '├'},
		Segment{Row: mid, Col: colC, Rune: '─'},
	)
	for row := mid + 1; row < bot; row++ {
		segs = append(segs, Segment{Row: row, Col: colB, Rune: '│'})
	}
	segs = append(segs,
		Segment{Row: bot, Col: colA, Rune: '─'},
		Segment{Row: bot, Col: colB, Rune: '┘'},
	)
	return segs
}
