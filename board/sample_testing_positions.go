package board

import "fmt"

// FromGrid builds a Position from eight 8-character rows using the grid
// symbols (r/R/b/B/.). It panics on malformed input; it is meant for tests
// and sample positions, not for user input (see the gridio package for
// that).
func FromGrid(rows []string, onturn Player) Position {
	if len(rows) != Dim {
		panic(fmt.Sprintf("FromGrid: expected %d rows, got %d", Dim, len(rows)))
	}
	var p Position
	for r, row := range rows {
		if len(row) != Dim {
			panic(fmt.Sprintf("FromGrid: row %d has length %d", r, len(row)))
		}
		for c, ch := range row {
			sq, ok := SquareFromRune(ch)
			if !ok {
				panic(fmt.Sprintf("FromGrid: bad symbol %q at row %d col %d", ch, r, c))
			}
			p.squares[r][c] = sq
		}
	}
	p.onturn = onturn
	return p
}

// Sample positions used by tests in several packages.

// PosForcedDoubleJump: the black man on c5 must jump the red man on d4 and
// then immediately the red man on d2, finishing on c1. Black to move.
func PosForcedDoubleJump() Position {
	return FromGrid([]string{
		"........",
		"........",
		"........",
		"..b.....",
		"...r....",
		"........",
		"...r....",
		"........",
	}, Black)
}

// PosBlackBlocked: black's only man is trapped in the corner behind a red
// king guarding both of its diagonals. Black to move with no legal move,
// so the position is terminal and black loses.
func PosBlackBlocked() Position {
	return FromGrid([]string{
		"........",
		"........",
		"........",
		"........",
		"........",
		"......R.",
		".......b",
		"......R.",
	}, Black)
}

// PosLoneRedBehindBlack: one red man diagonally behind one black man with
// an empty landing square beyond it. The black man sits on its own back
// rank and men cannot step or jump backward, so black has no legal move.
func PosLoneRedBehindBlack() Position {
	return FromGrid([]string{
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		".....r..",
		"....b...",
	}, Black)
}
