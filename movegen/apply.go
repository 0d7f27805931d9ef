package movegen

import (
	"fmt"

	"github.com/zdavid4525/checkers-ai/board"
	"github.com/zdavid4525/checkers-ai/move"
)

// Apply plays m on pos and returns the resulting position: captured pieces
// removed, the moving piece relocated, promotion applied if the final
// landing square is the back rank, and the side to move flipped. pos is
// not mutated.
//
// Apply is total over any move produced by GenAll for the same position.
// Calling it with any other move is a programming-contract violation and
// panics; tolerating it silently would corrupt the board invariants.
func Apply(pos board.Position, m *move.Move) board.Position {
	pl := pos.OnTurn()
	from := m.From()
	sq := pos.Get(int(from.Row), int(from.Col))
	if owner, ok := sq.Owner(); !ok || owner != pl {
		panic(fmt.Sprintf("illegal move applied: %s does not hold a %v piece for move %s",
			from, pl, m.ShortDescription()))
	}
	pos.SetSquare(int(from.Row), int(from.Col), board.Empty)

	for _, cap := range m.Captured() {
		csq := pos.Get(int(cap.Row), int(cap.Col))
		if owner, ok := csq.Owner(); !ok || owner != pl.Other() {
			panic(fmt.Sprintf("illegal move applied: no %v piece to capture on %s in move %s",
				pl.Other(), cap, m.ShortDescription()))
		}
		pos.SetSquare(int(cap.Row), int(cap.Col), board.Empty)
	}

	for _, land := range m.Path() {
		if pos.Get(int(land.Row), int(land.Col)).Occupied() {
			panic(fmt.Sprintf("illegal move applied: landing square %s occupied in move %s",
				land, m.ShortDescription()))
		}
	}

	to := m.To()
	if !sq.King() && int(to.Row) == board.BackRank(pl) {
		sq = sq.Promote()
	}
	pos.SetSquare(int(to.Row), int(to.Col), sq)
	pos.SetOnTurn(pl.Other())
	return pos
}
