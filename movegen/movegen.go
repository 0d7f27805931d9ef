// Package movegen generates legal checkers moves for the side to move,
// enforcing the mandatory-capture rule and multi-jump chaining. Generation
// is pure: it never mutates the position it is given.
package movegen

import (
	"github.com/zdavid4525/checkers-ai/board"
	"github.com/zdavid4525/checkers-ai/move"
)

// MoveGenerator is an interface for generating moves. The concrete
// Generator below is the only implementation in this repo; the interface
// exists so the solver can be handed a different generator in tests.
type MoveGenerator interface {
	GenAll(pos board.Position) []*move.Move
}

// Generator implements MoveGenerator with a row-major board scan and a
// depth-first search for capture chains. The scan and direction orders are
// fixed, so generation order is deterministic for a given position.
type Generator struct {
	plays []*move.Move
}

// NewGenerator creates a Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

var allDirs = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

// forwardRowDir is the row delta for a man's forward movement.
func forwardRowDir(pl board.Player) int {
	if pl == board.Red {
		return -1
	}
	return 1
}

// dirs returns the movement directions for a piece: both forward diagonals
// for a man, all four for a king. Men capture forward only, as in standard
// English draughts.
func dirs(pl board.Player, king bool) [][2]int {
	if king {
		return allDirs[:]
	}
	fwd := forwardRowDir(pl)
	return [][2]int{{fwd, -1}, {fwd, 1}}
}

// GenAll returns the legal move set for the side to move. If any capture
// chain exists, only maximal capture chains are returned; otherwise all
// single diagonal steps. An empty result means the side to move has no
// legal move and loses (a terminal position).
//
// The generator owns the returned slice; it is reused by the next GenAll
// call. Callers that keep moves across calls must copy them.
func (g *Generator) GenAll(pos board.Position) []*move.Move {
	g.plays = g.plays[:0]
	pl := pos.OnTurn()

	for r := 0; r < board.Dim; r++ {
		for c := 0; c < board.Dim; c++ {
			sq := pos.Get(r, c)
			owner, ok := sq.Owner()
			if !ok || owner != pl {
				continue
			}
			from := move.C(r, c)
			work := pos
			work.SetSquare(r, c, board.Empty)
			g.jumpDFS(work, pl, sq.King(), from, from, squareBit(r, c), nil, nil)
		}
	}
	if len(g.plays) > 0 {
		return g.plays
	}

	for r := 0; r < board.Dim; r++ {
		for c := 0; c < board.Dim; c++ {
			sq := pos.Get(r, c)
			owner, ok := sq.Owner()
			if !ok || owner != pl {
				continue
			}
			for _, d := range dirs(pl, sq.King()) {
				tr, tc := r+d[0], c+d[1]
				if !board.InBounds(tr, tc) || pos.Get(tr, tc).Occupied() {
					continue
				}
				g.plays = append(g.plays, move.NewStepMove(move.C(r, c), move.C(tr, tc)))
			}
		}
	}
	return g.plays
}

// squareBit maps a square to its bit in the visited mask.
func squareBit(row, col int) uint64 {
	return 1 << uint(row*board.Dim+col)
}

// jumpDFS extends a capture chain from cur, recording every maximal chain
// found. pos is a working copy with the moving piece lifted off the board
// and all previously captured pieces removed. visited holds the origin and
// every landing square of the chain so far; a chain may never land on a
// visited square again. A man that reaches the back rank promotes and the
// chain ends there.
func (g *Generator) jumpDFS(pos board.Position, pl board.Player, king bool,
	from, cur move.Coord, visited uint64, path, captured []move.Coord) {

	extended := false
	for _, d := range dirs(pl, king) {
		or, oc := int(cur.Row)+d[0], int(cur.Col)+d[1]
		lr, lc := int(cur.Row)+2*d[0], int(cur.Col)+2*d[1]
		if !board.InBounds(lr, lc) {
			continue
		}
		owner, ok := pos.Get(or, oc).Owner()
		if !ok || owner == pl {
			continue
		}
		if pos.Get(lr, lc).Occupied() || visited&squareBit(lr, lc) != 0 {
			continue
		}
		extended = true

		land := move.C(lr, lc)
		newPath := append(append([]move.Coord{}, path...), land)
		newCaptured := append(append([]move.Coord{}, captured...), move.C(or, oc))
		if !king && lr == board.BackRank(pl) {
			g.plays = append(g.plays, move.NewJumpMove(from, newPath, newCaptured))
			continue
		}
		child := pos
		child.SetSquare(or, oc, board.Empty)
		g.jumpDFS(child, pl, king, from, land, visited|squareBit(lr, lc), newPath, newCaptured)
	}
	if !extended && len(path) > 0 {
		g.plays = append(g.plays, move.NewJumpMove(from, path, captured))
	}
}

// HasLegalMoves reports whether the side to move has at least one legal
// move. It is cheaper than GenAll because it stops at the first step or
// single jump found.
func HasLegalMoves(pos board.Position) bool {
	pl := pos.OnTurn()
	for r := 0; r < board.Dim; r++ {
		for c := 0; c < board.Dim; c++ {
			sq := pos.Get(r, c)
			owner, ok := sq.Owner()
			if !ok || owner != pl {
				continue
			}
			for _, d := range dirs(pl, sq.King()) {
				tr, tc := r+d[0], c+d[1]
				if !board.InBounds(tr, tc) {
					continue
				}
				if !pos.Get(tr, tc).Occupied() {
					return true
				}
				jr, jc := r+2*d[0], c+2*d[1]
				if !board.InBounds(jr, jc) || pos.Get(jr, jc).Occupied() {
					continue
				}
				if over, occupied := pos.Get(tr, tc).Owner(); occupied && over != pl {
					return true
				}
			}
		}
	}
	return false
}
