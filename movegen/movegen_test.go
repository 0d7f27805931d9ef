package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"

	"github.com/zdavid4525/checkers-ai/board"
	"github.com/zdavid4525/checkers-ai/move"
)

func descriptions(plays []*move.Move) []string {
	out := make([]string, len(plays))
	for i, m := range plays {
		out[i] = m.ShortDescription()
	}
	return out
}

func TestOpeningMoves(t *testing.T) {
	gen := NewGenerator()
	plays := gen.GenAll(board.StartingPosition())
	require.Len(t, plays, 7)
	for _, m := range plays {
		assert.Equal(t, move.MoveTypeStep, m.Action())
		// All opening moves go one row up the board.
		assert.Equal(t, m.From().Row-1, m.To().Row)
	}
	// Row-major scan order makes generation deterministic.
	assert.Equal(t, []string{
		"a3-b4", "c3-b4", "c3-d4", "e3-d4", "e3-f4", "g3-f4", "g3-h4",
	}, descriptions(plays))
}

func TestMandatoryCaptureExcludesSteps(t *testing.T) {
	// Black to move has one jump available; its other pieces have plenty
	// of plain steps, which must all be suppressed.
	pos := board.FromGrid([]string{
		".b.b.b..",
		"........",
		".....b..",
		"....r...",
		"........",
		"........",
		"........",
		"........",
	}, board.Black)
	gen := NewGenerator()
	plays := gen.GenAll(pos)
	require.Len(t, plays, 1)
	assert.Equal(t, move.MoveTypeJump, plays[0].Action())
	assert.Equal(t, 1, plays[0].NumCaptured())
	assert.Equal(t, "f6xd4", plays[0].ShortDescription())
}

func TestForcedDoubleJump(t *testing.T) {
	pos := board.PosForcedDoubleJump()
	gen := NewGenerator()
	plays := gen.GenAll(pos)
	// A single two-jump chain, not two separate single jumps.
	require.Len(t, plays, 1)
	m := plays[0]
	assert.Equal(t, 2, m.NumCaptured())
	assert.Equal(t, "c5xe3xc1", m.ShortDescription())

	next := Apply(pos, m)
	// The chain ends on black's back rank, so the man promotes.
	assert.Equal(t, board.BlackKing, next.Get(7, 2))
	assert.Equal(t, board.Empty, next.Get(4, 3))
	assert.Equal(t, board.Empty, next.Get(6, 3))
	assert.Equal(t, board.Red, next.OnTurn())
}

func TestTerminalPositions(t *testing.T) {
	cases := []struct {
		name string
		pos  board.Position
	}{
		{"blocked", board.PosBlackBlocked()},
		{"back-rank-man", board.PosLoneRedBehindBlack()},
	}
	for _, tc := range cases {
		gen := NewGenerator()
		assert.Empty(t, gen.GenAll(tc.pos), tc.name)
		assert.False(t, HasLegalMoves(tc.pos), tc.name)
	}
}

func TestMenDoNotCaptureBackward(t *testing.T) {
	// The red man sits diagonally behind the black man with an empty
	// square beyond it, but men only capture forward.
	pos := board.PosLoneRedBehindBlack()
	gen := NewGenerator()
	assert.Empty(t, gen.GenAll(pos))
}

func TestPromotionEndsChain(t *testing.T) {
	// After jumping c2 the black man lands on d1 and promotes. A king
	// could continue the chain over e2, but the new king only gains its
	// privileges starting the following turn, so the chain ends with a
	// single capture.
	pos := board.FromGrid([]string{
		"........",
		"........",
		"........",
		"........",
		"........",
		".b......",
		"..r.r...",
		"........",
	}, board.Black)
	gen := NewGenerator()
	plays := gen.GenAll(pos)
	require.Len(t, plays, 1)
	m := plays[0]
	assert.Equal(t, 1, m.NumCaptured())
	assert.Equal(t, move.C(7, 3), m.To())
	next := Apply(pos, m)
	assert.Equal(t, board.BlackKing, next.Get(7, 3))
}

func TestKingJumpsAllDirections(t *testing.T) {
	// A red king ringed by black men: chains run in every direction but
	// may never land on a square the chain already visited, so no chain
	// can take all four pieces and return to the origin.
	pos := board.FromGrid([]string{
		"........",
		"........",
		"...R....",
		"..b.b...",
		"........",
		"..b.b...",
		"........",
		"........",
	}, board.Red)
	gen := NewGenerator()
	plays := gen.GenAll(pos)
	require.Len(t, plays, 2)
	for _, m := range plays {
		assert.Equal(t, 3, m.NumCaptured(), m.ShortDescription())
		for _, land := range m.Path() {
			assert.NotEqual(t, m.From(), land, "chain may not land on its origin")
		}
	}
}

func TestApplyPanicsOnIllegalMove(t *testing.T) {
	pos := board.StartingPosition()
	assert.Panics(t, func() {
		// No red piece on that square.
		Apply(pos, move.NewStepMove(move.C(4, 1), move.C(3, 0)))
	})
	assert.Panics(t, func() {
		// A fabricated capture of an empty square.
		Apply(pos, move.NewJumpMove(move.C(5, 0),
			[]move.Coord{move.C(3, 2)}, []move.Coord{move.C(4, 1)}))
	})
}

// TestLegalityClosure fuzzes the generator with random playouts: every
// generated move must apply cleanly and the resulting position must keep
// the board invariants.
func TestLegalityClosure(t *testing.T) {
	gen := NewGenerator()
	for game := 0; game < 25; game++ {
		pos := board.StartingPosition()
		for ply := 0; ply < 120; ply++ {
			plays := gen.GenAll(pos)
			if len(plays) == 0 {
				break
			}
			m := plays[frand.Intn(len(plays))]
			next := Apply(pos, m)
			checkInvariants(t, next)
			pos = next
		}
	}
}

func checkInvariants(t *testing.T, pos board.Position) {
	t.Helper()
	for r := 0; r < board.Dim; r++ {
		for c := 0; c < board.Dim; c++ {
			sq := pos.Get(r, c)
			if !sq.Occupied() {
				continue
			}
			if !board.Dark(r, c) {
				t.Fatalf("piece on light square (%d,%d)\n%s", r, c, pos.ToDisplayText())
			}
			if sq == board.RedMan && r == board.BackRank(board.Red) {
				t.Fatalf("unpromoted red man on back rank\n%s", pos.ToDisplayText())
			}
			if sq == board.BlackMan && r == board.BackRank(board.Black) {
				t.Fatalf("unpromoted black man on back rank\n%s", pos.ToDisplayText())
			}
		}
	}
	redMen, redKings := pos.NumPieces(board.Red)
	blackMen, blackKings := pos.NumPieces(board.Black)
	if redMen+redKings > 12 || blackMen+blackKings > 12 {
		t.Fatalf("piece count exceeds 12\n%s", pos.ToDisplayText())
	}
}
