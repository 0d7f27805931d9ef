package zobrist

import (
	"testing"

	"github.com/matryer/is"

	"github.com/zdavid4525/checkers-ai/board"
)

func TestHashDistinguishesPositions(t *testing.T) {
	is := is.New(t)
	var z Zobrist
	z.Initialize()

	start := board.StartingPosition()
	h := z.Hash(start)

	// Side to move matters.
	flipped := start
	flipped.SetOnTurn(board.Black)
	is.True(h != z.Hash(flipped))

	// Moving a piece matters.
	moved := start
	moved.SetSquare(5, 0, board.Empty)
	moved.SetSquare(4, 1, board.RedMan)
	is.True(h != z.Hash(moved))

	// Piece kind matters on the same square.
	promoted := start
	promoted.SetSquare(5, 0, board.RedKing)
	is.True(h != z.Hash(promoted))
}

func TestHashIsDeterministicPerInstance(t *testing.T) {
	is := is.New(t)
	var z Zobrist
	z.Initialize()

	pos := board.PosForcedDoubleJump()
	is.Equal(z.Hash(pos), z.Hash(pos))

	// Rebuilding the same position from scratch hashes identically.
	again := board.FromGrid([]string{
		"........",
		"........",
		"........",
		"..b.....",
		"...r....",
		"........",
		"...r....",
		"........",
	}, board.Black)
	is.Equal(z.Hash(pos), z.Hash(again))
}

func BenchmarkHash(b *testing.B) {
	var z Zobrist
	z.Initialize()
	pos := board.StartingPosition()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = z.Hash(pos)
	}
}
