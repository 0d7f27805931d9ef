// Package zobrist generates Zobrist hashes for checkers positions.
// https://en.wikipedia.org/wiki/Zobrist_hashing
package zobrist

import (
	"lukechampine.com/frand"

	"github.com/zdavid4525/checkers-ai/board"
)

const bignum = 1<<63 - 2

// numPieceKinds covers red man, red king, black man, black king.
const numPieceKinds = 4

// Zobrist hashes positions by xoring one random key per occupied square
// and piece kind, plus a key for the side to move. Tables are seeded once
// per instance; the hash is only meaningful relative to the instance that
// produced it.
type Zobrist struct {
	posTable  [board.Dim * board.Dim][numPieceKinds]uint64
	blackTurn uint64
}

// Initialize fills the key tables.
func (z *Zobrist) Initialize() {
	for i := range z.posTable {
		for j := 0; j < numPieceKinds; j++ {
			z.posTable[i][j] = frand.Uint64n(bignum) + 1
		}
	}
	z.blackTurn = frand.Uint64n(bignum) + 1
}

// Hash computes the full hash of a position.
func (z *Zobrist) Hash(pos board.Position) uint64 {
	key := uint64(0)
	for r := 0; r < board.Dim; r++ {
		for c := 0; c < board.Dim; c++ {
			sq := pos.Get(r, c)
			if !sq.Occupied() {
				continue
			}
			key ^= z.posTable[r*board.Dim+c][int(sq)-1]
		}
	}
	if pos.OnTurn() == board.Black {
		key ^= z.blackTurn
	}
	return key
}
