package negamax

import (
	"testing"

	"github.com/matryer/is"
)

func TestEntryPacking(t *testing.T) {
	is := is.New(t)
	for _, flag := range []uint8{TTExact, TTLower, TTUpper} {
		for _, depth := range []uint8{0, 1, 9, depthMask} {
			e := TableEntry{flagAndDepth: flag<<6 + depth}
			is.Equal(e.flag(), flag)
			is.Equal(e.depth(), depth)
			is.True(e.valid())
		}
	}
	is.True(!TableEntry{}.valid())
}

func TestStoreLookup(t *testing.T) {
	is := is.New(t)
	tt := &TranspositionTable{}
	tt.ResetToPowerOf2(4)

	key := uint64(0xdeadbeefcafe)
	tt.store(key, TableEntry{score: -312, flagAndDepth: TTLower<<6 + 7})

	e := tt.lookup(key)
	is.True(e.valid())
	is.Equal(e.score, int16(-312))
	is.Equal(e.flag(), uint8(TTLower))
	is.Equal(e.depth(), uint8(7))

	// A colliding key maps to the same slot but the full hash differs,
	// so the lookup misses instead of returning a wrong entry.
	collider := key ^ (1 << 40)
	is.Equal(collider&tt.sizeMask, key&tt.sizeMask)
	is.True(!tt.lookup(collider).valid())
}

func TestStoreOverwrites(t *testing.T) {
	is := is.New(t)
	tt := &TranspositionTable{}
	tt.ResetToPowerOf2(4)

	key := uint64(21)
	tt.store(key, TableEntry{score: 10, flagAndDepth: TTExact<<6 + 2})
	tt.store(key, TableEntry{score: -40, flagAndDepth: TTUpper<<6 + 5})

	e := tt.lookup(key)
	is.Equal(e.score, int16(-40))
	is.Equal(e.flag(), uint8(TTUpper))
	is.Equal(e.depth(), uint8(5))
	is.Equal(tt.created.Load(), uint64(2))
}

func TestResetClears(t *testing.T) {
	is := is.New(t)
	tt := &TranspositionTable{}
	tt.ResetToPowerOf2(4)
	tt.store(3, TableEntry{score: 1, flagAndDepth: TTExact<<6 + 1})

	tt.ResetToPowerOf2(4)
	is.True(!tt.lookup(3).valid())
	is.Equal(tt.created.Load(), uint64(0))
}

func TestResetMinimumSize(t *testing.T) {
	is := is.New(t)
	tt := &TranspositionTable{}
	// A vanishing memory fraction still yields the floor size.
	tt.Reset(1e-12)
	is.Equal(len(tt.table), 1<<16)
}
