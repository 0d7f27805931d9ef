package negamax

import (
	"math"
	"sync/atomic"

	"github.com/pbnjay/memory"
	"github.com/rs/zerolog/log"
)

const (
	TTExact = 0x01
	TTLower = 0x02
	TTUpper = 0x03
)

const entrySize = 16

const depthMask = (1 << 6) - 1

// TableEntry is a transposition table entry. The full hash is stored, so
// the table works at any size; an all-zero entry is invalid.
type TableEntry struct {
	fullHash     uint64
	score        int16
	flagAndDepth uint8
}

func (t TableEntry) flag() uint8 {
	return t.flagAndDepth >> 6
}

func (t TableEntry) depth() uint8 {
	return t.flagAndDepth & depthMask
}

func (t TableEntry) valid() bool {
	// a table flag is 1, 2, or 3.
	return t.flag() != 0
}

// TranspositionTable caches previously searched positions keyed by their
// Zobrist hash, storing the searched depth and whether the score is
// exact or an alpha/beta bound. The search is single-threaded, so the
// table needs no locking; the statistics counters are atomic only so the
// nodes-per-second ticker can read them concurrently.
type TranspositionTable struct {
	table    []TableEntry
	sizeMask uint64

	created atomic.Uint64
	lookups atomic.Uint64
	hits    atomic.Uint64
}

func (t *TranspositionTable) lookup(zval uint64) TableEntry {
	t.lookups.Add(1)
	idx := zval & t.sizeMask
	entry := t.table[idx]
	if entry.fullHash != zval {
		return TableEntry{}
	}
	t.hits.Add(1)
	// Assume an equal hash is the same position. This fails very, very
	// rarely, but it could happen.
	return entry
}

func (t *TranspositionTable) store(zval uint64, tentry TableEntry) {
	idx := zval & t.sizeMask
	tentry.fullHash = zval
	// just overwrite whatever is there for now.
	t.table[idx] = tentry
	t.created.Add(1)
}

// Reset sizes the table to the largest power-of-two element count that
// fits in the given fraction of system memory (at least 2^16 entries) and
// clears it.
func (t *TranspositionTable) Reset(fractionOfMemory float64) {
	totalMem := memory.TotalMemory()
	desiredNElems := fractionOfMemory * (float64(totalMem) / float64(entrySize))
	sizePowerOf2 := int(math.Log2(desiredNElems))
	if sizePowerOf2 < 16 {
		sizePowerOf2 = 16
	}
	t.ResetToPowerOf2(sizePowerOf2)

	log.Debug().Int("size-power-of-2", sizePowerOf2).
		Float64("desired-num-elems", desiredNElems).
		Uint64("total-system-memory-bytes", totalMem).
		Msg("transposition-table-size")
}

// ResetToPowerOf2 sizes the table to exactly 2^p entries and clears it.
// Tests use it directly to keep allocations small.
func (t *TranspositionTable) ResetToPowerOf2(p int) {
	numElems := 1 << p
	t.sizeMask = uint64(numElems - 1)
	if len(t.table) == numElems {
		clear(t.table)
	} else {
		t.table = make([]TableEntry, numElems)
	}
	t.created.Store(0)
	t.lookups.Store(0)
	t.hits.Store(0)
}
