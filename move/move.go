// Package move defines the Move type: a single step or a multi-jump
// capture chain by one piece.
package move

import (
	"fmt"
	"strings"

	"github.com/zdavid4525/checkers-ai/board"
)

// MoveType is a type of move; a step or a capture chain.
type MoveType uint8

const (
	MoveTypeStep MoveType = iota
	MoveTypeJump
)

// A Coord is a square on the board.
type Coord struct {
	Row, Col int8
}

// C is shorthand for building a Coord.
func C(row, col int) Coord {
	return Coord{Row: int8(row), Col: int8(col)}
}

// String renders the coordinate in algebraic-style notation: columns a-h
// left to right, ranks 1-8 bottom to top (so row 0 is rank 8).
func (c Coord) String() string {
	return fmt.Sprintf("%c%d", 'a'+rune(c.Col), board.Dim-int(c.Row))
}

// Move is one turn's action by a single piece. A step has a path of
// exactly one landing square and no captures. A jump has a path of one or
// more landing squares, each preceded by exactly one captured enemy piece,
// recorded in the same order.
type Move struct {
	action   MoveType
	from     Coord
	path     []Coord
	captured []Coord
	// estimatedValue is used only for move ordering during search.
	estimatedValue int16
}

// NewStepMove creates a simple diagonal step.
func NewStepMove(from, to Coord) *Move {
	return &Move{action: MoveTypeStep, from: from, path: []Coord{to}}
}

// NewJumpMove creates a capture chain. path holds the successive landing
// squares and captured the enemy pieces removed, one per landing.
func NewJumpMove(from Coord, path, captured []Coord) *Move {
	return &Move{action: MoveTypeJump, from: from, path: path, captured: captured}
}

// Action returns the move type.
func (m *Move) Action() MoveType {
	return m.action
}

// From returns the origin square.
func (m *Move) From() Coord {
	return m.from
}

// To returns the final landing square.
func (m *Move) To() Coord {
	return m.path[len(m.path)-1]
}

// Path returns the successive landing squares.
func (m *Move) Path() []Coord {
	return m.path
}

// Captured returns the squares of the captured pieces, in jump order. It
// is empty for a step.
func (m *Move) Captured() []Coord {
	return m.captured
}

// NumCaptured returns the number of pieces this move removes.
func (m *Move) NumCaptured() int {
	return len(m.captured)
}

// Equals compares two moves for identical action, origin, path and
// captures. A nil argument compares unequal.
func (m *Move) Equals(o *Move) bool {
	if o == nil {
		return false
	}
	if m.action != o.action || m.from != o.from ||
		len(m.path) != len(o.path) || len(m.captured) != len(o.captured) {
		return false
	}
	for i := range m.path {
		if m.path[i] != o.path[i] {
			return false
		}
	}
	for i := range m.captured {
		if m.captured[i] != o.captured[i] {
			return false
		}
	}
	return true
}

// CopyFrom makes m a deep copy of o.
func (m *Move) CopyFrom(o *Move) {
	m.action = o.action
	m.from = o.from
	m.path = append(m.path[:0], o.path...)
	m.captured = append(m.captured[:0], o.captured...)
	m.estimatedValue = o.estimatedValue
}

// ShortDescription provides a short description, useful for logging or
// user display: "b6-a5" for a step, "b6xd4xf2" for a capture chain.
func (m *Move) ShortDescription() string {
	sep := "-"
	if m.action == MoveTypeJump {
		sep = "x"
	}
	var sb strings.Builder
	sb.WriteString(m.from.String())
	for _, c := range m.path {
		sb.WriteString(sep)
		sb.WriteString(c.String())
	}
	return sb.String()
}

// String provides a string just for debugging purposes.
func (m *Move) String() string {
	return fmt.Sprintf("<%p action: %d %s captures: %d estim: %d>",
		m, m.action, m.ShortDescription(), len(m.captured), m.estimatedValue)
}

// EstimatedValue is an internal value used to order moves during search.
func (m *Move) EstimatedValue() int16 {
	return m.estimatedValue
}

// SetEstimatedValue sets the estimated value of this move. It is
// calculated outside this package.
func (m *Move) SetEstimatedValue(v int16) {
	m.estimatedValue = v
}

// AddEstimatedValue adds an offset to the estimated value of this move.
func (m *Move) AddEstimatedValue(v int16) {
	m.estimatedValue += v
}
