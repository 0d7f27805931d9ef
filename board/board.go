// Package board contains the basic data types for an English draughts
// position: players, squares, and the Position value type. It is pure data;
// move legality lives in the movegen package.
package board

import (
	"fmt"
	"strings"
)

// Dim is the board dimension. Boards are always square.
const Dim = 8

// A Player is one of the two sides. Red moves first and moves toward row 0;
// Black moves toward row Dim-1.
type Player uint8

const (
	Red Player = iota
	Black
)

func (p Player) String() string {
	if p == Red {
		return "red"
	}
	return "black"
}

// Other returns the opposing player.
func (p Player) Other() Player {
	return 1 - p
}

// A Square is the contents of a single cell.
type Square uint8

const (
	Empty Square = iota
	RedMan
	RedKing
	BlackMan
	BlackKing
)

// Occupied returns whether the square holds a piece.
func (s Square) Occupied() bool {
	return s != Empty
}

// Owner returns the player owning the piece on this square. The second
// return value is false for an empty square.
func (s Square) Owner() (Player, bool) {
	switch s {
	case RedMan, RedKing:
		return Red, true
	case BlackMan, BlackKing:
		return Black, true
	}
	return 0, false
}

// King returns whether the square holds a king.
func (s Square) King() bool {
	return s == RedKing || s == BlackKing
}

// Promote turns a man into the same side's king. Kings and empty squares
// are returned unchanged.
func (s Square) Promote() Square {
	switch s {
	case RedMan:
		return RedKing
	case BlackMan:
		return BlackKing
	}
	return s
}

// Rune returns the grid symbol for this square: r/R for red man/king,
// b/B for black man/king, '.' for empty.
func (s Square) Rune() rune {
	switch s {
	case RedMan:
		return 'r'
	case RedKing:
		return 'R'
	case BlackMan:
		return 'b'
	case BlackKing:
		return 'B'
	}
	return '.'
}

// SquareFromRune is the inverse of Rune. The second return value is false
// for an unrecognized symbol.
func SquareFromRune(r rune) (Square, bool) {
	switch r {
	case 'r':
		return RedMan, true
	case 'R':
		return RedKing, true
	case 'b':
		return BlackMan, true
	case 'B':
		return BlackKing, true
	case '.':
		return Empty, true
	}
	return Empty, false
}

// swapSide returns the same piece kind for the opposing side.
func (s Square) swapSide() Square {
	switch s {
	case RedMan:
		return BlackMan
	case RedKing:
		return BlackKing
	case BlackMan:
		return RedMan
	case BlackKing:
		return RedKing
	}
	return Empty
}

// InBounds returns whether (row, col) is on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < Dim && col >= 0 && col < Dim
}

// Dark returns whether (row, col) is a playable dark square. Pieces may
// only ever occupy dark squares.
func Dark(row, col int) bool {
	return (row+col)%2 == 1
}

// BackRank returns the promotion row for the given player: row 0 for Red,
// row Dim-1 for Black.
func BackRank(p Player) int {
	if p == Red {
		return 0
	}
	return Dim - 1
}

// A Position is a full board state: the 64 squares plus the side to move.
// Positions are immutable value objects as far as the engine is concerned;
// applying a move copies the Position and edits the copy, so search
// recursion backtracks by simply discarding children. The struct is
// directly comparable with ==.
type Position struct {
	squares [Dim][Dim]Square
	onturn  Player
}

// Get returns the contents of (row, col).
func (p Position) Get(row, col int) Square {
	return p.squares[row][col]
}

// SetSquare overwrites the contents of (row, col).
func (p *Position) SetSquare(row, col int, s Square) {
	p.squares[row][col] = s
}

// OnTurn returns the side to move.
func (p Position) OnTurn() Player {
	return p.onturn
}

// SetOnTurn sets the side to move.
func (p *Position) SetOnTurn(pl Player) {
	p.onturn = pl
}

// NumPieces returns the count of men and kings for the given player.
func (p Position) NumPieces(pl Player) (men, kings int) {
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			sq := p.squares[r][c]
			if owner, ok := sq.Owner(); ok && owner == pl {
				if sq.King() {
					kings++
				} else {
					men++
				}
			}
		}
	}
	return men, kings
}

// Mirror returns the position flipped top-to-bottom with the piece colors
// and the side to move swapped. Mirroring twice yields the original
// position. It is used by the evaluator symmetry tests.
func (p Position) Mirror() Position {
	var m Position
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			m.squares[Dim-1-r][c] = p.squares[r][c].swapSide()
		}
	}
	m.onturn = p.onturn.Other()
	return m
}

// ToDisplayText returns the plain-text grid for this position, one row per
// line. This is the same format the gridio package reads and writes.
func (p Position) ToDisplayText() string {
	var sb strings.Builder
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			sb.WriteRune(p.squares[r][c].Rune())
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}

func (p Position) String() string {
	return fmt.Sprintf("<pos onturn: %v>\n%s", p.onturn, p.ToDisplayText())
}

// StartingPosition returns the standard opening setup: twelve black men on
// the dark squares of rows 0-2, twelve red men on the dark squares of rows
// 5-7, red to move.
func StartingPosition() Position {
	var p Position
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			if !Dark(r, c) {
				continue
			}
			switch {
			case r <= 2:
				p.squares[r][c] = BlackMan
			case r >= 5:
				p.squares[r][c] = RedMan
			}
		}
	}
	p.onturn = Red
	return p
}
