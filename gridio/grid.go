// Package gridio reads and writes the plain-text grid notation for
// checkers positions: eight rows of eight symbols, r/R for red man/king,
// b/B for black man/king, '.' for an empty cell. A game record is the
// initial grid followed by one grid per ply, each grid followed by a
// blank line.
package gridio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/zdavid4525/checkers-ai/board"
)

// The malformed-board taxonomy. Parse errors wrap one of these sentinels,
// so callers can errors.Is them.
var (
	ErrWrongDimensions = errors.New("grid does not have 8 rows of 8 symbols")
	ErrInvalidSymbol   = errors.New("invalid symbol in grid")
	ErrLightSquare     = errors.New("piece on an unreachable light square")
)

// ParsePosition reads one grid from r and returns the position with red
// to move, which is the rule for a fresh game.
func ParsePosition(r io.Reader) (board.Position, error) {
	var pos board.Position
	scanner := bufio.NewScanner(r)
	row := 0
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" {
			continue
		}
		if row >= board.Dim {
			return pos, fmt.Errorf("%w: more than %d rows", ErrWrongDimensions, board.Dim)
		}
		if len(line) != board.Dim {
			return pos, fmt.Errorf("%w: row %d has %d symbols", ErrWrongDimensions, row, len(line))
		}
		for col, ch := range line {
			sq, ok := board.SquareFromRune(ch)
			if !ok {
				return pos, fmt.Errorf("%w: %q at row %d col %d", ErrInvalidSymbol, ch, row, col)
			}
			if sq.Occupied() && !board.Dark(row, col) {
				return pos, fmt.Errorf("%w: %q at row %d col %d", ErrLightSquare, ch, row, col)
			}
			pos.SetSquare(row, col, sq)
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return pos, err
	}
	if row != board.Dim {
		return pos, fmt.Errorf("%w: got %d rows", ErrWrongDimensions, row)
	}
	pos.SetOnTurn(board.Red)
	return pos, nil
}

// ParsePositionFile opens path and parses the grid in it.
func ParsePositionFile(path string) (board.Position, error) {
	f, err := os.Open(path)
	if err != nil {
		return board.Position{}, err
	}
	defer f.Close()
	log.Debug().Str("path", path).Msg("parsing-position-file")
	return ParsePosition(f)
}

// WritePositions serializes a sequence of positions, one grid per
// position with a blank line after each.
func WritePositions(w io.Writer, positions []board.Position) error {
	bw := bufio.NewWriter(w)
	for _, pos := range positions {
		if _, err := bw.WriteString(pos.ToDisplayText()); err != nil {
			return err
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WritePositionsFile writes the sequence of positions to path, creating
// or truncating it.
func WritePositionsFile(path string, positions []board.Position) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	log.Debug().Str("path", path).Int("positions", len(positions)).Msg("writing-solution-file")
	return WritePositions(f, positions)
}
