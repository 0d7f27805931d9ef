package gridio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zdavid4525/checkers-ai/board"
)

const startingGrid = `.b.b.b.b
b.b.b.b.
.b.b.b.b
........
........
r.r.r.r.
.r.r.r.r
r.r.r.r.
`

func TestParsePosition(t *testing.T) {
	pos, err := ParsePosition(strings.NewReader(startingGrid))
	require.NoError(t, err)
	assert.Equal(t, board.StartingPosition(), pos)
	assert.Equal(t, board.Red, pos.OnTurn())
}

func TestParseToleratesDecoration(t *testing.T) {
	// Blank lines, trailing spaces, and CRLF endings are all ignored.
	decorated := "\n" + strings.ReplaceAll(startingGrid, "\n", " \r\n") + "\n\n"
	pos, err := ParsePosition(strings.NewReader(decorated))
	require.NoError(t, err)
	assert.Equal(t, board.StartingPosition(), pos)
}

func TestParseMalformed(t *testing.T) {
	short := strings.Join(strings.Split(startingGrid, "\n")[:4], "\n")
	testcases := []struct {
		name string
		in   string
		want error
	}{
		{"too few rows", short, ErrWrongDimensions},
		{"too many rows", startingGrid + "........\n", ErrWrongDimensions},
		{"short row", strings.Replace(startingGrid, "........", ".......", 1), ErrWrongDimensions},
		{"bad symbol", strings.Replace(startingGrid, ".b.b.b.b", ".b.x.b.b", 1), ErrInvalidSymbol},
		{"piece off the dark squares", strings.Replace(startingGrid, "b.b.b.b.", "bbb.b.b.", 1), ErrLightSquare},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParsePosition(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRoundTripFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "board.txt")
	require.NoError(t, os.WriteFile(in, []byte(startingGrid), 0644))

	pos, err := ParsePositionFile(in)
	require.NoError(t, err)

	out := filepath.Join(dir, "solution.txt")
	history := []board.Position{pos, pos.Mirror()}
	require.NoError(t, WritePositionsFile(out, history))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	grids := strings.Split(strings.TrimRight(string(data), "\n"), "\n\n")
	require.Len(t, grids, 2)
	assert.Equal(t, strings.TrimRight(startingGrid, "\n"), grids[0])

	// The first grid of the record parses back to the input position.
	reparsed, err := ParsePosition(strings.NewReader(grids[0]))
	require.NoError(t, err)
	assert.Equal(t, pos, reparsed)
}

func TestParseMissingFile(t *testing.T) {
	_, err := ParsePositionFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
