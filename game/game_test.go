package game

import (
	"os"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/zdavid4525/checkers-ai/board"
	"github.com/zdavid4525/checkers-ai/movegen"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}

func TestNewGame(t *testing.T) {
	is := is.New(t)
	g := NewGame(board.StartingPosition())
	is.Equal(g.Playing(), StatePlaying)
	is.Equal(g.NumTurns(), 0)
	is.Equal(len(g.History()), 1)
	_, err := g.Winner()
	is.True(err != nil) // no winner while the game runs
}

func TestNewGameFromTerminalPosition(t *testing.T) {
	is := is.New(t)
	g := NewGame(board.PosBlackBlocked())
	is.Equal(g.Playing(), StateGameOver)
	winner, err := g.Winner()
	is.NoErr(err)
	is.Equal(winner, board.Red)
}

func TestPlayMove(t *testing.T) {
	is := is.New(t)
	g := NewGame(board.StartingPosition())
	gen := movegen.NewGenerator()

	m := gen.GenAll(g.Position())[0]
	is.NoErr(g.PlayMove(m))
	is.Equal(g.NumTurns(), 1)
	is.Equal(len(g.History()), 2)
	is.Equal(g.Position().OnTurn(), board.Black)
	is.Equal(g.Moves()[0], m)
}

func TestGameEndsAfterDecisiveCapture(t *testing.T) {
	is := is.New(t)
	g := NewGame(board.PosForcedDoubleJump())
	gen := movegen.NewGenerator()

	// Black's mandatory double jump removes both red pieces; red then
	// has no move and the game is over.
	moves := gen.GenAll(g.Position())
	is.Equal(len(moves), 1)
	is.NoErr(g.PlayMove(moves[0]))
	is.Equal(g.Playing(), StateGameOver)

	winner, err := g.Winner()
	is.NoErr(err)
	is.Equal(winner, board.Black)

	err = g.PlayMove(moves[0])
	is.True(err != nil) // no moves after game over
}
