// Package game tracks a checkers game in progress: the current position,
// the move and position history, and the play state. The engine itself
// never needs a Game; it exists for the game loop, which plays solver
// moves until a terminal position and then serializes the history.
package game

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/zdavid4525/checkers-ai/board"
	"github.com/zdavid4525/checkers-ai/move"
	"github.com/zdavid4525/checkers-ai/movegen"
)

// PlayState is the state of the game.
type PlayState uint8

const (
	StatePlaying PlayState = iota
	StateGameOver
)

var errGameOver = errors.New("cannot play a move on a game that is over")

// Game is a checkers game in progress.
type Game struct {
	pos       board.Position
	positions []board.Position
	moves     []*move.Move
	playing   PlayState
}

// NewGame starts a game from the given position. The position itself is
// the first entry of the history. If the starting side has no legal move
// the game is over immediately.
func NewGame(initial board.Position) *Game {
	g := &Game{
		pos:       initial,
		positions: []board.Position{initial},
		playing:   StatePlaying,
	}
	if !movegen.HasLegalMoves(initial) {
		g.playing = StateGameOver
	}
	return g
}

// Position returns the current position.
func (g *Game) Position() board.Position {
	return g.pos
}

// Playing returns the play state.
func (g *Game) Playing() PlayState {
	return g.playing
}

// NumTurns returns the number of plies played so far.
func (g *Game) NumTurns() int {
	return len(g.moves)
}

// History returns every position of the game so far, starting with the
// initial one.
func (g *Game) History() []board.Position {
	return g.positions
}

// Moves returns the moves played so far.
func (g *Game) Moves() []*move.Move {
	return g.moves
}

// PlayMove plays m for the side to move and advances the game, flipping
// the turn and recording history. The move must come from the move
// generator for the current position.
func (g *Game) PlayMove(m *move.Move) error {
	if g.playing == StateGameOver {
		return errGameOver
	}
	next := movegen.Apply(g.pos, m)
	g.pos = next
	g.positions = append(g.positions, next)
	g.moves = append(g.moves, m)
	if !movegen.HasLegalMoves(next) {
		g.playing = StateGameOver
		log.Debug().
			Str("winner", next.OnTurn().Other().String()).
			Int("turns", len(g.moves)).
			Msg("game-over")
	}
	return nil
}

// Winner returns the winning player if the game is over. The side to move
// with no legal moves loses.
func (g *Game) Winner() (board.Player, error) {
	if g.playing != StateGameOver {
		return 0, fmt.Errorf("game still in progress after %d turns", len(g.moves))
	}
	return g.pos.OnTurn().Other(), nil
}
