// Package automatic contains the game loop: it repeatedly asks the solver
// for the best move and advances the game until a terminal position or a
// ply cap, producing the sequence of grids the CLI writes out.
package automatic

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/zdavid4525/checkers-ai/board"
	"github.com/zdavid4525/checkers-ai/config"
	"github.com/zdavid4525/checkers-ai/eval"
	"github.com/zdavid4525/checkers-ai/game"
	"github.com/zdavid4525/checkers-ai/movegen"
	"github.com/zdavid4525/checkers-ai/negamax"
)

// GameRunner is the master struct for the automatic game logic.
type GameRunner struct {
	cfg    *config.Config
	game   *game.Game
	solver *negamax.Solver

	logchan chan string
}

// NewGameRunner instantiates and initializes a game runner. logchan may be
// nil; if set, it receives one line per played move.
func NewGameRunner(logchan chan string, cfg *config.Config) (*GameRunner, error) {
	r := &GameRunner{cfg: cfg, logchan: logchan}

	gen := movegen.NewGenerator()
	evaluator := eval.NewCombinedEvaluator(cfg.Settings.Evaluation)
	s := new(negamax.Solver)
	if err := s.Init(gen, evaluator); err != nil {
		return nil, err
	}
	s.SetIterativeDeepening(!cfg.Settings.DisableIterativeDeepening)
	s.SetTranspositionTableOptim(!cfg.Settings.DisableTranspositionTable)
	if cfg.Settings.TranspositionTableMemory > 0 {
		s.SetTranspositionTableFraction(cfg.Settings.TranspositionTableMemory)
	}
	r.solver = s
	return r, nil
}

// Game returns the game played by this runner, nil before PlayFullGame.
func (r *GameRunner) Game() *game.Game {
	return r.game
}

// PlayFullGame plays out a game from the initial position, one solver
// move per ply, until a terminal position or the configured ply cap. The
// played game is available via Game afterwards.
func (r *GameRunner) PlayFullGame(ctx context.Context, initial board.Position) error {
	r.game = game.NewGame(initial)
	for r.game.Playing() == game.StatePlaying && r.game.NumTurns() < r.cfg.MaxTurns {
		pos := r.game.Position()
		m, val, err := r.solver.BestMove(ctx, pos, r.cfg.Plies)
		if err != nil {
			return err
		}
		if m == nil {
			// Terminal already; the loop condition will see it.
			break
		}
		if err := r.game.PlayMove(m); err != nil {
			return err
		}
		log.Debug().
			Int("turn", r.game.NumTurns()).
			Str("side", pos.OnTurn().String()).
			Str("move", m.ShortDescription()).
			Int16("val", val).
			Msg("played-move")
		if r.logchan != nil {
			r.logchan <- fmt.Sprintf("%d %s %s %d\n",
				r.game.NumTurns(), pos.OnTurn(), m.ShortDescription(), val)
		}
	}
	if r.game.Playing() == game.StatePlaying {
		log.Warn().Int("maxturns", r.cfg.MaxTurns).Msg("ply-cap-reached-before-terminal")
	}
	return nil
}
