package automatic

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/zdavid4525/checkers-ai/board"
	"github.com/zdavid4525/checkers-ai/game"
	"github.com/zdavid4525/checkers-ai/movegen"
)

// Result is the outcome of one played game.
type Result struct {
	Winner   board.Player
	Terminal bool // false if the ply cap ended the game
	Plies    int
}

// RandomPlayout plays uniformly random legal moves from pos until a
// terminal position or maxPlies, and returns the finished game. It is
// used by self-play mode and by tests as a position fuzzer; unlike the
// solver it is intentionally not deterministic.
func RandomPlayout(pos board.Position, maxPlies int) *game.Game {
	gen := movegen.NewGenerator()
	g := game.NewGame(pos)
	for g.Playing() == game.StatePlaying && g.NumTurns() < maxPlies {
		plays := gen.GenAll(g.Position())
		if err := g.PlayMove(plays[frand.Intn(len(plays))]); err != nil {
			// GenAll only returns legal moves, so this cannot happen.
			panic(err)
		}
	}
	return g
}

// PlayRandomGames runs n random playouts from the standard starting
// position and collects results. The solver is not involved; this mode
// exists to exercise the rules engine over a wide variety of positions.
func PlayRandomGames(ctx context.Context, n, maxPlies int) ([]Result, error) {
	results := make([]Result, 0, n)
	for i := 0; i < n; i++ {
		if ctx.Err() != nil {
			return results, ctx.Err()
		}
		g := RandomPlayout(board.StartingPosition(), maxPlies)
		res := Result{Plies: g.NumTurns()}
		if winner, err := g.Winner(); err == nil {
			res.Winner = winner
			res.Terminal = true
		}
		results = append(results, res)
	}
	return results, nil
}

// Summarize renders a one-line summary of a batch of results.
func Summarize(results []Result) string {
	redWins := lo.CountBy(results, func(r Result) bool {
		return r.Terminal && r.Winner == board.Red
	})
	blackWins := lo.CountBy(results, func(r Result) bool {
		return r.Terminal && r.Winner == board.Black
	})
	unfinished := len(results) - redWins - blackWins
	totalPlies := lo.SumBy(results, func(r Result) int { return r.Plies })
	avg := 0.0
	if len(results) > 0 {
		avg = float64(totalPlies) / float64(len(results))
	}
	return fmt.Sprintf("games: %d, red wins: %d, black wins: %d, unfinished: %d, avg plies: %.1f",
		len(results), redWins, blackWins, unfinished, avg)
}
