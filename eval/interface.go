// Package eval contains static evaluators for checkers positions. An
// evaluator ranks the non-terminal leaves of a depth-limited search; it is
// a fixed, hand-designed heuristic with no learned components.
package eval

import "github.com/zdavid4525/checkers-ai/board"

// Evaluator scores a position from the given player's perspective; higher
// is better for that player. Implementations must be deterministic and
// symmetric: evaluating the mirrored position from the mirrored
// perspective negates the score.
type Evaluator interface {
	Score(pos board.Position, perspective board.Player) int16
}
