package eval

import "github.com/zdavid4525/checkers-ai/board"

// Weights holds the additive term weights of the combined evaluator, in
// hundredths of a man. The defaults are the classic man/king/center/edge
// weighting: a king is worth two men, a centralized piece gains half a
// man, an edge piece gains a token amount for its immunity from capture.
type Weights struct {
	Man    int16 `yaml:"man"`
	King   int16 `yaml:"king"`
	Center int16 `yaml:"center"`
	Edge   int16 `yaml:"edge"`
}

// DefaultWeights returns the default term weights.
func DefaultWeights() Weights {
	return Weights{Man: 100, King: 200, Center: 50, Edge: 15}
}

// MaterialEvaluator scores weighted material only: men and kings of the
// perspective player count positive, the opponent's negative.
type MaterialEvaluator struct {
	ManValue  int16
	KingValue int16
}

// NewMaterialEvaluator creates a MaterialEvaluator with the default
// man/king values.
func NewMaterialEvaluator() *MaterialEvaluator {
	w := DefaultWeights()
	return &MaterialEvaluator{ManValue: w.Man, KingValue: w.King}
}

func (e *MaterialEvaluator) Score(pos board.Position, perspective board.Player) int16 {
	var score int16
	for r := 0; r < board.Dim; r++ {
		for c := 0; c < board.Dim; c++ {
			sq := pos.Get(r, c)
			owner, ok := sq.Owner()
			if !ok {
				continue
			}
			v := e.ManValue
			if sq.King() {
				v = e.KingValue
			}
			if owner == perspective {
				score += v
			} else {
				score -= v
			}
		}
	}
	return score
}

// CombinedEvaluator adds positional terms to weighted material: control of
// the extended center and occupation of the capture-proof edge files. All
// terms are symmetric under mirroring, so the symmetry contract of the
// Evaluator interface holds.
type CombinedEvaluator struct {
	weights Weights
}

// NewCombinedEvaluator creates a CombinedEvaluator.
func NewCombinedEvaluator(w Weights) *CombinedEvaluator {
	return &CombinedEvaluator{weights: w}
}

// center reports whether (row, col) belongs to the extended center block:
// the middle four columns of rows 2-5 union the middle four rows of
// columns 2-5.
func center(row, col int) bool {
	return (row >= 2 && row <= 5 && col >= 3 && col <= 4) ||
		(col >= 2 && col <= 5 && row >= 3 && row <= 4)
}

func edge(col int) bool {
	return col == 0 || col == board.Dim-1
}

func (e *CombinedEvaluator) Score(pos board.Position, perspective board.Player) int16 {
	var score int16
	for r := 0; r < board.Dim; r++ {
		for c := 0; c < board.Dim; c++ {
			sq := pos.Get(r, c)
			owner, ok := sq.Owner()
			if !ok {
				continue
			}
			v := e.weights.Man
			if sq.King() {
				v = e.weights.King
			}
			if center(r, c) {
				v += e.weights.Center
			}
			if edge(c) {
				v += e.weights.Edge
			}
			if owner == perspective {
				score += v
			} else {
				score -= v
			}
		}
	}
	return score
}
