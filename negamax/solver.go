// Package negamax implements the search engine: depth-limited minimax in
// negamax form with alpha-beta pruning, iterative deepening, and an
// optional transposition table.
package negamax

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/zdavid4525/checkers-ai/board"
	"github.com/zdavid4525/checkers-ai/eval"
	"github.com/zdavid4525/checkers-ai/move"
	"github.com/zdavid4525/checkers-ai/movegen"
	"github.com/zdavid4525/checkers-ai/zobrist"
)

// thanks Wikipedia:
/*
function negamax(node, depth, α, β, color) is
    if depth = 0 or node is a terminal node then
        return color × the heuristic value of node

    childNodes := generateMoves(node)
    childNodes := orderMoves(childNodes)
    value := −∞
    foreach child in childNodes do
        value := max(value, −negamax(child, depth − 1, −β, −α, −color))
        α := max(α, value)
        if α ≥ β then
            break (* cut-off *)
    return value
(* Initial call for Player A's root node *)
negamax(rootNode, depth, −∞, +∞, 1)
**/

const HugeNumber = int16(32767)

// WinValue is the score of a won game. It dominates any combination of
// static evaluation terms, so the search always prefers an actual win
// over a favorable-looking heuristic continuation.
const WinValue = int16(30000)

// MaxPlies is the deepest supported search; the transposition table
// stores the searched depth in six bits.
const MaxPlies = 63

// DefaultTTFraction is the fraction of system memory given to the
// transposition table.
const DefaultTTFraction = 0.05

// promotionEstimate is the ordering bonus for a move that crowns a king.
const promotionEstimate = 8

// captureEstimate is the per-captured-piece ordering bonus.
const captureEstimate = 64

// PVLine holds the principal variation: the engine's best move followed
// by the line of best play after it.
// Credit: MIT-licensed https://github.com/algerbrex/blunder/blob/main/engine/search.go
type PVLine struct {
	Moves []*move.Move
	score int16
}

// Clear the principal variation line.
func (pvLine *PVLine) Clear() {
	pvLine.Moves = nil
}

// Update the principal variation line with a new best move, and a new
// line of best play after the best move.
func (pvLine *PVLine) Update(m *move.Move, newPVLine PVLine, score int16) {
	pvLine.Clear()
	pvLine.Moves = append(pvLine.Moves, m)
	pvLine.Moves = append(pvLine.Moves, newPVLine.Moves...)
	pvLine.score = score
}

// GetPVMove returns the best move from the principal variation line.
func (pvLine *PVLine) GetPVMove() *move.Move {
	return pvLine.Moves[0]
}

func (pvLine PVLine) String() string {
	var s string
	s = fmt.Sprintf("PV; val %d\n", pvLine.score)
	for i := 0; i < len(pvLine.Moves); i++ {
		s += fmt.Sprintf("%d: %s\n", i+1, pvLine.Moves[i].ShortDescription())
	}
	return s
}

// NLBString is like String but with no line breaks.
func (pvLine PVLine) NLBString() string {
	var s string
	s = fmt.Sprintf("PV; val %d; ", pvLine.score)
	for i := 0; i < len(pvLine.Moves); i++ {
		s += fmt.Sprintf("%d: %s; ", i+1, pvLine.Moves[i].ShortDescription())
	}
	return s
}

// Solver is the checkers game-tree solver. Zero value is not usable; call
// Init. A Solver is not safe for concurrent use, but the search itself
// needs no locking: recursion is single-threaded and every frame owns its
// own position value and alpha/beta window.
type Solver struct {
	gen       movegen.MoveGenerator
	evaluator eval.Evaluator
	zobrist   *zobrist.Zobrist

	rootPos      board.Position
	initialMoves []*move.Move

	iterativeDeepeningOptim bool
	transpositionTableOptim bool
	ttable                  *TranspositionTable
	ttableFraction          float64

	principalVariation PVLine
	bestPVValue        int16

	currentIDDepth int
	requestedPlies int
	nodes          atomic.Uint64

	logStream io.Writer
}

func max(x, y int16) int16 {
	if x < y {
		return y
	}
	return x
}

func min(x, y int16) int16 {
	if x < y {
		return x
	}
	return y
}

// Init initializes the solver.
func (s *Solver) Init(gen movegen.MoveGenerator, evaluator eval.Evaluator) error {
	if gen == nil || evaluator == nil {
		return errors.New("solver needs a move generator and an evaluator")
	}
	s.gen = gen
	s.evaluator = evaluator
	s.zobrist = &zobrist.Zobrist{}
	s.zobrist.Initialize()
	s.iterativeDeepeningOptim = true
	s.transpositionTableOptim = true
	s.ttable = &TranspositionTable{}
	s.ttableFraction = DefaultTTFraction
	return nil
}

func (s *Solver) SetIterativeDeepening(id bool) {
	s.iterativeDeepeningOptim = id
}

func (s *Solver) SetTranspositionTableOptim(tt bool) {
	s.transpositionTableOptim = tt
}

func (s *Solver) SetTranspositionTableFraction(f float64) {
	s.ttableFraction = f
}

// SetLogStream sets a writer that receives a YAML-ish dump of the search
// tree. Only useful for debugging at very low plies.
func (s *Solver) SetLogStream(w io.Writer) {
	s.logStream = w
}

// generateMoves returns the moves for the side to move at this node. At
// the root of an iteration it returns the persistent root move list so
// the move ordering can carry over between deepenings; everywhere else it
// copies the generator's plays, which the generator owns and reuses.
func (s *Solver) generateMoves(pos board.Position, depth int) []*move.Move {
	if depth == s.currentIDDepth {
		return s.initialMoves
	}
	plays := s.gen.GenAll(pos)
	genPlays := make([]*move.Move, len(plays))
	for idx := range plays {
		genPlays[idx] = &move.Move{}
		genPlays[idx].CopyFrom(plays[idx])
	}
	return genPlays
}

// assignEstimates gives each move a cheap static ordering value: captures
// first (more captures first), then promotions. The sort is stable, so
// moves with equal estimates keep their generation order and the search
// stays deterministic.
func (s *Solver) assignEstimates(pos board.Position, moves []*move.Move) {
	pl := pos.OnTurn()
	for _, m := range moves {
		v := int16(m.NumCaptured()) * captureEstimate
		from := m.From()
		if !pos.Get(int(from.Row), int(from.Col)).King() &&
			int(m.To().Row) == board.BackRank(pl) {
			v += promotionEstimate
		}
		m.SetEstimatedValue(v)
	}
	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].EstimatedValue() > moves[j].EstimatedValue()
	})
}

func (s *Solver) negamax(ctx context.Context, nodeKey uint64, pos board.Position,
	depth int, α, β int16, pv *PVLine) (int16, error) {
	if ctx.Err() != nil {
		return 0, ctx.Err()
	}
	alphaOrig := α

	atRoot := depth == s.currentIDDepth
	if s.transpositionTableOptim && !atRoot {
		ttEntry := s.ttable.lookup(nodeKey)
		if ttEntry.valid() && ttEntry.depth() >= uint8(depth) {
			score := ttEntry.score
			switch ttEntry.flag() {
			case TTExact:
				return score, nil
			case TTLower:
				α = max(α, score)
			case TTUpper:
				β = min(β, score)
			}
			if α >= β {
				return score, nil
			}
		}
	}

	if depth == 0 {
		if !movegen.HasLegalMoves(pos) {
			// The side to move has no moves and loses.
			return -WinValue, nil
		}
		return s.evaluator.Score(pos, pos.OnTurn()), nil
	}

	children := s.generateMoves(pos, depth)
	if len(children) == 0 {
		return -WinValue, nil
	}
	if !atRoot {
		s.assignEstimates(pos, children)
	}

	indent := 2 * (s.currentIDDepth - depth)
	if s.logStream != nil {
		fmt.Fprintf(s.logStream, "  %vplays:\n", strings.Repeat(" ", indent))
	}
	childPV := PVLine{}
	bestValue := -HugeNumber
	for _, child := range children {
		if s.logStream != nil {
			fmt.Fprintf(s.logStream, "  %v- play: %v\n", strings.Repeat(" ", indent), child.ShortDescription())
		}
		childPos := movegen.Apply(pos, child)
		s.nodes.Add(1)
		childKey := s.zobrist.Hash(childPos)
		value, err := s.negamax(ctx, childKey, childPos, depth-1, -β, -α, &childPV)
		if err != nil {
			return value, err
		}
		if s.logStream != nil {
			fmt.Fprintf(s.logStream, "  %v  value: %v\n", strings.Repeat(" ", indent), -value)
		}
		// Strictly greater: on an exact tie the earlier move in visit
		// order stays the best, keeping the engine deterministic.
		if -value > bestValue {
			bestValue = -value
			pv.Update(child, childPV, bestValue)
		}
		if atRoot {
			child.SetEstimatedValue(-value)
		}
		α = max(α, bestValue)
		if s.logStream != nil {
			fmt.Fprintf(s.logStream, "  %v  α: %v\n", strings.Repeat(" ", indent), α)
			fmt.Fprintf(s.logStream, "  %v  β: %v\n", strings.Repeat(" ", indent), β)
		}
		if bestValue >= β {
			break // beta cut-off
		}
		childPV.Clear() // clear the child node's pv for the next child node
	}
	if s.transpositionTableOptim {
		var flag uint8
		switch {
		case bestValue <= alphaOrig:
			flag = TTUpper
		case bestValue >= β:
			flag = TTLower
		default:
			flag = TTExact
		}
		s.ttable.store(nodeKey, TableEntry{
			score:        bestValue,
			flagAndDepth: flag<<6 + uint8(depth),
		})
	}
	return bestValue, nil
}

// iterativelyDeepen drives the search from 1 ply up to the requested
// limit (or runs a single fixed-depth search if iterative deepening is
// off). If the context is cancelled mid-iteration, the result of the last
// fully completed depth stands.
func (s *Solver) iterativelyDeepen(ctx context.Context, plies int) error {
	rootKey := s.zobrist.Hash(s.rootPos)

	plays := s.gen.GenAll(s.rootPos)
	s.initialMoves = make([]*move.Move, len(plays))
	for idx := range plays {
		s.initialMoves[idx] = &move.Move{}
		s.initialMoves[idx].CopyFrom(plays[idx])
	}
	s.assignEstimates(s.rootPos, s.initialMoves)

	start := 1
	if !s.iterativeDeepeningOptim {
		start = plies
	}
	for p := start; p <= plies; p++ {
		log.Debug().Int("plies", p).Msg("deepening-iteratively")
		s.currentIDDepth = p
		if s.logStream != nil {
			fmt.Fprintf(s.logStream, "- ply: %d\n", p)
		}
		pv := PVLine{}
		val, err := s.negamax(ctx, rootKey, s.rootPos, p, -HugeNumber, HugeNumber, &pv)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				if p > start {
					log.Debug().Int("last-completed-ply", p-1).Msg("search-budget-exhausted")
					return nil
				}
			}
			return err
		}
		// Sort the top layer of moves by value for the next deepening.
		// The sort is stable so tied moves keep their order.
		sort.SliceStable(s.initialMoves, func(i, j int) bool {
			return s.initialMoves[i].EstimatedValue() > s.initialMoves[j].EstimatedValue()
		})
		s.principalVariation = pv
		s.bestPVValue = val
		log.Debug().Int16("val", val).Int("ply", p).Str("pv", pv.NLBString()).Msg("best-val")
	}
	return nil
}

// Solve searches pos to the given depth limit and returns the value of
// the position for the side to move along with the principal variation.
// On a terminal position (the side to move has no legal move) it reports
// a loss with an empty variation rather than failing.
func (s *Solver) Solve(ctx context.Context, pos board.Position, plies int) (int16, []*move.Move, error) {
	if plies < 1 {
		return 0, nil, errors.New("need at least 1 ply")
	}
	if plies > MaxPlies {
		log.Warn().Int("plies", plies).Int("max", MaxPlies).Msg("clamping-plies")
		plies = MaxPlies
	}
	if !movegen.HasLegalMoves(pos) {
		return -WinValue, nil, nil
	}
	log.Debug().Int("plies", plies).Msg("alphabeta-solve-config")
	s.rootPos = pos
	s.requestedPlies = plies
	s.principalVariation = PVLine{}
	s.bestPVValue = 0
	tstart := time.Now()
	if s.transpositionTableOptim {
		s.ttable.Reset(s.ttableFraction)
	}
	s.nodes.Store(0)

	g := &errgroup.Group{}
	done := make(chan bool)

	g.Go(func() error {
		ticker := time.NewTicker(1 * time.Second)
		defer ticker.Stop()
		var lastNodes uint64
		for {
			select {
			case <-done:
				return nil
			case <-ticker.C:
				nodes := s.nodes.Load()
				log.Debug().Uint64("nps", nodes-lastNodes).Msg("nodes-per-second")
				lastNodes = nodes
			}
		}
	})

	g.Go(func() error {
		err := s.iterativelyDeepen(ctx, plies)
		done <- true
		return err
	})

	err := g.Wait()

	log.Debug().
		Uint64("nodes", s.nodes.Load()).
		Uint64("ttable-created", s.ttable.created.Load()).
		Uint64("ttable-lookups", s.ttable.lookups.Load()).
		Uint64("ttable-hits", s.ttable.hits.Load()).
		Float64("time-elapsed-sec", time.Since(tstart).Seconds()).
		Msg("solve-returning")

	return s.bestPVValue, s.principalVariation.Moves, err
}

// BestMove is the root search entry point for game play: it returns the
// best move for the side to move and its score. On a terminal position it
// returns a nil move and a losing score.
func (s *Solver) BestMove(ctx context.Context, pos board.Position, plies int) (*move.Move, int16, error) {
	val, seq, err := s.Solve(ctx, pos, plies)
	if err != nil {
		return nil, 0, err
	}
	if len(seq) == 0 {
		return nil, val, nil
	}
	return seq[0], val, nil
}
