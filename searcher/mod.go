package searcher

import (
	"math"

	"mancala/experiments/metrics"
	"mancala/game"
)

// Score is a backed-up utility, always from the root player's point of view.
type Score = float64

// Sentinels seed the search and bound the pruning window. No evaluator may
// return them.
var (
	MaxScore Score = math.Inf(1)
	MinScore Score = math.Inf(-1)
)

type Option func(s *Searcher)

// Searcher runs fixed-depth minimax and alpha-beta searches. It keeps no state
// between calls apart from the metrics collector, so it is not safe for
// concurrent use while a collector is attached.
type Searcher struct {
	evaluate Evaluator
	metrics  metrics.Collector
}

func WithEvaluator(evaluate Evaluator) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(s *Searcher) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

func NewSearcher(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		evaluate: NewBaseline(),
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Searcher) Evaluator() Evaluator {
	return s.evaluate
}

func (s *Searcher) Metrics() metrics.Collector {
	return s.metrics
}

// leaf scores board for the root player.
func (s *Searcher) leaf(board game.Board, root game.Seat) Score {
	s.metrics.AddLeaf()
	return s.evaluate.Evaluate(board, root)
}

// bestChild runs the root loop shared by both searches. score backs up the
// value of the board reached by one root move. Ties keep the earliest move.
//
// A depth of 0 does not compare moves at all: it returns the evaluation of
// the current board with the first legal move. Callers rely on this.
func (s *Searcher) bestChild(board game.Board, seat game.Seat, depth int, score func(next game.Board) Score) (Score, game.Move) {
	s.metrics.AddNode()

	moves := board.LegalMoves(seat)
	if len(moves) > 0 && depth <= 0 {
		return s.leaf(board, seat), moves[0]
	}
	if len(moves) == 0 || board.GameOver() {
		return MinScore, game.NoMove
	}

	best := MinScore
	bestMove := game.NoMove
	for _, move := range moves {
		next := board.Copy()
		next.MakeMove(seat, move)
		if v := score(next); v > best {
			best = v
			bestMove = move
		}
	}
	return best, bestMove
}
