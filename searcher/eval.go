package searcher

import (
	"errors"
	"fmt"

	"mancala/game"
	"mancala/meta"

	"github.com/rs/zerolog/log"
)

var ErrUnknownEvaluator = errors.New("unknown evaluator")

// Evaluator scores a board for seat. It must return a finite value for any
// board the search can reach, finished or not.
type Evaluator interface {
	Evaluate(board game.Board, seat game.Seat) Score
}

type EvaluatorFunc func(board game.Board, seat game.Seat) Score

func (f EvaluatorFunc) Evaluate(board game.Board, seat game.Seat) Score {
	return f(board, seat)
}

const (
	BaselineName  = "baseline"
	HeuristicName = "heuristic"
)

// NewEvaluator resolves a configured evaluator name.
func NewEvaluator(name string) (Evaluator, error) {
	switch name {
	case BaselineName, "":
		return NewBaseline(), nil
	case HeuristicName:
		return NewHeuristic(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEvaluator, name)
	}
}

// EvaluatorFromConfig builds the configured evaluator with the configured
// constants.
func EvaluatorFromConfig(cfg meta.Config) (Evaluator, error) {
	switch cfg.Evaluator {
	case BaselineName, "":
		return Baseline{
			Win:     cfg.Baseline.Win,
			Loss:    cfg.Baseline.Loss,
			Neutral: cfg.Baseline.Neutral,
		}, nil
	case HeuristicName:
		h := Heuristic{
			Win:            cfg.Heuristic.Win,
			Loss:           cfg.Heuristic.Loss,
			ExtraTurnBonus: cfg.Heuristic.ExtraTurnBonus,
		}
		totalBeads := 2 * cfg.Cups * cfg.Beads
		if !h.Dominates(totalBeads, cfg.Cups) {
			lo, hi := h.Bounds(totalBeads, cfg.Cups)
			log.Warn().Msgf("heuristic win/loss values %v/%v do not dominate board values in [%v, %v]", h.Win, h.Loss, lo, hi)
		}
		return h, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEvaluator, cfg.Evaluator)
	}
}

// Baseline only tells wins from losses. Below the end of the game every
// board gets Neutral.
type Baseline struct {
	Win     Score
	Loss    Score
	Neutral Score
}

func NewBaseline() Baseline {
	return Baseline{Win: 100, Loss: 0, Neutral: 50}
}

func (e Baseline) Evaluate(board game.Board, seat game.Seat) Score {
	if board.HasWon(seat) {
		return e.Win
	} else if board.HasWon(seat.Opponent()) {
		return e.Loss
	}
	return e.Neutral
}

// Heuristic adds board features on top of the win/loss check:
//
//	own banked - opponent banked - beads left on opponent's side
//	+ ExtraTurnBonus if the last move lets the mover go again
//	+ number of own empty cups
//
// Win and Loss must lie outside the range of that sum (see Bounds).
type Heuristic struct {
	Win            Score
	Loss           Score
	ExtraTurnBonus Score
}

func NewHeuristic() Heuristic {
	return Heuristic{Win: 100, Loss: -100, ExtraTurnBonus: 10}
}

func (e Heuristic) Evaluate(board game.Board, seat game.Seat) Score {
	if board.HasWon(seat) {
		return e.Win
	} else if board.HasWon(seat.Opponent()) {
		return e.Loss
	}

	f, ok := board.(game.Features)
	if !ok {
		panic("board does not expose heuristic features")
	}

	opponent := seat.Opponent()
	utility := Score(f.Banked(seat) - f.Banked(opponent))
	for _, beads := range f.Cups(opponent) {
		utility -= Score(beads)
	}
	for _, beads := range f.Cups(seat) {
		if beads == 0 {
			utility++
		}
	}
	if f.GrantedExtraTurn() {
		utility += e.ExtraTurnBonus
	}
	return utility
}

// Bounds returns a range holding every non-terminal heuristic value on a
// board with totalBeads beads and cups cups per side.
func (e Heuristic) Bounds(totalBeads, cups int) (lo, hi Score) {
	bonus := e.ExtraTurnBonus
	if bonus < 0 {
		lo, bonus = bonus, 0
	}
	lo -= Score(totalBeads)
	hi = Score(totalBeads+cups) + bonus
	return lo, hi
}

// Dominates reports whether wins and losses outrank every non-terminal value
// on such a board.
func (e Heuristic) Dominates(totalBeads, cups int) bool {
	lo, hi := e.Bounds(totalBeads, cups)
	return e.Win > hi && e.Loss < lo
}
