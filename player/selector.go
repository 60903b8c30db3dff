package player

import (
	"errors"
	"fmt"
	"math"

	"mancala/experiments/metrics"
	"mancala/game"
	"mancala/meta"
	"mancala/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var ErrNoInput = errors.New("human player has no move input")

// MoveInput asks a human for a move. Reject is called with every move that
// turned out to be illegal before asking again.
type MoveInput interface {
	ReadMove(board game.Board, seat game.Seat) (game.Move, error)
	Reject(move game.Move)
}

type Option func(s *Selector)

// Selector turns a Player's strategy into a move.
type Selector struct {
	searcher  *searcher.Searcher
	rand      *rand.Rand
	input     MoveInput
	customPly int
}

func WithSearcher(searcher *searcher.Searcher) Option {
	return func(s *Selector) {
		if searcher != nil {
			s.searcher = searcher
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(s *Selector) {
		s.rand = rand.New(rand.NewSource(seed))
	}
}

func WithInput(input MoveInput) Option {
	return func(s *Selector) {
		if input != nil {
			s.input = input
		}
	}
}

// WithCustomPly sets the depth bound used by the Custom strategy.
func WithCustomPly(ply int) Option {
	return func(s *Selector) {
		if ply > 0 {
			s.customPly = ply
		}
	}
}

func NewSelector(options ...Option) *Selector {
	s := &Selector{ // Default values
		searcher:  searcher.NewSearcher(),
		rand:      rand.New(rand.NewSource(meta.DefaultSeed)),
		customPly: meta.DefaultCustomPly,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Selector) CustomPly() int {
	return s.customPly
}

// ChooseMove returns p's next move on board, or game.NoMove if p cannot move.
// The board is never modified.
func (s *Selector) ChooseMove(p Player, board game.Board) (game.Move, error) {
	move, _, err := s.Decide(p, board)
	return move, err
}

// Decide is ChooseMove that also reports how the move was found. Strategies
// that do not search report a NaN score.
func (s *Selector) Decide(p Player, board game.Board) (game.Move, metrics.SearchMetric, error) {
	collector := s.searcher.Metrics()
	score := searcher.Score(math.NaN())
	var move game.Move

	switch p.Strategy {
	case Human:
		collector.Start(p.Strategy.String(), 0)
		var err error
		move, err = s.ask(p, board)
		if err != nil {
			return game.NoMove, metrics.SearchMetric{}, err
		}
	case Random:
		collector.Start(p.Strategy.String(), 0)
		move = s.pick(p, board)
	case Minimax:
		collector.Start(p.Strategy.String(), p.Ply)
		score, move = s.searcher.BestMove(board, p.Seat, p.Ply)
	case ABPrune:
		collector.Start(p.Strategy.String(), p.Ply)
		score, move = s.searcher.BestMoveAB(board, p.Seat, p.Ply)
	case Custom:
		collector.Start(p.Strategy.String(), s.customPly)
		score, move = s.searcher.BestMoveAB(board, p.Seat, s.customPly)
	default:
		return game.NoMove, metrics.SearchMetric{}, fmt.Errorf("%w: %s", ErrUnknownStrategy, p.Strategy)
	}

	metric := collector.Complete(score)
	if math.IsNaN(score) {
		log.Info().Msgf("player %s (%s) chose move %d", p, p.Strategy, move)
	} else {
		log.Info().Msgf("player %s (%s) chose move %d with value %v", p, p.Strategy, move, score)
	}
	return move, metric, nil
}

// ask keeps asking until the human enters a legal move.
func (s *Selector) ask(p Player, board game.Board) (game.Move, error) {
	if len(board.LegalMoves(p.Seat)) == 0 {
		return game.NoMove, nil
	}
	if s.input == nil {
		return game.NoMove, ErrNoInput
	}

	for {
		move, err := s.input.ReadMove(board, p.Seat)
		if err != nil {
			return game.NoMove, fmt.Errorf("failed to read move for player %s: %w", p, err)
		}
		if board.LegalMove(p.Seat, move) {
			return move, nil
		}
		log.Debug().Msgf("player %s entered illegal move %d", p, move)
		s.input.Reject(move)
	}
}

func (s *Selector) pick(p Player, board game.Board) game.Move {
	moves := board.LegalMoves(p.Seat)
	if len(moves) == 0 {
		return game.NoMove
	}
	return moves[s.rand.Intn(len(moves))]
}
