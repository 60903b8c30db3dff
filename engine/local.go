package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mancala/experiments/metrics"
	"mancala/game"
	"mancala/meta"
	"mancala/player"

	"github.com/rs/zerolog/log"
)

var ErrNoMove = errors.New("player cannot move on a board that is not over")

// Update is what observers see after every move.
type Update struct {
	Step  int
	Seat  game.Seat
	Move  game.Move
	Again bool
	Board game.Board // Snapshot taken after the move
}

type Option func(e *Engine)

type Engine struct {
	Board    game.Board
	Players  [2]player.Player
	Selector *player.Selector
	ToMove   game.Seat
	maxTurns int
	observe  func(Update)
}

var _ Runner = (*Engine)(nil)

func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func WithObserver(observe func(Update)) Option {
	return func(e *Engine) {
		e.observe = observe
	}
}

// LocalEngine seats players[0] at player 1 and players[1] at player 2.
func LocalEngine(players []player.Player, selector *player.Selector, board game.Board, starting game.Seat, options ...Option) (*Engine, error) {
	if len(players) != 2 {
		return nil, fmt.Errorf("need two players, got %d", len(players))
	}
	if players[0].Seat != game.One || players[1].Seat != game.Two {
		return nil, fmt.Errorf("players must sit at seats 1 and 2, got %d and %d", players[0].Seat, players[1].Seat)
	}
	if !starting.Valid() {
		return nil, fmt.Errorf("invalid starting seat %d", starting)
	}
	if selector == nil || board == nil {
		return nil, errors.New("selector and board are required")
	}

	e := &Engine{
		Board:    board,
		Players:  [2]player.Player{players[0], players[1]},
		Selector: selector,
		ToMove:   starting,
		maxTurns: meta.MaxTurns,
	}
	for _, option := range options {
		option(e)
	}
	return e, nil
}

// Run plays the game on e.Board. A move that grants an extra turn keeps the
// same player on the move. The winner is game.NoSeat on a draw or when the
// turn limit is hit.
func (e *Engine) Run(ctx context.Context) (game.Seat, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: int(e.ToMove),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("player %d is starting", e.ToMove)

	step := 1
	for !e.Board.GameOver() && step <= e.maxTurns {
		if err := ctx.Err(); err != nil {
			return game.NoSeat, e.finish(gameMetric, step-1), moveMetrics, err
		}

		p := e.Players[e.ToMove-1]
		move, searchMetric, err := e.Selector.Decide(p, e.Board)
		if err != nil {
			return game.NoSeat, e.finish(gameMetric, step-1), moveMetrics, fmt.Errorf("step %d: %w", step, err)
		}
		if move == game.NoMove {
			return game.NoSeat, e.finish(gameMetric, step-1), moveMetrics, fmt.Errorf("step %d, player %d: %w", step, p.Seat, ErrNoMove)
		}
		if !e.Board.LegalMove(p.Seat, move) {
			return game.NoSeat, e.finish(gameMetric, step-1), moveMetrics, fmt.Errorf("step %d: player %d chose illegal move %d", step, p.Seat, move)
		}

		again := e.Board.MakeMove(p.Seat, move)
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       int(p.Seat),
			Move:         int(move),
			ExtraTurn:    again,
			SearchMetric: searchMetric,
		})
		if e.observe != nil {
			e.observe(Update{Step: step, Seat: p.Seat, Move: move, Again: again, Board: e.Board.Copy()})
		}

		if again {
			log.Debug().Msgf("player %d goes again", p.Seat)
		} else {
			e.ToMove = e.ToMove.Opponent()
		}
		step++
	}

	gameMetric = e.finish(gameMetric, step-1)
	winner := e.winner()
	if e.Board.GameOver() {
		log.Info().Msgf("game over after %d moves, winner: %d", gameMetric.TotalMoves, winner)
	} else {
		log.Warn().Msgf("stopped after %d moves with no winner", gameMetric.TotalMoves)
	}
	return winner, gameMetric, moveMetrics, nil
}

func (e *Engine) winner() game.Seat {
	for _, seat := range []game.Seat{game.One, game.Two} {
		if e.Board.HasWon(seat) {
			return seat
		}
	}
	return game.NoSeat
}

func (e *Engine) finish(m metrics.GameMetric, moves int) metrics.GameMetric {
	m.EndTime = time.Now()
	m.Duration = m.EndTime.Sub(m.StartTime)
	m.TotalMoves = moves
	m.Winner = int(e.winner())
	if f, ok := e.Board.(game.Features); ok {
		m.Banked = [2]int{f.Banked(game.One), f.Banked(game.Two)}
	}
	return m
}
