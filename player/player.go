package player

import (
	"fmt"

	"mancala/game"
	"mancala/meta"
)

// Player describes who sits at a seat and how it plays. It is a plain value.
type Player struct {
	Seat     game.Seat
	Strategy Strategy
	Ply      int // Search depth for Minimax and ABPrune
}

// NewPlayer creates a Player, checking the seat and ply.
func NewPlayer(seat game.Seat, strategy Strategy, ply int) (Player, error) {
	if !seat.Valid() {
		return Player{}, fmt.Errorf("invalid seat %d", seat)
	}
	if ply < 0 {
		return Player{}, fmt.Errorf("negative ply %d", ply)
	}
	if _, ok := strategyNames[strategy]; !ok {
		return Player{}, fmt.Errorf("%w: %s", ErrUnknownStrategy, strategy)
	}
	return Player{Seat: seat, Strategy: strategy, Ply: ply}, nil
}

// FromConfig builds the player configured for seat.
func FromConfig(seat game.Seat, cfg meta.PlayerConfig) (Player, error) {
	strategy, err := ParseStrategy(cfg.Strategy)
	if err != nil {
		return Player{}, fmt.Errorf("player %d: %w", seat, err)
	}
	return NewPlayer(seat, strategy, cfg.Ply)
}

// Opponent is the same kind of player in the other seat.
func (p Player) Opponent() Player {
	return Player{Seat: p.Seat.Opponent(), Strategy: p.Strategy, Ply: p.Ply}
}

func (p Player) String() string {
	return fmt.Sprintf("%d", p.Seat)
}
