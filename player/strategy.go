package player

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownStrategy = errors.New("unknown player strategy")

// Strategy is how a player picks its moves.
type Strategy int

const (
	Human Strategy = iota
	Random
	Minimax
	ABPrune
	// Custom is alpha-beta with a fixed depth bound sized for a time budget
	Custom
)

var strategyNames = map[Strategy]string{
	Human:   "human",
	Random:  "random",
	Minimax: "minimax",
	ABPrune: "abprune",
	Custom:  "custom",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

// ParseStrategy resolves a configured strategy name, case-insensitively.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}
