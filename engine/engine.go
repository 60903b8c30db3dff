package engine

import (
	"context"

	"mancala/experiments/metrics"
	"mancala/game"
)

type Runner interface {
	// Run plays a game till it is over or a max number of turns is reached
	Run(ctx context.Context) (winner game.Seat, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
