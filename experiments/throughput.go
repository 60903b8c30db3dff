package experiments

import (
	"fmt"

	"mancala/experiments/metrics"
	"mancala/game"
	"mancala/meta"
	"mancala/player"
	"mancala/searcher"

	"github.com/rs/zerolog/log"
)

// MeasureThroughput searches the opening board at every depth up to maxDepth
// with minimax and with alpha-beta, and reports what each search cost. This
// is how a depth bound such as the Custom strategy's is sized.
func MeasureThroughput(cfg meta.Config, maxDepth int) ([]metrics.SearchMetric, error) {
	evaluate, err := searcher.EvaluatorFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	collector := metrics.NewCollector()
	s := searcher.NewSearcher(searcher.WithEvaluator(evaluate), searcher.WithMetrics(collector))
	board := game.NewMancalaBoard(cfg.Cups, cfg.Beads)

	results := []metrics.SearchMetric{}
	for depth := 1; depth <= maxDepth; depth++ {
		for _, strategy := range []player.Strategy{player.Minimax, player.ABPrune} {
			collector.Start(strategy.String(), depth)
			var score searcher.Score
			if strategy == player.Minimax {
				score, _ = s.BestMove(board, game.One, depth)
			} else {
				score, _ = s.BestMoveAB(board, game.One, depth)
			}
			metric := collector.Complete(score)
			results = append(results, metric)

			log.Info().Msgf("%s depth %d: %d nodes, %d leaves, %d prunes in %s", strategy, depth, metric.Nodes, metric.Leaves, metric.Prunes, metric.Duration)
		}
	}
	return results, nil
}

// RunThroughputExperiment stores MeasureThroughput's results as move records
// of a single pseudo game.
func RunThroughputExperiment(cfg meta.Config, maxDepth int) (string, error) {
	results, err := MeasureThroughput(cfg, maxDepth)
	if err != nil {
		return "", err
	}

	records := make([]metrics.MoveRecord, len(results))
	for i, r := range results {
		records[i] = metrics.MoveRecord{
			MoveMetric: metrics.MoveMetric{Step: i + 1, Player: int(game.One), SearchMetric: r},
		}
	}

	writer, err := metrics.NewWriter(cfg.Experiment.OutDir, "throughput")
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteMoveRecords(records); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")
	return writer.Dir(), nil
}
