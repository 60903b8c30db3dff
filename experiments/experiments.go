package experiments

import (
	"context"
	"fmt"

	"mancala/engine"
	"mancala/experiments/metrics"
	"mancala/game"
	"mancala/meta"
	"mancala/player"
	"mancala/searcher"

	"github.com/rs/zerolog/log"
)

// Result tallies one match-up. Agent1 always sits at player 1, only the
// starting seat alternates.
type Result struct {
	Agent1, Agent2 int
	Wins1, Wins2   int
	Draws          int
}

// Run plays every configured match-up cfg.Experiment.Games times, alternating
// the starting seat, and stores the records under a fresh directory that it
// returns.
func Run(ctx context.Context, cfg meta.Config) (string, []Result, error) {
	if err := cfg.Validate(); err != nil {
		return "", nil, err
	}
	exp := cfg.Experiment
	if len(exp.MatchUps) == 0 {
		return "", nil, fmt.Errorf("%w: experiment has no match-ups", meta.ErrInvalidConfig)
	}
	evaluate, err := searcher.EvaluatorFromConfig(cfg)
	if err != nil {
		return "", nil, err
	}

	configs := make([]metrics.AgentConfig, 0, len(exp.Agents))
	for _, a := range exp.Agents {
		if _, err := seatAgent(game.One, a); err != nil {
			return "", nil, err
		}
		configs = append(configs, metrics.AgentConfig{ID: a.ID, Strategy: a.Strategy, Ply: a.Ply, Evaluator: cfg.Evaluator})
	}

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	results := make([]Result, 0, len(exp.MatchUps))

	log.Info().Msgf("starting %s experiment...", exp.Name)

	for mi, matchUp := range exp.MatchUps {
		agent1, agent2, seated, err := seatMatchUp(exp, matchUp)
		if err != nil {
			return "", nil, fmt.Errorf("matchup %d: %w", mi+1, err)
		}
		result := Result{Agent1: agent1.ID, Agent2: agent2.ID}

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(exp.MatchUps), agent1, agent2)

		for i := 0; i < exp.Games; i++ {
			starting := game.One
			if i%2 == 1 {
				starting = game.Two
			}
			count++

			winner, gameMetric, moveMetrics, err := runGame(ctx, cfg, evaluate, seated, starting, cfg.Seed+uint64(count))
			if err != nil {
				return "", nil, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			switch winner {
			case game.One:
				result.Wins1++
			case game.Two:
				result.Wins2++
			default:
				result.Draws++
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     agent1.ID,
				Agent2:     agent2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %d", mi+1, len(exp.MatchUps), i+1, winner)
		}
		results = append(results, result)
		log.Info().Msgf("completed matchup %d of %d: %+v", mi+1, len(exp.MatchUps), result)
	}

	log.Info().Msgf("completed %s experiment", exp.Name)

	dir, err := store(exp.OutDir, exp.Name, configs, gameRecords, moveRecords)
	if err != nil {
		return "", nil, err
	}
	return dir, results, nil
}

// seatAgent builds the player for an agent, refusing humans.
// seatMatchUp looks up both agents of a match-up and seats the first as
// player 1.
func seatMatchUp(exp meta.ExperimentConfig, matchUp []int) (meta.AgentConfig, meta.AgentConfig, []player.Player, error) {
	if len(matchUp) != 2 {
		return meta.AgentConfig{}, meta.AgentConfig{}, nil, fmt.Errorf("%w: match-up needs 2 agents, got %d", meta.ErrInvalidConfig, len(matchUp))
	}
	agents := make([]meta.AgentConfig, 2)
	players := make([]player.Player, 2)
	for i, id := range matchUp {
		a, ok := exp.Agent(id)
		if !ok {
			return meta.AgentConfig{}, meta.AgentConfig{}, nil, fmt.Errorf("%w: unknown agent %d", meta.ErrInvalidConfig, id)
		}
		p, err := seatAgent(game.Seat(i+1), a)
		if err != nil {
			return meta.AgentConfig{}, meta.AgentConfig{}, nil, err
		}
		agents[i] = a
		players[i] = p
	}
	return agents[0], agents[1], players, nil
}

func seatAgent(seat game.Seat, a meta.AgentConfig) (player.Player, error) {
	p, err := player.FromConfig(seat, a.PlayerConfig)
	if err != nil {
		return player.Player{}, fmt.Errorf("agent %d: %w", a.ID, err)
	}
	if p.Strategy == player.Human {
		return player.Player{}, fmt.Errorf("%w: agent %d is human, experiments run unattended", meta.ErrInvalidConfig, a.ID)
	}
	return p, nil
}

func store(root, name string, configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// runGame plays a single game between two agents on a fresh board
func runGame(ctx context.Context, cfg meta.Config, evaluate searcher.Evaluator, players []player.Player, starting game.Seat, seed uint64) (game.Seat, metrics.GameMetric, []metrics.MoveMetric, error) {
	s := searcher.NewSearcher(
		searcher.WithEvaluator(evaluate),
		searcher.WithMetrics(metrics.NewCollector()),
	)
	selector := player.NewSelector(
		player.WithSearcher(s),
		player.WithSeed(seed),
		player.WithCustomPly(cfg.CustomPly),
	)
	board := game.NewMancalaBoard(cfg.Cups, cfg.Beads)

	e, err := engine.LocalEngine(players, selector, board, starting, engine.WithMaxTurns(cfg.MaxTurns))
	if err != nil {
		return game.NoSeat, metrics.GameMetric{}, nil, err
	}
	return e.Run(ctx)
}
