package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"mancala/engine"
	"mancala/experiments"
	"mancala/game"
	"mancala/meta"
	"mancala/player"
	"mancala/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const usage = `usage: mancala <command> [flags]

commands:
  play        play one game, players from the config (default: human vs abprune)
  experiment  run the configured match-ups and store the records
  throughput  measure search cost per depth on the opening board
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch os.Args[1] {
	case "play":
		err = runPlay(ctx, os.Args[2:])
	case "experiment":
		err = runExperiment(ctx, os.Args[2:])
	case "throughput":
		err = runThroughput(os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("mancala failed")
	}
}

// loadConfig parses the shared flags and sets up logging.
func loadConfig(fs *flag.FlagSet, args []string) (meta.Config, error) {
	path := fs.String("config", "", "YAML config file")
	if err := fs.Parse(args); err != nil {
		return meta.Config{}, err
	}

	cfg := meta.Default()
	if *path != "" {
		var err error
		if cfg, err = meta.Load(*path); err != nil {
			return meta.Config{}, err
		}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		return meta.Config{}, fmt.Errorf("%w: log_level: %v", meta.ErrInvalidConfig, err)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	return cfg, nil
}

func runPlay(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	second := fs.Bool("second", false, "let player 2 start")
	cfg, err := loadConfig(fs, args)
	if err != nil {
		return err
	}

	players := make([]player.Player, 2)
	for i, pc := range cfg.Players {
		if players[i], err = player.FromConfig(game.Seat(i+1), pc); err != nil {
			return err
		}
	}

	evaluate, err := searcher.EvaluatorFromConfig(cfg)
	if err != nil {
		return err
	}
	selector := player.NewSelector(
		player.WithSearcher(searcher.NewSearcher(searcher.WithEvaluator(evaluate))),
		player.WithSeed(cfg.Seed),
		player.WithCustomPly(cfg.CustomPly),
		player.WithInput(player.NewConsoleInput(os.Stdin, os.Stdout)),
	)

	starting := game.One
	if *second {
		starting = game.Two
	}
	board := game.NewMancalaBoard(cfg.Cups, cfg.Beads)
	e, err := engine.LocalEngine(players, selector, board, starting,
		engine.WithMaxTurns(cfg.MaxTurns),
		engine.WithObserver(func(u engine.Update) {
			fmt.Printf("Player %d played cup %d\n%s", u.Seat, u.Move, u.Board)
			if u.Again {
				fmt.Printf("Player %d goes again\n", u.Seat)
			}
		}),
	)
	if err != nil {
		return err
	}

	winner, gameMetric, _, err := e.Run(ctx)
	if err != nil {
		return err
	}
	if winner == game.NoSeat {
		fmt.Printf("Draw, %d to %d\n", gameMetric.Banked[0], gameMetric.Banked[1])
	} else {
		fmt.Printf("Player %d wins, %d to %d\n", winner, gameMetric.Banked[0], gameMetric.Banked[1])
	}
	return nil
}

func runExperiment(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("experiment", flag.ExitOnError)
	cfg, err := loadConfig(fs, args)
	if err != nil {
		return err
	}

	dir, results, err := experiments.Run(ctx, cfg)
	if err != nil {
		return err
	}
	for _, r := range results {
		fmt.Printf("agent %d vs agent %d: %d-%d, %d draws\n", r.Agent1, r.Agent2, r.Wins1, r.Wins2, r.Draws)
	}
	fmt.Printf("records stored in %s\n", dir)
	return nil
}

func runThroughput(args []string) error {
	fs := flag.NewFlagSet("throughput", flag.ExitOnError)
	depth := fs.Int("depth", meta.DefaultCustomPly, "deepest search to measure")
	cfg, err := loadConfig(fs, args)
	if err != nil {
		return err
	}

	dir, err := experiments.RunThroughputExperiment(cfg, *depth)
	if err != nil {
		return err
	}
	fmt.Printf("records stored in %s\n", dir)
	return nil
}
