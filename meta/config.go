package meta

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type PlayerConfig struct {
	Strategy string `yaml:"strategy"`
	Ply      int    `yaml:"ply"`
}

type AgentConfig struct {
	ID           int `yaml:"id"`
	PlayerConfig `yaml:",inline"`
}

type BaselineConfig struct {
	Win     float64 `yaml:"win"`
	Loss    float64 `yaml:"loss"`
	Neutral float64 `yaml:"neutral"`
}

type HeuristicConfig struct {
	Win            float64 `yaml:"win"`
	Loss           float64 `yaml:"loss"`
	ExtraTurnBonus float64 `yaml:"extra_turn_bonus"`
}

type ExperimentConfig struct {
	Name   string        `yaml:"name"`
	Games  int           `yaml:"games"` // Per match-up
	OutDir string        `yaml:"out_dir"`
	Agents []AgentConfig `yaml:"agents"`
	// MatchUps pairs agent IDs, first one seated at player 1
	MatchUps [][]int `yaml:"match_ups"`
}

type Config struct {
	Cups       int              `yaml:"cups"`
	Beads      int              `yaml:"beads"`
	Evaluator  string           `yaml:"evaluator"`
	Baseline   BaselineConfig   `yaml:"baseline"`
	Heuristic  HeuristicConfig  `yaml:"heuristic"`
	CustomPly  int              `yaml:"custom_ply"`
	Seed       uint64           `yaml:"seed"`
	MaxTurns   int              `yaml:"max_turns"`
	LogLevel   string           `yaml:"log_level"`
	Players    []PlayerConfig   `yaml:"players"`
	Experiment ExperimentConfig `yaml:"experiment"`
}

// Default is the configuration used when no file is given: a human against
// a 5-ply alpha-beta player on a standard board.
func Default() Config {
	return Config{
		Cups:      DefaultCups,
		Beads:     DefaultBeads,
		Evaluator: "heuristic",
		Baseline: BaselineConfig{
			Win:     BaselineWin,
			Loss:    BaselineLoss,
			Neutral: BaselineNeutral,
		},
		Heuristic: HeuristicConfig{
			Win:            HeuristicWin,
			Loss:           HeuristicLoss,
			ExtraTurnBonus: HeuristicExtraTurn,
		},
		CustomPly: DefaultCustomPly,
		Seed:      DefaultSeed,
		MaxTurns:  MaxTurns,
		LogLevel:  "info",
		Players: []PlayerConfig{
			{Strategy: "human"},
			{Strategy: "abprune", Ply: 5},
		},
		Experiment: ExperimentConfig{
			Name:   "tournament",
			Games:  10,
			OutDir: "experiments",
		},
	}
}

// Load reads a YAML file on top of Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks everything that can be checked without resolving strategy
// and evaluator names, which belong to the packages that implement them.
func (c Config) Validate() error {
	if c.Cups <= 0 {
		return fmt.Errorf("%w: cups must be positive, got %d", ErrInvalidConfig, c.Cups)
	}
	if c.Beads <= 0 {
		return fmt.Errorf("%w: beads must be positive, got %d", ErrInvalidConfig, c.Beads)
	}
	if c.CustomPly <= 0 {
		return fmt.Errorf("%w: custom_ply must be positive, got %d", ErrInvalidConfig, c.CustomPly)
	}
	if c.MaxTurns <= 0 {
		return fmt.Errorf("%w: max_turns must be positive, got %d", ErrInvalidConfig, c.MaxTurns)
	}
	if len(c.Players) != 2 {
		return fmt.Errorf("%w: need exactly 2 players, got %d", ErrInvalidConfig, len(c.Players))
	}
	for i, p := range c.Players {
		if p.Ply < 0 {
			return fmt.Errorf("%w: player %d has negative ply %d", ErrInvalidConfig, i+1, p.Ply)
		}
	}
	return c.Experiment.validate()
}

func (e ExperimentConfig) validate() error {
	if len(e.Agents) == 0 && len(e.MatchUps) == 0 {
		return nil
	}
	if e.Games <= 0 {
		return fmt.Errorf("%w: experiment games must be positive, got %d", ErrInvalidConfig, e.Games)
	}

	ids := make(map[int]bool, len(e.Agents))
	for _, a := range e.Agents {
		if ids[a.ID] {
			return fmt.Errorf("%w: duplicate agent id %d", ErrInvalidConfig, a.ID)
		}
		if a.Ply < 0 {
			return fmt.Errorf("%w: agent %d has negative ply %d", ErrInvalidConfig, a.ID, a.Ply)
		}
		ids[a.ID] = true
	}
	for i, m := range e.MatchUps {
		if len(m) != 2 {
			return fmt.Errorf("%w: match-up %d needs 2 agents, got %d", ErrInvalidConfig, i+1, len(m))
		}
		for _, id := range m {
			if !ids[id] {
				return fmt.Errorf("%w: match-up %d references unknown agent %d", ErrInvalidConfig, i+1, id)
			}
		}
	}
	return nil
}

// Agent returns the agent with the given ID.
func (e ExperimentConfig) Agent(id int) (AgentConfig, bool) {
	for _, a := range e.Agents {
		if a.ID == id {
			return a, true
		}
	}
	return AgentConfig{}, false
}
