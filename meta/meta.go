package meta

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default board is the classic 7 wide, 6 tall, four in a row.
const (
	Height = 6
	Width  = 7
	Run    = 4
)

const (
	KindRandom  = "random"
	KindMinimax = "minimax"
)

// Games defines the number of games per match.
const Games = 1

// DepthLimit bounds the default minimax agent; the full tree of a 7x6
// board is out of reach.
const DepthLimit = 6

var ErrInvalidConfig = errors.New("invalid config")

type BoardConfig struct {
	Height uint `yaml:"height"`
	Width  uint `yaml:"width"`
	Run    uint `yaml:"run"`
}

type AgentConfig struct {
	Kind            string `yaml:"kind"`
	Name            string `yaml:"name"`
	DepthLimit      int    `yaml:"depth_limit"`
	OpponentReplies bool   `yaml:"opponent_replies"`
	Metrics         bool   `yaml:"metrics"`
	Seed            uint64 `yaml:"seed"`
}

type Config struct {
	Board  BoardConfig   `yaml:"board"`
	Agents []AgentConfig `yaml:"agents"`
	Games  int           `yaml:"games"`
	OutDir string        `yaml:"out_dir"`
}

func Default() Config {
	return Config{
		Board: BoardConfig{Height: Height, Width: Width, Run: Run},
		Agents: []AgentConfig{
			{Kind: KindMinimax, DepthLimit: DepthLimit},
			{Kind: KindRandom},
		},
		Games: Games,
	}
}

// Load reads a YAML file over the defaults. Fields missing from the file
// keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	b := c.Board
	if b.Height == 0 || b.Width == 0 || b.Run == 0 {
		return fmt.Errorf("%w: board dimensions and run must be positive", ErrInvalidConfig)
	}
	if b.Run > b.Height && b.Run > b.Width {
		return fmt.Errorf("%w: run %d does not fit a %dx%d board", ErrInvalidConfig, b.Run, b.Width, b.Height)
	}
	if len(c.Agents) != 2 {
		return fmt.Errorf("%w: need exactly two agents, got %d", ErrInvalidConfig, len(c.Agents))
	}
	for i, a := range c.Agents {
		switch a.Kind {
		case KindRandom, KindMinimax:
		default:
			return fmt.Errorf("%w: agent %d has unknown kind %q", ErrInvalidConfig, i+1, a.Kind)
		}
		if a.DepthLimit < 0 {
			return fmt.Errorf("%w: agent %d has negative depth limit", ErrInvalidConfig, i+1)
		}
	}
	if c.Games <= 0 {
		return fmt.Errorf("%w: games must be positive", ErrInvalidConfig)
	}
	return nil
}
