package meta

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "connectn.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, BoardConfig{Height: 6, Width: 7, Run: 4}, cfg.Board)
	require.Equal(t, KindMinimax, cfg.Agents[0].Kind)
	require.Equal(t, DepthLimit, cfg.Agents[0].DepthLimit)
	require.Equal(t, KindRandom, cfg.Agents[1].Kind)
}

func TestLoad(t *testing.T) {
	t.Run("overrides defaults", func(t *testing.T) {
		path := writeConfig(t, `
board:
  height: 3
  width: 4
  run: 3
agents:
  - kind: minimax
    name: deep
    depth_limit: 4
    opponent_replies: true
    metrics: true
  - kind: random
    seed: 9
games: 5
out_dir: results
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, BoardConfig{Height: 3, Width: 4, Run: 3}, cfg.Board)
		require.Equal(t, AgentConfig{Kind: KindMinimax, Name: "deep", DepthLimit: 4, OpponentReplies: true, Metrics: true}, cfg.Agents[0])
		require.Equal(t, uint64(9), cfg.Agents[1].Seed)
		require.Equal(t, 5, cfg.Games)
		require.Equal(t, "results", cfg.OutDir)
	})

	t.Run("missing fields keep defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "games: 2\n"))
		require.NoError(t, err)
		require.Equal(t, Default().Board, cfg.Board)
		require.Len(t, cfg.Agents, 2)
		require.Equal(t, 2, cfg.Games)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "board: [1, 2\n"))
		require.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := Load(writeConfig(t, "board:\n  run: 9\n"))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *Config){
		"zero height":          func(c *Config) { c.Board.Height = 0 },
		"zero run":             func(c *Config) { c.Board.Run = 0 },
		"run larger than grid": func(c *Config) { c.Board.Run = 8 },
		"one agent":            func(c *Config) { c.Agents = c.Agents[:1] },
		"unknown agent kind":   func(c *Config) { c.Agents[1].Kind = "human" },
		"negative depth limit": func(c *Config) { c.Agents[0].DepthLimit = -1 },
		"no games":             func(c *Config) { c.Games = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	t.Run("run fits one dimension", func(t *testing.T) {
		cfg := Default()
		cfg.Board.Run = 7
		require.NoError(t, cfg.Validate(), "Run may exceed the height when it fits the width")
	})
}
