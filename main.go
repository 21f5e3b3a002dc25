package main

import (
	"connectn/engine"
	"connectn/experiments"
	"connectn/experiments/metrics"
	"connectn/game"
	"connectn/meta"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type flags struct {
	config  string
	height  uint
	width   uint
	run     uint
	agent1  string
	agent2  string
	depth   int
	verbose bool
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	return newRootCmd(&flags{})
}

func newRootCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "connectn",
		Short:        "Connect-N rules engine with random and minimax opponents",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
			if f.verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&f.config, "config", "", "YAML config file")
	pf.UintVar(&f.height, "height", meta.Height, "Board height")
	pf.UintVar(&f.width, "width", meta.Width, "Board width")
	pf.UintVar(&f.run, "run", meta.Run, "Pieces in a row needed to win")
	pf.StringVar(&f.agent1, "agent1", "", "First agent kind (random|minimax)")
	pf.StringVar(&f.agent2, "agent2", "", "Second agent kind (random|minimax)")
	pf.IntVar(&f.depth, "depth", 0, "Depth limit for minimax agents (0 = exhaustive)")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "Debug logging")

	cmd.AddCommand(playCmd(f))
	cmd.AddCommand(matchCmd(f))
	return cmd
}

func playCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play one game and print the board after every move",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}

			first, err := experiments.CreateAgent(cfg.Agents[0])
			if err != nil {
				return err
			}
			second, err := experiments.CreateAgent(cfg.Agents[1])
			if err != nil {
				return err
			}
			b, err := game.New(cfg.Board.Height, cfg.Board.Width, cfg.Board.Run, nil)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			e := engine.LocalEngine(b, first, second)
			e.OnMove = func(move metrics.MoveMetric, b *game.Board) {
				fmt.Fprintf(out, "move %d: player %d -> column %d\n%s", move.Step, move.Player, move.Column, b)
			}

			result, err := e.Run()
			if err != nil {
				return err
			}
			if result.Outcome == game.Win {
				fmt.Fprintf(out, "%s (player %s) wins!\n", result.WinnerName, result.Winner)
			} else {
				fmt.Fprintln(out, "It's a tie.")
			}
			return nil
		},
	}
}

func matchCmd(f *flags) *cobra.Command {
	var games int
	var outDir string
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Play several games, alternating the first player",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("games") {
				cfg.Games = games
			}
			if cmd.Flags().Changed("out") {
				cfg.OutDir = outDir
			}

			var w *metrics.Writer
			if cfg.OutDir != "" {
				w, err = metrics.NewWriter(cfg.OutDir)
				if err != nil {
					return err
				}
			}

			summary, err := experiments.RunMatch(cfg, w)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d wins\n", summary.Names[0], summary.Wins[0])
			fmt.Fprintf(out, "%s: %d wins\n", summary.Names[1], summary.Wins[1])
			fmt.Fprintf(out, "ties: %d, aborted: %d\n", summary.Ties, summary.Aborted)
			if w != nil {
				fmt.Fprintf(out, "records written to %s\n", w.Dir())
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&games, "games", meta.Games, "Number of games")
	cmd.Flags().StringVar(&outDir, "out", "", "Directory for CSV records")
	return cmd
}

// resolveConfig loads the config file, if any, then applies explicitly set
// flags on top.
func resolveConfig(cmd *cobra.Command, f *flags) (meta.Config, error) {
	cfg := meta.Default()
	if f.config != "" {
		loaded, err := meta.Load(f.config)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	changed := cmd.Flags().Changed
	if changed("height") {
		cfg.Board.Height = f.height
	}
	if changed("width") {
		cfg.Board.Width = f.width
	}
	if changed("run") {
		cfg.Board.Run = f.run
	}
	for i, kind := range []string{f.agent1, f.agent2} {
		if !changed(fmt.Sprintf("agent%d", i+1)) {
			continue
		}
		a := &cfg.Agents[i]
		a.Kind = kind
		// An unbounded search on the default board never returns
		if a.Kind == meta.KindMinimax && a.DepthLimit == 0 {
			a.DepthLimit = meta.DepthLimit
		}
	}
	if changed("depth") {
		for i := range cfg.Agents {
			cfg.Agents[i].DepthLimit = f.depth
		}
	}

	return cfg, cfg.Validate()
}
