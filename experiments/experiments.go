package experiments

import (
	"connectn/agent"
	"connectn/engine"
	"connectn/experiments/metrics"
	"connectn/game"
	"connectn/meta"
	"connectn/searcher"
	"fmt"

	"github.com/rs/zerolog/log"
)

type MatchSummary struct {
	Names   [2]string // Agent names in config order
	Wins    [2]int
	Ties    int
	Aborted int
	Games   []metrics.GameRecord
	Moves   []metrics.MoveRecord
}

// RunMatch plays cfg.Games games between the two configured agents,
// alternating which one moves first. Records are written when w is not nil.
func RunMatch(cfg meta.Config, w *metrics.Writer) (MatchSummary, error) {
	var summary MatchSummary
	if err := cfg.Validate(); err != nil {
		return summary, err
	}

	agents := [2]agent.Agent{}
	for i, ac := range cfg.Agents {
		a, err := CreateAgent(ac)
		if err != nil {
			return summary, err
		}
		agents[i] = a
		summary.Names[i] = a.Describe()
	}

	log.Info().Msgf("starting match %s vs %s over %d games...", summary.Names[0], summary.Names[1], cfg.Games)

	for i := 0; i < cfg.Games; i++ {
		// Same pair every game, swapping who plays first
		first, second := 0, 1
		if i%2 == 1 {
			first, second = 1, 0
		}

		b, err := game.New(cfg.Board.Height, cfg.Board.Width, cfg.Board.Run, nil)
		if err != nil {
			return summary, fmt.Errorf("failed to create board: %w", err)
		}

		log.Info().Msgf("starting game %d of %d...", i+1, cfg.Games)
		e := engine.LocalEngine(b, agents[first], agents[second])
		result, err := e.Run()

		id := i + 1
		switch {
		case err != nil:
			log.Error().Err(err).Msgf("game %d aborted", id)
			summary.Aborted++
		case result.Outcome == game.Win && result.Winner == game.PlayerA:
			summary.Wins[first]++
		case result.Outcome == game.Win:
			summary.Wins[second]++
		default:
			summary.Ties++
		}

		summary.Games = append(summary.Games, metrics.GameRecord{
			ID:         id,
			Agent1:     summary.Names[first],
			Agent2:     summary.Names[second],
			GameMetric: result.Game,
		})
		for _, mm := range result.Moves {
			summary.Moves = append(summary.Moves, metrics.MoveRecord{
				Game:       id,
				MoveMetric: mm,
			})
		}
	}

	log.Info().Msgf("completed match: %s %d, %s %d, ties %d, aborted %d",
		summary.Names[0], summary.Wins[0], summary.Names[1], summary.Wins[1], summary.Ties, summary.Aborted)

	if w == nil {
		return summary, nil
	}

	if err := w.WriteGameRecords(summary.Games); err != nil {
		return summary, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := w.WriteMoveRecords(summary.Moves); err != nil {
		return summary, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return summary, nil
}

// CreateAgent builds an agent from its configuration.
func CreateAgent(config meta.AgentConfig) (agent.Agent, error) {
	switch config.Kind {
	case meta.KindRandom:
		return agent.NewRandom(config.Name, config.Seed), nil
	case meta.KindMinimax:
		options := []searcher.Option{}
		if config.DepthLimit > 0 {
			options = append(options, searcher.WithDepthLimit(config.DepthLimit))
		}
		if config.OpponentReplies {
			options = append(options, searcher.WithOpponentReplies())
		}
		if config.Metrics {
			options = append(options, searcher.WithMetrics())
		}
		return agent.NewMinimax(config.Name, searcher.NewMinimax(options...)), nil
	default:
		return nil, fmt.Errorf("%w: unknown agent kind %q", meta.ErrInvalidConfig, config.Kind)
	}
}
