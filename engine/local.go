package engine

import (
	"connectn/agent"
	"connectn/experiments/metrics"
	"connectn/game"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var colors = [2]game.Player{game.PlayerA, game.PlayerB}

// metered is implemented by agents that report search metrics per move.
type metered interface {
	LastMetric() metrics.SearchMetric
}

type Local struct {
	ID     string
	Board  *game.Board
	Agents [2]agent.Agent
	// OnMove, if set, is called after every applied move
	OnMove func(move metrics.MoveMetric, b *game.Board)
}

// LocalEngine runs a game in process. The first agent plays PlayerA and
// moves first.
func LocalEngine(b *game.Board, agents ...agent.Agent) *Local {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}
	return &Local{
		ID:     uuid.NewString(),
		Board:  b,
		Agents: [2]agent.Agent{agents[0], agents[1]},
	}
}

// Run alternates turns on the board. An agent without a legal move ends the
// game as a tie; an agent failure or an illegal column aborts it with an
// error and a partial result.
func (e *Local) Run() (Result, error) {
	start := time.Now()
	result := Result{GameID: e.ID}

	log.Info().Msgf("game %s: %s vs %s on %dx%d board, run %d", e.ID,
		e.Agents[0].Describe(), e.Agents[1].Describe(), e.Board.Width(), e.Board.Height(), e.Board.Run())

	outcome, winner := e.Board.HasWinner()
	for step := 0; outcome == game.Continue; step++ {
		turn := step % 2
		a, color := e.Agents[turn], colors[turn]

		thinkStart := time.Now()
		col, err := a.Play(e.Board, color)
		think := time.Since(thinkStart)

		if errors.Is(err, game.ErrNoLegalMove) {
			log.Warn().Err(err).Msgf("game %s: %s cannot move, ending in a tie", e.ID, a.Describe())
			outcome = game.Tie
			break
		}
		if err != nil {
			e.finish(&result, start, game.Continue, game.Empty)
			return result, fmt.Errorf("game %s: %s failed to move: %w", e.ID, a.Describe(), err)
		}
		if !e.Board.Play(col, color) {
			log.Warn().Msgf("game %s: %s chose unplayable column %d", e.ID, a.Describe(), col)
			e.finish(&result, start, game.Continue, game.Empty)
			return result, fmt.Errorf("game %s: %w: %s chose column %d", e.ID, game.ErrIllegalMove, a.Describe(), col)
		}

		move := metrics.MoveMetric{
			Step:   step + 1,
			Player: int(color),
			Column: int(col),
			Think:  think,
		}
		if m, ok := a.(metered); ok {
			move.SearchMetric = m.LastMetric()
		}
		result.Moves = append(result.Moves, move)
		log.Debug().Msgf("game %s: move %d, %s (player %s) played column %d", e.ID, move.Step, a.Describe(), color, col)

		if e.OnMove != nil {
			e.OnMove(move, e.Board)
		}

		outcome, winner = e.Board.HasWinner()
	}

	e.finish(&result, start, outcome, winner)
	if outcome == game.Win {
		log.Info().Msgf("game %s over! Winner: %s", e.ID, result.WinnerName)
	} else {
		log.Info().Msgf("game %s over! Tie after %d moves", e.ID, len(result.Moves))
	}
	return result, nil
}

func (e *Local) finish(result *Result, start time.Time, outcome game.Outcome, winner game.Player) {
	end := time.Now()
	result.Outcome = outcome
	result.Winner = winner
	if outcome == game.Win {
		result.WinnerName = e.agentFor(winner).Describe()
	}

	label := outcome.String()
	if outcome == game.Continue {
		label = "aborted"
	}
	result.Game = metrics.GameMetric{
		GameID:         e.ID,
		StartingPlayer: e.Agents[0].Describe(),
		Winner:         result.WinnerName,
		Outcome:        label,
		StartTime:      start,
		EndTime:        end,
		Duration:       end.Sub(start),
		TotalMoves:     len(result.Moves),
	}
}

func (e *Local) agentFor(color game.Player) agent.Agent {
	if color == colors[1] {
		return e.Agents[1]
	}
	return e.Agents[0]
}
