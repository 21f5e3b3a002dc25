package engine

import (
	"connectn/experiments/metrics"
	"connectn/game"
)

type Engine interface {
	// Run plays the game until a win, a tie, or an agent failure
	Run() (Result, error)
}

type Result struct {
	GameID     string
	Outcome    game.Outcome
	Winner     game.Player
	WinnerName string
	Game       metrics.GameMetric
	Moves      []metrics.MoveMetric
}
