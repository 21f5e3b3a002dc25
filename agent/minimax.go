package agent

import (
	"connectn/experiments/metrics"
	"connectn/game"
	"connectn/searcher"
	"fmt"
)

const MinimaxName = "SMART_COMPUTER"

type Minimax struct {
	name   string
	search *searcher.Minimax
}

// NewMinimax wraps a search as an agent. A nil search uses the exhaustive
// default and an empty name selects MinimaxName.
func NewMinimax(name string, search *searcher.Minimax) *Minimax {
	if name == "" {
		name = MinimaxName
	}
	if search == nil {
		search = searcher.NewMinimax()
	}
	return &Minimax{name: name, search: search}
}

func (a *Minimax) Describe() string {
	return a.name
}

func (a *Minimax) Play(b *game.Board, color game.Player) (uint, error) {
	move, err := a.search.FindBestMove(b, color)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", a.name, err)
	}
	// Searched columns are always legal; report rather than retry if not.
	if move < 0 || !b.CanPlayMove(color, uint(move)) {
		return 0, fmt.Errorf("%w: %s picked column %d", game.ErrIllegalMove, a.name, move)
	}
	return uint(move), nil
}

// LastMetric exposes the search metrics of the previous move.
func (a *Minimax) LastMetric() metrics.SearchMetric {
	return a.search.LastMetric()
}
