package searcher

import (
	"connectn/experiments/metrics"
	"connectn/game"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

// Minimax exhaustively walks the game tree below a position and picks the
// column with the best accumulated score.
//
// This is not canonical minimax: sibling scores are summed instead of
// maximized or minimized, and by default every level drops pieces of the
// searching color. Win parity is judged from a ply counter that grows with
// every explored sibling. Its scores rank columns heuristically and are not
// game-theoretic values.
//
// A Minimax is not safe for concurrent use.
type Minimax struct {
	depthLimit      int
	opponentReplies bool
	metrics         metrics.Collector
	last            metrics.SearchMetric
}

// WithDepthLimit stops the descent at the given recursion depth, scoring the
// frontier as a tie. Zero keeps the search exhaustive.
func WithDepthLimit(depth int) Option {
	if depth < 0 {
		panic("depth limit cannot be negative")
	}
	return func(m *Minimax) {
		m.depthLimit = depth
	}
}

// WithOpponentReplies makes every level below the top drop the opponent's
// piece and continue from the opponent's perspective.
func WithOpponentReplies() Option {
	return func(m *Minimax) {
		m.opponentReplies = true
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depthLimit: Unlimited,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// FindBestMove returns the column to play for color. The board is not
// modified.
func (m *Minimax) FindBestMove(b *game.Board, color game.Player) (int, error) {
	if !b.CanPlay(color) {
		return NoMove, fmt.Errorf("%w: board is full", game.ErrNoLegalMove)
	}

	start := time.Now()
	m.metrics.Start(m.depthLimit)
	log.Debug().Msgf("searching %dx%d board for player %s", b.Width(), b.Height(), color)

	move := NoMove
	best := 0
	result := 0
	ply := 0
	for col := uint(0); col < b.Width(); col++ {
		if !b.CanPlayMove(color, col) {
			continue
		}
		ply++
		result += m.branch(b, col, color, ply, 1)
		if move == NoMove || result > best {
			best = result
			move = int(col)
		}
	}

	m.last = m.metrics.Complete()
	log.Debug().Msgf("search picked column %d with score %d in %v (%d nodes)", move, best, time.Since(start), m.last.Nodes)

	return move, nil
}

// LastMetric returns the metrics of the previous search. It is empty unless
// the search was built WithMetrics.
func (m *Minimax) LastMetric() metrics.SearchMetric {
	return m.last
}

// branch plays col on a private copy of b and scores the result. The copy
// is dropped when branch returns.
func (m *Minimax) branch(b *game.Board, col uint, mover game.Player, ply, depth int) int {
	child := b.Duplicate()
	child.Play(col, mover)
	return m.score(child, mover, ply, depth)
}

func (m *Minimax) score(b *game.Board, perspective game.Player, ply, depth int) int {
	m.metrics.AddNode(depth)

	outcome, winner := b.HasWinner()
	if outcome == game.Win && winner == perspective {
		m.metrics.AddTerminal()
		if ply%2 == 0 {
			return Win
		}
		return Loss
	}
	if outcome == game.Tie {
		m.metrics.AddTerminal()
		return Tie
	}
	if m.depthLimit != Unlimited && depth >= m.depthLimit {
		return Tie
	}

	// A win by the other color is not terminal here; the search plays on
	// until the board fills up.
	mover := perspective
	if m.opponentReplies {
		mover = perspective.Opponent()
	}

	result := 0
	for col := uint(0); col < b.Width(); col++ {
		if !b.CanPlayMove(perspective, col) {
			continue
		}
		ply++
		result += m.branch(b, col, mover, ply, depth+1)
	}
	return result
}
