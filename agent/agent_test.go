package agent

import (
	"connectn/game"
	"connectn/searcher"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	_ Agent = (*Random)(nil)
	_ Agent = (*Minimax)(nil)
)

const (
	A = game.PlayerA
	B = game.PlayerB
	E = game.Empty
)

func newBoard(t *testing.T, height, width, run uint, initial []game.Player) *game.Board {
	t.Helper()
	b, err := game.New(height, width, run, initial)
	require.NoError(t, err)
	return b
}

func TestRandom(t *testing.T) {
	t.Run("default name", func(t *testing.T) {
		require.Equal(t, RandomName, NewRandom("", 1).Describe())
		require.Equal(t, "rnd", NewRandom("rnd", 1).Describe())
	})

	t.Run("always finds the only open column", func(t *testing.T) {
		b := newBoard(t, 2, 4, 3, []game.Player{
			A, B, A, B,
			B, A, E, A,
		})
		r := NewRandom("", 0)

		for i := 0; i < 1000; i++ {
			col, err := r.Play(b, A)
			require.NoError(t, err)
			require.Equal(t, uint(2), col)
		}
	})

	t.Run("only returns legal columns", func(t *testing.T) {
		b := newBoard(t, 1, 5, 3, []game.Player{A, E, B, E, A})
		r := NewRandom("", 42)

		seen := map[uint]bool{}
		for i := 0; i < 200; i++ {
			col, err := r.Play(b, B)
			require.NoError(t, err)
			require.True(t, b.CanPlayMove(B, col), "Column %d should be playable", col)
			seen[col] = true
		}
		require.Len(t, seen, 2, "Both open columns should be sampled")
	})

	t.Run("same seed gives the same sequence", func(t *testing.T) {
		b := newBoard(t, 6, 7, 4, nil)
		r1 := NewRandom("", 7)
		r2 := NewRandom("", 7)

		for i := 0; i < 20; i++ {
			c1, err := r1.Play(b, A)
			require.NoError(t, err)
			c2, err := r2.Play(b, A)
			require.NoError(t, err)
			require.Equal(t, c1, c2)
		}
	})

	t.Run("full board", func(t *testing.T) {
		b := newBoard(t, 1, 2, 2, []game.Player{A, B})

		_, err := NewRandom("", 1).Play(b, A)
		require.ErrorIs(t, err, game.ErrNoLegalMove)
	})
}

func TestMinimax(t *testing.T) {
	t.Run("default name and search", func(t *testing.T) {
		a := NewMinimax("", nil)
		require.Equal(t, MinimaxName, a.Describe())
	})

	t.Run("plays the searched column", func(t *testing.T) {
		b := newBoard(t, 2, 2, 2, []game.Player{
			A, B,
			E, E,
		})

		col, err := NewMinimax("", nil).Play(b, A)
		require.NoError(t, err)
		require.Equal(t, uint(1), col)
	})

	t.Run("only open column", func(t *testing.T) {
		b := newBoard(t, 2, 3, 3, []game.Player{
			A, B, A,
			B, E, A,
		})

		col, err := NewMinimax("", nil).Play(b, B)
		require.NoError(t, err)
		require.Equal(t, uint(1), col)
	})

	t.Run("full board reports no legal move", func(t *testing.T) {
		b := newBoard(t, 1, 2, 2, []game.Player{A, B})

		_, err := NewMinimax("", nil).Play(b, A)
		require.ErrorIs(t, err, game.ErrNoLegalMove)
	})

	t.Run("exposes search metrics", func(t *testing.T) {
		b := newBoard(t, 3, 3, 3, nil)
		a := NewMinimax("", searcher.NewMinimax(searcher.WithMetrics(), searcher.WithDepthLimit(1)))

		_, err := a.Play(b, A)
		require.NoError(t, err)
		require.Equal(t, 3, a.LastMetric().Nodes)
	})
}
