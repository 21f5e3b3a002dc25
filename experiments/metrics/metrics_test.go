package metrics

import (
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts nodes, terminals and depth", func(t *testing.T) {
		c := NewCollector()
		c.Start(5)
		c.AddNode(1)
		c.AddNode(3)
		c.AddNode(2)
		c.AddTerminal()

		got := c.Complete()
		require.Equal(t, 3, got.Nodes)
		require.Equal(t, 1, got.Terminals)
		require.Equal(t, 3, got.MaxDepth, "Max depth should keep the deepest node")
		require.Equal(t, 5, got.DepthLimit)
	})

	t.Run("start resets counters", func(t *testing.T) {
		c := NewCollector()
		c.Start(0)
		c.AddNode(4)
		c.Start(0)

		got := c.Complete()
		require.Zero(t, got.Nodes)
		require.Zero(t, got.MaxDepth)
	})

	t.Run("node count grows past 32 bits", func(t *testing.T) {
		c := &collector{}
		c.Start(0)
		c.nodes = math.MaxInt32
		c.AddNode(1)
		require.Equal(t, int64(math.MaxInt32)+1, int64(c.Complete().Nodes))
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(1)
		c.AddNode(1)
		c.AddTerminal()
		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	err = w.WriteGameRecords([]GameRecord{{
		ID:     1,
		Agent1: "SMART_COMPUTER",
		Agent2: "RANDOM_COMPUTER",
		GameMetric: GameMetric{
			GameID:         "abc",
			StartingPlayer: "SMART_COMPUTER",
			Winner:         "SMART_COMPUTER",
			Outcome:        "win",
			StartTime:      start,
			EndTime:        start.Add(time.Second),
			Duration:       time.Second,
			TotalMoves:     7,
		},
	}})
	require.NoError(t, err)

	err = w.WriteMoveRecords([]MoveRecord{{
		Game:       1,
		MoveMetric: MoveMetric{Step: 1, Player: 1, Column: 3, SearchMetric: SearchMetric{Nodes: 10}},
	}})
	require.NoError(t, err)

	games := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, games, 2, "Header plus one row")
	require.Equal(t, "game_id", games[0][1])
	require.Equal(t, []string{"1", "abc", "SMART_COMPUTER", "RANDOM_COMPUTER", "SMART_COMPUTER", "win", "SMART_COMPUTER",
		"2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s", "7"}, games[1])

	moves := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Len(t, moves, 2)
	require.Equal(t, "3", moves[1][3])
	require.Equal(t, "10", moves[1][5])
}
