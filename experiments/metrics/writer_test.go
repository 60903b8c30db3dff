package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "unit")
	require.NoError(t, err)

	t.Run("agent configs as csv", func(t *testing.T) {
		err := w.WriteAgentConfigs([]AgentConfig{
			{ID: 1, Strategy: "minimax", Ply: 3, Evaluator: "heuristic"},
		})
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(w.Dir(), "agent_configs.csv"))
		require.NoError(t, err)
		require.Equal(t, "id,strategy,ply,evaluator\n1,minimax,3,heuristic\n", string(data))
	})

	t.Run("game records as parquet", func(t *testing.T) {
		start := time.Now()
		err := w.WriteGameRecords([]GameRecord{{
			ID:     1,
			Agent1: 1,
			Agent2: 2,
			GameMetric: GameMetric{
				StartingPlayer: 1,
				Winner:         2,
				Banked:         [2]int{20, 28},
				StartTime:      start,
				Duration:       time.Second,
				TotalMoves:     30,
			},
		}})
		require.NoError(t, err)

		rows, err := parquet.ReadFile[gameRow](filepath.Join(w.Dir(), "game_records.parquet"))
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.Equal(t, int32(2), rows[0].Winner)
		require.Equal(t, int32(28), rows[0].Banked2)
		require.Equal(t, start.UnixMilli(), rows[0].StartTimeMs)
		require.Equal(t, int64(time.Second), rows[0].DurationNs)
	})

	t.Run("move records as parquet", func(t *testing.T) {
		err := w.WriteMoveRecords([]MoveRecord{
			{Game: 1, MoveMetric: MoveMetric{Step: 1, Player: 1, Move: 3, ExtraTurn: true,
				SearchMetric: SearchMetric{Strategy: "abprune", Depth: 4, Nodes: 100, Prunes: 7, Score: 2}}},
			{Game: 1, MoveMetric: MoveMetric{Step: 2, Player: 1, Move: 6,
				SearchMetric: SearchMetric{Strategy: "abprune", Depth: 4, Nodes: 80, Score: -1}}},
		})
		require.NoError(t, err)

		rows, err := parquet.ReadFile[moveRow](filepath.Join(w.Dir(), "move_records.parquet"))
		require.NoError(t, err)
		require.Len(t, rows, 2)
		require.True(t, rows[0].ExtraTurn)
		require.Equal(t, int64(7), rows[0].Prunes)
		require.Equal(t, int32(6), rows[1].Move)
		require.Equal(t, "abprune", rows[1].Strategy)

		_, err = os.Stat(filepath.Join(w.Dir(), "move_records.parquet.tmp"))
		require.True(t, os.IsNotExist(err), "Temp file should be renamed away")
	})
}
