package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

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
	w, err := NewWriter(t.TempDir(), "matchup")
	require.NoError(t, err)

	t.Run("agent configs", func(t *testing.T) {
		require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 1, Descriptor: "minimax,max_depth=2"}}))
		rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Equal(t, [][]string{{"id", "descriptor"}, {"1", "minimax,max_depth=2"}}, rows,
			"Descriptor with commas should be quoted and read back")
	})

	t.Run("game records", func(t *testing.T) {
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		require.NoError(t, w.WriteGameRecords([]GameRecord{{ID: 1, Agent1: 1, Agent2: 2, GameMetric: GameMetric{
			StartingPlayer: "light",
			Winner:         "dark",
			StartTime:      start,
			EndTime:        start.Add(time.Second),
			Duration:       time.Second,
			TotalMoves:     12,
		}}}))
		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 2, "Header and one record should be written")
		require.Equal(t, []string{"1", "1", "2", "light", "dark", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s", "12", ""}, rows[1],
			"Record fields should be written in header order")
	})

	t.Run("move and god records", func(t *testing.T) {
		require.NoError(t, w.WriteMoveRecords([]MoveRecord{{Game: 1, MoveMetric: MoveMetric{Step: 1, Player: "light", Turn: "Z@e1,Z>e2"}}}))
		require.NoError(t, w.WriteGodRecords([]GodRecord{{Round: 1, LightMissing: "Zeus", DarkMissing: "Hera", Winner: "light"}}))
		moves := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Equal(t, "Z@e1,Z>e2", moves[1][3], "Turn text should survive quoting")
		gods := readCSV(t, filepath.Join(w.Dir(), "god_records.csv"))
		require.Equal(t, []string{"1", "Zeus", "Hera", "light"}, gods[1], "God record should be written")
	})
}

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start("mcts", 4, 10)
	c.SetCandidates(3)
	c.AddPlayout(true)
	c.AddPlayout(false)
	c.AddNode()
	m := c.Complete()
	require.Equal(t, "mcts", m.Strategy, "Strategy should be recorded")
	require.Equal(t, 4, m.Goroutines, "Goroutines should be recorded")
	require.Equal(t, 10, m.Cutoff, "Cutoff should be recorded")
	require.Equal(t, 3, m.Candidates, "Candidates should be recorded")
	require.Equal(t, 2, m.Playouts, "Both playouts should count")
	require.Equal(t, 1, m.FullPlayouts, "Only the finished playout is full")
	require.Equal(t, 1, m.Nodes, "Node should count")

	c.Start("minimax", 1, 2)
	require.Zero(t, c.Complete().Playouts, "Start should reset the counters")
	require.Equal(t, SearchMetric{}, NewDummyCollector().Complete(), "Dummy collector should record nothing")
}
