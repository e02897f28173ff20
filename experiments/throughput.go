package experiments

import (
	"fmt"

	"mytikas/experiments/metrics"
	"mytikas/meta"
)

var throughputGoroutines = []int{1, 2, 4, 8, 16}

// RunThroughputExperiment measures how the number of MCTS goroutines affects
// search time. Each match up uses the same config for both players for the
// same playing strength and similar game length.
func RunThroughputExperiment(root string, games int) (Records, error) {
	configs := make([]metrics.AgentConfig, len(throughputGoroutines))
	matchUps := make([]MatchUp, len(throughputGoroutines))
	for i, goroutines := range throughputGoroutines {
		configs[i] = metrics.AgentConfig{
			ID:         i + 1,
			Descriptor: fmt.Sprintf("mcts,playouts=%d,cutoff=%d,goroutines=%d", meta.PLAYOUTS, meta.WITH_CUTOFF, goroutines),
		}
		matchUps[i] = MatchUp{Light: configs[i], Dark: configs[i]}
	}
	return runExperiment(root, "throughput", configs, matchUps, games)
}
