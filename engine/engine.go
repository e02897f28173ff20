package engine

import "mytikas/experiments/metrics"

type Engine interface {
	// Run plays a game till there's a winner or a max number of turns is
	// reached, in which case the winner is empty
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
