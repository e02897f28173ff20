package searcher

import (
	"fmt"
	"sync"

	"golang.org/x/exp/rand"

	"mytikas/experiments/metrics"
	"mytikas/game"
)

// Random picks uniformly among the legal turns.
type Random struct {
	seed uint64
	mu   sync.Mutex
	rng  *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) String() string { return fmt.Sprintf("random,seed=%d", r.seed) }

func (r *Random) Search(state game.GameState) (game.Turn, metrics.SearchMetric, error) {
	turns, err := legalTurns(state, r)
	if err != nil {
		return nil, metrics.SearchMetric{}, err
	}
	r.mu.Lock()
	i := r.rng.Intn(len(turns))
	r.mu.Unlock()
	return turns[i], metrics.SearchMetric{Strategy: "random", Candidates: len(turns)}, nil
}
