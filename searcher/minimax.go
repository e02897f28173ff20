package searcher

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"

	"mytikas/experiments/metrics"
	"mytikas/game"
)

const (
	inf = 999999999
	win = 100000000
)

// Minimax is a depth-bounded negamax search with alpha-beta pruning over
// whole turns, scored by game.Evaluate at the horizon. Below the root, turns
// are searched best-first using a shallower search to improve pruning.
type Minimax struct {
	depth   int
	metrics metrics.Collector
}

func NewMinimax(depth int, collector metrics.Collector) *Minimax {
	if depth <= 0 {
		panic("minimax depth must be positive")
	}
	if collector == nil {
		collector = metrics.NewDummyCollector()
	}
	return &Minimax{depth: depth, metrics: collector}
}

func (m *Minimax) String() string { return fmt.Sprintf("minimax,max_depth=%d", m.depth) }

// Search returns the first turn, in generation order, that achieves the best
// backed-up value. The result depends only on the state and the depth.
func (m *Minimax) Search(state game.GameState) (game.Turn, metrics.SearchMetric, error) {
	turns, err := legalTurns(state, m)
	if err != nil {
		return nil, metrics.SearchMetric{}, err
	}
	m.metrics.Start("minimax", 1, m.depth)
	m.metrics.SetCandidates(len(turns))

	best, value := m.root(state, turns)

	metric := m.metrics.Complete()
	log.Debug().Msgf("minimax value %d (%+d) for %s after %d nodes",
		value, value-game.Evaluate(state), best, metric.Nodes)
	return best, metric, nil
}

// Value returns the backed-up value of state for the player to move.
func (m *Minimax) Value(state game.GameState) int {
	return m.search(state, m.depth, -inf, inf)
}

func (m *Minimax) root(state game.GameState, turns []game.Turn) (game.Turn, int) {
	best, bestValue := turns[0], -inf
	for _, turn := range turns {
		// Anything not better than bestValue is cut off as a bound.
		value := -m.search(state.Play(turn), m.depth-1, -inf, -bestValue)
		if value > bestValue {
			best, bestValue = turn, value
		}
	}
	return best, bestValue
}

// search returns an exact value strictly between alpha and beta, an upper
// bound not above alpha or a lower bound not below beta.
func (m *Minimax) search(state game.GameState, depth, alpha, beta int) int {
	m.metrics.AddNode()
	if winner, over := state.Winner(); over {
		// Earlier wins are worth more.
		if winner == state.Player() {
			return win + depth
		}
		return -(win + depth)
	}
	if depth == 0 {
		return game.Evaluate(state)
	}

	turns := game.GenerateTurns(state)
	if depth > 2 {
		turns = m.reorder(state, turns, depth-2)
	}

	bestValue := -inf
	for _, turn := range turns {
		value := -m.search(state.Play(turn), depth-1, -beta, -alpha)
		if value > bestValue {
			bestValue = value
			if value >= beta {
				break
			}
			if value > alpha {
				alpha = value
			}
		}
	}
	return bestValue
}

// reorder sorts turns by decreasing value of a search to the given depth,
// keeping generation order among equals.
func (m *Minimax) reorder(state game.GameState, turns []game.Turn, depth int) []game.Turn {
	type scored struct {
		turn  game.Turn
		value int
	}
	tmp := make([]scored, len(turns))
	for i, turn := range turns {
		tmp[i] = scored{turn, -m.search(state.Play(turn), depth-1, -inf, inf)}
	}
	slices.SortStableFunc(tmp, func(a, b scored) int { return b.value - a.value })
	res := make([]game.Turn, len(tmp))
	for i, s := range tmp {
		res[i] = s.turn
	}
	return res
}
