package searcher

import "math"

const CSquared = 2.0 // Exploration constant

// ucb is the UCB1 policy that spreads time-bounded playouts over root turns.
type ucb struct {
	numerator float64
}

func newUCB(cSquared float64, N int) ucb {
	if N == 0 {
		panic("N cannot be 0")
	}
	return ucb{numerator: cSquared * math.Log(float64(N))}
}

func (u ucb) evaluate(q float64, n int) float64 {
	if n == 0 {
		panic("n cannot be 0")
	}
	// UCB1 = q/n + sqrt(c^2*ln(N)/n)
	return q/float64(n) + math.Sqrt(u.numerator/float64(n))
}

// choose returns the first turn the worker has not tried yet, or else the
// turn with the highest UCB1 score over the worker's own playouts.
func (w *worker) choose() int {
	total := 0
	for i, n := range w.visits {
		if n == 0 {
			return i
		}
		total += n
	}
	u := newUCB(CSquared, total)
	best, bestScore := 0, math.Inf(-1)
	for i := range w.visits {
		if score := u.evaluate(w.rewards[i], w.visits[i]); score > bestScore {
			best, bestScore = i, score
		}
	}
	return best
}
