package game

// Evaluate scores s from the perspective of the player to move: remaining
// health weighs most, counting gods still waiting to be summoned at full
// health, then how close each god on the board stands to the enemy gate.
func Evaluate(s GameState) int {
	var score [2]int
	for p := Light; p <= Dark; p++ {
		score[p] = s.TotalHP(p) * 1000
		for _, gs := range s.gods[p] {
			if gs.IsAlive() {
				score[p] += 100 * (10 - Distance(gs.field, Gates[p.Other()]))
			}
		}
	}
	return score[s.player] - score[s.player.Other()]
}

// EvaluateHealth compares the health left to both players (including gods
// still waiting to be summoned) to produce a score between -1 and 1 from the
// player to move's perspective.
func EvaluateHealth(s GameState) float64 {
	return normalize(float64(s.TotalHP(s.player)), float64(s.TotalHP(s.player.Other())))
}

// EvaluateAdvance adds how far each player's gods have advanced towards the
// enemy gate to EvaluateHealth.
func EvaluateAdvance(s GameState) float64 {
	var advance [2]float64
	for p := Light; p <= Dark; p++ {
		for _, gs := range s.gods[p] {
			if gs.IsAlive() {
				advance[p] += float64(2*(BoardSize-1) - Distance(gs.field, Gates[p.Other()]))
			}
		}
	}
	me, other := s.player, s.player.Other()
	return (EvaluateHealth(s) + normalize(advance[me], advance[other])) / 2
}

// normalize normalizes value relative to otherValue to a score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}
