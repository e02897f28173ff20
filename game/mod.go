package game

// Evaluator scores a state between -1 and 1 indicating how favorable it is
// for the player to move.
type Evaluator func(GameState) float64

// Result returns the outcome of a finished game from p's perspective: 1 for
// a win, 0 for a loss and 0.5 if the game is not over.
func (s GameState) Result(p Player) float64 {
	w, over := s.Winner()
	switch {
	case !over:
		return 0.5
	case w == p:
		return 1
	}
	return 0
}
