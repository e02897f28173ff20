package searcher

import (
	"errors"
	"fmt"

	"mytikas/experiments/metrics"
	"mytikas/game"
)

// Rewards of a finished playout from the searching player's perspective.
const Win = 1.0
const Loss = 0.0

var ErrUnknownStrategy = errors.New("unknown strategy")

// SearchError reports a bad strategy descriptor or a search that could not
// produce a turn.
type SearchError struct {
	Descriptor string
	Reason     string
	Err        error
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("strategy %q: %s", e.Descriptor, e.Reason)
}

func (e *SearchError) Unwrap() error { return e.Err }

// Strategy selects a turn for the player to move.
type Strategy interface {
	// Search returns one of game.GenerateTurns(state) and the metrics of the
	// search that found it.
	Search(state game.GameState) (game.Turn, metrics.SearchMetric, error)
	String() string
}

// ChooseTurn builds the strategy named by descriptor and lets it pick a turn.
func ChooseTurn(state game.GameState, descriptor string) (game.Turn, error) {
	s, err := New(descriptor, nil)
	if err != nil {
		return nil, err
	}
	turn, _, err := s.Search(state)
	return turn, err
}

// legalTurns returns the turns to choose from, or an error naming the
// strategy when the game is already over.
func legalTurns(state game.GameState, s Strategy) ([]game.Turn, error) {
	turns := game.GenerateTurns(state)
	if len(turns) == 0 {
		return nil, &SearchError{Descriptor: s.String(), Reason: "no legal turns", Err: game.ErrNoTurns}
	}
	return turns, nil
}
