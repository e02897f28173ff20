package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"mytikas/experiments/metrics"
	"mytikas/game"
	"mytikas/meta"
	"mytikas/searcher"
)

// Local plays a game between two strategies in this process.
type Local struct {
	State      game.GameState
	Strategies [2]searcher.Strategy // indexed by game.Player
	MaxTurns   int
	History    []game.Turn
}

var _ Engine = (*Local)(nil)

func LocalEngine(start game.GameState, light, dark searcher.Strategy) *Local {
	if light == nil || dark == nil {
		panic("need a strategy for both players")
	}
	return &Local{
		State:      start,
		Strategies: [2]searcher.Strategy{light, dark},
		MaxTurns:   meta.MAX_TURNS,
	}
}

// Run executes the entire game loop until a winner is found.
func (e *Local) Run() (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.Player().String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting, %s plays light and %s plays dark",
		e.State.Player(), e.Strategies[game.Light], e.Strategies[game.Dark])

	turnCount := 1
	for !e.State.IsOver() && turnCount <= e.MaxTurns {
		player := e.State.Player()
		turn, searchMetric, err := e.Strategies[player].Search(e.State)
		if err != nil {
			return "", gameMetric, moveMetrics, fmt.Errorf("turn %d: %w", turnCount, err)
		}
		next, err := game.ApplyTurn(e.State, turn)
		if err != nil {
			return "", gameMetric, moveMetrics, fmt.Errorf("turn %d by %s: %w", turnCount, e.Strategies[player], err)
		}
		log.Debug().Msgf("turn %d: %s plays %s", turnCount, player, turn)

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turnCount,
			Player:       player.String(),
			Turn:         turn.String(),
			SearchMetric: searchMetric,
		})
		e.History = append(e.History, turn)
		e.State = next
		turnCount++
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(e.History)
	gameMetric.FinalState = e.State.Encode()

	winner, over := e.State.Winner()
	if !over {
		log.Warn().Msgf("stopped after %d turns without a winner", e.MaxTurns)
		return "", gameMetric, moveMetrics, nil
	}
	gameMetric.Winner = winner.String()
	log.Info().Msgf("%s won after %d turns", winner, len(e.History))
	return gameMetric.Winner, gameMetric, moveMetrics, nil
}
