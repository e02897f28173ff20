package experiments

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"mytikas/engine"
	"mytikas/experiments/metrics"
	"mytikas/game"
	"mytikas/meta"
	"mytikas/searcher"
)

const NumGames = meta.GAMES // Per match up

// MatchUp pairs the agent playing light with the agent playing dark.
type MatchUp struct {
	Light metrics.AgentConfig
	Dark  metrics.AgentConfig
}

// Records are the results of a series of games.
type Records struct {
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
}

// RunStrategyExperiment plays every ordered pair of distinct descriptors
// against each other, so that each strategy plays both colors.
func RunStrategyExperiment(root string, descriptors []string, games int) (Records, error) {
	configs := make([]metrics.AgentConfig, len(descriptors))
	for i, desc := range descriptors {
		configs[i] = metrics.AgentConfig{ID: i + 1, Descriptor: desc}
	}
	matchUps := []MatchUp{}
	for _, light := range configs {
		for _, dark := range configs {
			if light.ID != dark.ID {
				matchUps = append(matchUps, MatchUp{Light: light, Dark: dark})
			}
		}
	}
	return runExperiment(root, "strategy", configs, matchUps, games)
}

func runExperiment(root, name string, configs []metrics.AgentConfig, matchUps []MatchUp, games int) (Records, error) {
	log.Info().Msgf("starting %s experiment...", name)
	records, err := RunMatchUps(game.InitialState(), matchUps, games)
	if err != nil {
		return records, err
	}
	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return records, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return records, fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(records.Games); err != nil {
		return records, fmt.Errorf("failed to store game records: %w", err)
	}
	if err := writer.WriteMoveRecords(records.Moves); err != nil {
		return records, fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msgf("stored records in %s", writer.Dir())
	return records, nil
}

// RunMatchUps plays a number of games from start for each match up.
func RunMatchUps(start game.GameState, matchUps []MatchUp, games int) (Records, error) {
	var records Records
	count := 0
	for mi, matchUp := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between light=%+v and dark=%+v...",
			mi+1, len(matchUps), matchUp.Light, matchUp.Dark)

		for i := 0; i < games; i++ {
			winner, gameMetric, moveMetrics, err := runGame(start, matchUp.Light, matchUp.Dark)
			if err != nil {
				return records, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			records.Games = append(records.Games, metrics.GameRecord{
				ID:         count,
				Agent1:     matchUp.Light.ID,
				Agent2:     matchUp.Dark.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				records.Moves = append(records.Moves, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}
			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, winner)
		}
	}
	return records, nil
}

// GodStrength tallies god-strength games: entry [i][j] is the number of
// light wins minus dark wins when light plays without god i and dark plays
// without god j.
type GodStrength [game.GodCount][game.GodCount]int

// RunGodStrengthExperiment plays rounds of games between two copies of the
// strategy, for every pair of gods missing from each side.
func RunGodStrengthExperiment(root, descriptor string, rounds int) (GodStrength, error) {
	var strength GodStrength
	var records []metrics.GodRecord
	agent := metrics.AgentConfig{ID: 1, Descriptor: descriptor}

	log.Info().Msgf("starting god strength experiment with %s...", descriptor)
	for round := 1; round <= rounds; round++ {
		for i := game.God(0); i < game.GodCount; i++ {
			for j := game.God(0); j < game.GodCount; j++ {
				winner, _, _, err := runGame(withoutGods(i, j), agent, agent)
				if err != nil {
					return strength, fmt.Errorf("round %d without %s and %s: %w", round, i, j, err)
				}
				switch winner {
				case game.Light.String():
					strength[i][j]++
				case game.Dark.String():
					strength[i][j]--
				}
				records = append(records, metrics.GodRecord{
					Round:        round,
					LightMissing: i.String(),
					DarkMissing:  j.String(),
					Winner:       winner,
				})
			}
		}
		log.Info().Msgf("completed round %d of %d", round, rounds)
	}
	log.Info().Msgf("god strength (light wins minus dark wins, rows: missing from light):\n%s", strength)

	writer, err := metrics.NewWriter(root, "god_strength")
	if err != nil {
		return strength, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs([]metrics.AgentConfig{agent}); err != nil {
		return strength, fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGodRecords(records); err != nil {
		return strength, fmt.Errorf("failed to store god records: %w", err)
	}
	return strength, nil
}

func (gs GodStrength) String() string {
	var b strings.Builder
	b.WriteString("  ")
	for j := game.God(0); j < game.GodCount; j++ {
		fmt.Fprintf(&b, " %3c", j.Info().ID)
	}
	for i := game.God(0); i < game.GodCount; i++ {
		fmt.Fprintf(&b, "\n%c ", i.Info().ID)
		for j := game.God(0); j < game.GodCount; j++ {
			fmt.Fprintf(&b, " %3d", gs[i][j])
		}
	}
	return b.String()
}

// withoutGods returns the start position with light missing god i and dark
// missing god j.
func withoutGods(i, j game.God) game.GameState {
	var roster [2][game.GodCount]bool
	for g := game.God(0); g < game.GodCount; g++ {
		roster[game.Light][g] = g != i
		roster[game.Dark][g] = g != j
	}
	return game.InitialStateWithRoster(roster)
}

// runGame executes a single game between two agents and returns the winner.
func runGame(start game.GameState, light, dark metrics.AgentConfig) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	lightStrategy, err := searcher.New(light.Descriptor, metrics.NewCollector())
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	darkStrategy, err := searcher.New(dark.Descriptor, metrics.NewCollector())
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	e := engine.LocalEngine(start, lightStrategy, darkStrategy)
	return e.Run()
}
