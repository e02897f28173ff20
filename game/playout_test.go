package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// TestRandomPlayouts checks the invariants of turn generation and execution
// on every state reached by random games.
func TestRandomPlayouts(t *testing.T) {
	const games = 20
	const maxPlies = 150
	rng := rand.New(rand.NewSource(7))
	var history []Turn
	for i := 0; i < games; i++ {
		s := InitialState()
		history = history[:0]
		for ply := 0; ply < maxPlies && !s.IsOver(); ply++ {
			decoded, err := DecodeState(s.Encode())
			require.NoError(t, err, "Reached state should decode")
			require.Equal(t, s, decoded, "Reached state should round trip")

			turns := GenerateTurns(s)
			require.NotEmpty(t, turns, "Unfinished game should have turns")
			require.Equal(t, turns, GenerateTurns(s), "Turn generation should be deterministic")
			for _, turn := range turns {
				require.LessOrEqual(t, len(turn), MaxActions, "%s is too long", turn)
				if len(turn) == 0 {
					require.Len(t, turns, 1, "Pass should only be offered alone")
				}
			}

			turn := turns[rng.Intn(len(turns))]
			next, err := ApplyTurn(s, turn)
			require.NoError(t, err, "Generated turn %s should apply", turn)
			require.Equal(t, s.Player().Other(), next.Player(), "Move should pass to the other player")
			checkHealth(t, next)
			history = append(history, turn)
			s = next
		}

		compact := FormatCompactHistory(history)
		parsed, err := ParseCompactHistory(compact)
		require.NoError(t, err)
		require.Equal(t, len(history), len(parsed), "Compact history should keep every turn")
		for i := range history {
			require.True(t, history[i].Equal(parsed[i]), "Turn %d should survive compact form", i)
		}
		verbose, err := ParseHistory(FormatHistory(history))
		require.NoError(t, err)
		states, err := Replay(InitialState(), verbose)
		require.NoError(t, err, "Recorded game should replay")
		require.Equal(t, s, states[len(states)-1], "Replay should reach the same state")
	}
}

func checkHealth(t *testing.T, s GameState) {
	t.Helper()
	for p := Light; p <= Dark; p++ {
		for g := God(0); g < GodCount; g++ {
			gs := s.God(p, g)
			if !gs.IsAlive() {
				require.Equal(t, NoField, gs.Field(), "%s %s off the board should have no field", p, g)
				continue
			}
			require.GreaterOrEqual(t, gs.HP(), 1, "%s %s should have health", p, g)
			require.LessOrEqual(t, gs.HP(), g.Info().Hit, "%s %s should not exceed maximum health", p, g)
			q, occupant, ok := s.Occupant(gs.Field())
			require.True(t, ok && q == p && occupant == g, "%s %s should occupy its field", p, g)
		}
	}
}

func TestEvaluate(t *testing.T) {
	require.Zero(t, Evaluate(InitialState()), "Initial position should be balanced")
	require.Zero(t, EvaluateHealth(InitialState()), "Initial position should be balanced")

	summoned := InitialState().WithGod(Light, Zeus, AliveGod(10, Gates[Light], false))
	require.Equal(t, 200, Evaluate(summoned), "Summoning should only add the positional bonus")
	wounded := InitialState().WithGod(Light, Zeus, AliveGod(1, Gates[Light], false))
	require.Less(t, Evaluate(wounded), Evaluate(InitialState()), "Wounded Zeus should score below Zeus in reserve")
	require.Less(t, EvaluateHealth(wounded), 0.0, "Health evaluators should agree on direction")

	s := setup(t, piece{Light, Zeus, "e5", 5}).WithPlayer(Light)
	require.Equal(t, -5000+600, Evaluate(s), "Lost health should outweigh an advanced position")
	require.Equal(t, 5000-600, Evaluate(s.WithPlayer(Dark)), "Score should flip with the player to move")
	require.Less(t, EvaluateHealth(s), 0.0, "Light should be behind after losing health")
	require.Greater(t, EvaluateAdvance(s), EvaluateHealth(s), "Advanced Zeus should improve the score")
	require.Equal(t, 0.5, InitialState().Result(Light), "Unfinished game has no result")
}
