package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustTurn(t *testing.T, s string) Turn {
	t.Helper()
	turn, err := ParseTurn(s)
	require.NoError(t, err, "Turn %q should parse", s)
	return turn
}

func TestActionCodec(t *testing.T) {
	t.Run("verbose form", func(t *testing.T) {
		a := Action{Kind: Move, God: Zeus, Field: 2}
		require.Equal(t, "Z>e2", a.String(), "Move should use >")
		require.Equal(t, "N+e9", Action{Kind: SpecialAction, God: Athena, Field: 40}.String(), "Special should use +")

		got, err := ParseAction("Z>e2")
		require.NoError(t, err)
		require.Equal(t, a, got, "Action should round trip")
	})

	t.Run("every action integer round trips", func(t *testing.T) {
		for v := 0; v < ActionSpace; v++ {
			a, ok := ActionFromInt(v)
			require.True(t, ok, "%d should be an action", v)
			require.Equal(t, v, a.Int(), "Action %s should map back to %d", a, v)
			parsed, err := ParseAction(a.String())
			require.NoError(t, err)
			require.Equal(t, a, parsed, "Action %s should parse back", a)
		}
		_, ok := ActionFromInt(ActionSpace)
		require.False(t, ok, "ActionSpace should be out of range")
		require.Equal(t, 1968, ActionSpace, "Action space should cover 4 kinds, 12 gods and 41 fields")
	})

	for _, bad := range []string{"", "Z>e", "Z>e22", "Q>e2", "Z?e2", "Z>e0", "Z>a1"} {
		t.Run("rejects "+bad, func(t *testing.T) {
			_, err := ParseAction(bad)
			var decodeErr *DecodeError
			require.True(t, errors.As(err, &decodeErr), "%q should fail with a DecodeError", bad)
		})
	}

	t.Run("turns", func(t *testing.T) {
		require.Empty(t, mustTurn(t, "x"), "x should be a pass")
		require.Equal(t, "x", Turn{}.String(), "Pass should format as x")
		turn := mustTurn(t, "Z@e1,Z>e2")
		require.Equal(t, Turn{{Summon, Zeus, 0}, {Move, Zeus, 2}}, turn, "Actions should keep their order")
		require.Equal(t, "Z@e1,Z>e2", turn.String(), "Turn should round trip")
		require.True(t, turn.HasPrefix(turn[:1]), "Turn should start with its first action")
		require.False(t, turn[:1].HasPrefix(turn), "Prefix should not be longer than the turn")

		_, err := ParseTurn("Z@e1,")
		require.Error(t, err, "Trailing separator should fail")
		_, err = ParseTurn("")
		require.Error(t, err, "Empty text is not a turn")
	})
}

func TestHistoryCodec(t *testing.T) {
	turns := []Turn{
		{{Summon, Zeus, 0}, {Move, Zeus, 2}},
		{},
		{{Attack, Hermes, 20}, {SpecialAction, Hermes, 21}},
		{{Move, Athena, 40}},
	}

	t.Run("empty history", func(t *testing.T) {
		require.Equal(t, "", FormatHistory(nil), "No turns should format as empty text")
		require.Equal(t, "", FormatCompactHistory(nil), "No turns should pack to empty text")
		got, err := ParseHistory("")
		require.NoError(t, err)
		require.Empty(t, got, "Empty text should hold no turns")
		got, err = ParseCompactHistory("")
		require.NoError(t, err)
		require.Empty(t, got, "Empty text should hold no turns")
	})

	t.Run("verbose round trip", func(t *testing.T) {
		text := FormatHistory(turns)
		require.Equal(t, "Z@e1,Z>e2;x;M!e5,M+f5;N>e9", text, "Turns should be joined by semicolons")
		got, err := ParseHistory(text)
		require.NoError(t, err)
		require.Equal(t, turns, got, "History should round trip")
	})

	t.Run("compact round trip", func(t *testing.T) {
		text := FormatCompactHistory(turns)
		require.Len(t, text, 2*6, "Every action and pass should take two symbols")
		got, err := ParseCompactHistory(text)
		require.NoError(t, err)
		require.Equal(t, turns, got, "History should round trip")
	})

	t.Run("compact values", func(t *testing.T) {
		require.Equal(t, "AA", FormatCompactHistory([]Turn{{{Summon, Zeus, 0}}}), "First action should be zero")
		require.Equal(t, "g9", FormatCompactHistory([]Turn{{}}), "Pass should be 3936")
		require.Equal(t, "weAA", FormatCompactHistory([]Turn{{{Summon, Zeus, 0}, {Summon, Zeus, 0}}}),
			"Non-final actions should be offset by 1968")
	})

	for _, tc := range []struct {
		name  string
		input string
	}{
		{"odd length", "AAA"},
		{"invalid character", "A*"},
		{"value above pass", "h9"},
		{"unterminated turn", "we"},
		{"pass inside a turn", "weg9"},
	} {
		t.Run("rejects "+tc.name, func(t *testing.T) {
			_, err := ParseCompactHistory(tc.input)
			var decodeErr *DecodeError
			require.True(t, errors.As(err, &decodeErr), "%q should fail with a DecodeError", tc.input)
		})
	}
}
