package game

import "fmt"

// NextActions returns the distinct actions that extend prefix towards one of
// turns, in first-seen order, and whether prefix is itself a complete turn.
func NextActions(turns []Turn, prefix Turn) ([]Action, bool) {
	complete := false
	seen := make(map[Action]bool)
	var res []Action
	for _, t := range turns {
		if !t.HasPrefix(prefix) {
			continue
		}
		if len(t) == len(prefix) {
			complete = true
			continue
		}
		if a := t[len(prefix)]; !seen[a] {
			seen[a] = true
			res = append(res, a)
		}
	}
	return res, complete
}

// PreferredActions keeps one action per god and target field: the one with
// the lowest kind, so an attack wins over a special on the same enemy.
func PreferredActions(actions []Action) []Action {
	type target struct {
		god   God
		field Field
	}
	best := make(map[target]int)
	var res []Action
	for _, a := range actions {
		key := target{a.God, a.Field}
		i, ok := best[key]
		if !ok {
			best[key] = len(res)
			res = append(res, a)
			continue
		}
		if a.Kind < res[i].Kind {
			res[i] = a
		}
	}
	return res
}

// Preview executes a partial turn without handing the move over, for
// showing the board while a turn is being assembled. prefix must start one of
// the legal turns of s.
func Preview(s GameState, prefix Turn) (GameState, error) {
	legal := false
	for _, t := range GenerateTurns(s) {
		if t.HasPrefix(prefix) {
			legal = true
			break
		}
	}
	if !legal {
		return s, &RejectedTurnError{Turn: prefix, State: s}
	}
	for _, a := range prefix {
		s = s.act(a)
	}
	return s, nil
}

// Replay applies turns one after another starting from s and returns every
// state visited, s included.
func Replay(s GameState, turns []Turn) ([]GameState, error) {
	states := make([]GameState, 0, len(turns)+1)
	states = append(states, s)
	for i, t := range turns {
		next, err := ApplyTurn(s, t)
		if err != nil {
			return states, fmt.Errorf("replay turn %d: %w", i+1, err)
		}
		states = append(states, next)
		s = next
	}
	return states, nil
}
