package game

import (
	"fmt"
	"strings"
)

type ActionKind uint8

const (
	Summon ActionKind = iota
	Move
	Attack
	SpecialAction
	ActionKindCount
)

const actionKindChars = "@>!+"

func (k ActionKind) String() string {
	switch k {
	case Summon:
		return "summon"
	case Move:
		return "move"
	case Attack:
		return "attack"
	case SpecialAction:
		return "special"
	}
	return fmt.Sprintf("ActionKind(%d)", uint8(k))
}

// ActionSpace is the number of distinct action integers.
const ActionSpace = int(ActionKindCount) * int(GodCount) * FieldCount

type Action struct {
	Kind  ActionKind
	God   God
	Field Field
}

// Int returns the canonical integer of the action in [0, ActionSpace).
func (a Action) Int() int {
	return (int(a.Kind)*int(GodCount)+int(a.God))*FieldCount + int(a.Field)
}

// ActionFromInt is the inverse of Action.Int.
func ActionFromInt(v int) (Action, bool) {
	if v < 0 || v >= ActionSpace {
		return Action{}, false
	}
	return Action{
		Kind:  ActionKind(v / FieldCount / int(GodCount)),
		God:   God(v / FieldCount % int(GodCount)),
		Field: Field(v % FieldCount),
	}, true
}

// String returns the verbose form, e.g. "Z>e2".
func (a Action) String() string {
	if !a.God.Valid() || a.Kind >= ActionKindCount || !a.Field.Valid() {
		return fmt.Sprintf("Action(%d,%d,%d)", a.Kind, a.God, a.Field)
	}
	return string([]byte{pantheon[a.God].ID, actionKindChars[a.Kind]}) + a.Field.String()
}

// ParseAction parses the four character verbose form of an action.
func ParseAction(s string) (Action, error) {
	if len(s) != 4 {
		return Action{}, &DecodeError{Input: s, Reason: fmt.Sprintf("action has length %d, want 4", len(s))}
	}
	g, ok := GodByID(s[0])
	if !ok {
		return Action{}, &DecodeError{Input: s, Pos: 0, Reason: "unknown god"}
	}
	k := strings.IndexByte(actionKindChars, s[1])
	if k < 0 {
		return Action{}, &DecodeError{Input: s, Pos: 1, Reason: "unknown action kind"}
	}
	f, ok := ParseField(s[2:])
	if !ok {
		return Action{}, &DecodeError{Input: s, Pos: 2, Reason: "unknown field"}
	}
	return Action{Kind: ActionKind(k), God: g, Field: f}, nil
}

// Turn is the ordered list of actions a player takes in one move. The empty
// turn is a pass.
type Turn []Action

const (
	passSymbol = "x"
	actionSep  = ","
	turnSep    = ";"
)

func (t Turn) String() string {
	if len(t) == 0 {
		return passSymbol
	}
	parts := make([]string, len(t))
	for i, a := range t {
		parts[i] = a.String()
	}
	return strings.Join(parts, actionSep)
}

func (t Turn) Equal(u Turn) bool {
	if len(t) != len(u) {
		return false
	}
	for i := range t {
		if t[i] != u[i] {
			return false
		}
	}
	return true
}

// HasPrefix reports whether prefix is a leading subsequence of t.
func (t Turn) HasPrefix(prefix Turn) bool {
	return len(prefix) <= len(t) && t[:len(prefix)].Equal(prefix)
}

// ParseTurn parses actions joined by commas, or "x" for a pass.
func ParseTurn(s string) (Turn, error) {
	if s == passSymbol {
		return Turn{}, nil
	}
	parts := strings.Split(s, actionSep)
	turn := make(Turn, 0, len(parts))
	for _, part := range parts {
		a, err := ParseAction(part)
		if err != nil {
			return nil, fmt.Errorf("parse turn %q: %w", s, err)
		}
		turn = append(turn, a)
	}
	return turn, nil
}

// FormatHistory joins verbose turns with semicolons. An empty history is the
// empty string.
func FormatHistory(turns []Turn) string {
	parts := make([]string, len(turns))
	for i, t := range turns {
		parts[i] = t.String()
	}
	return strings.Join(parts, turnSep)
}

// ParseHistory is the inverse of FormatHistory.
func ParseHistory(s string) ([]Turn, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, turnSep)
	turns := make([]Turn, 0, len(parts))
	for i, part := range parts {
		t, err := ParseTurn(part)
		if err != nil {
			return nil, fmt.Errorf("turn %d: %w", i+1, err)
		}
		turns = append(turns, t)
	}
	return turns, nil
}
