package game

import (
	"errors"
	"fmt"
)

// ErrNoTurns is returned when a turn is requested from a finished game.
var ErrNoTurns = errors.New("no legal turns")

// DecodeError reports malformed text at the state or turn layer.
type DecodeError struct {
	Input  string
	Pos    int
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %q at offset %d: %s", e.Input, e.Pos, e.Reason)
}

// RejectedTurnError reports a turn that is not legal in the given state.
type RejectedTurnError struct {
	Turn  Turn
	State GameState
}

func (e *RejectedTurnError) Error() string {
	return fmt.Sprintf("turn %q is not legal in state %s", e.Turn.String(), e.State.Encode())
}
