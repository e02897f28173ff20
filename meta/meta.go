// meta/meta.go
package meta

// GO_ROUTINES defines the number of goroutines to use.
const GO_ROUTINES = 8

// PLAYOUTS defines the number of playouts per candidate turn for MCTS.
const PLAYOUTS = 100

// WITH_CUTOFF defines the cutoff value for MCTS.
const WITH_CUTOFF = 100

// MAX_DEPTH defines the default minimax search depth.
const MAX_DEPTH = 3

// MAX_TURNS caps the length of a game played by the engine.
const MAX_TURNS = 2000

// GAMES defines the number of games per experiment match up.
const GAMES = 30
