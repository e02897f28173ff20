package game

import "fmt"

type Player uint8

const (
	Light Player = iota
	Dark
)

func (p Player) Other() Player { return 1 - p }

func (p Player) String() string {
	if p == Light {
		return "light"
	}
	return "dark"
}

// Forward is the row delta pointing from the player's gate towards the enemy's.
func (p Player) Forward() int {
	if p == Light {
		return +1
	}
	return -1
}

// Status tags the variant held by a GodState.
type Status uint8

const (
	Reserved Status = iota
	Available
	Alive
	Dead
)

func (s Status) String() string {
	switch s {
	case Reserved:
		return "reserved"
	case Available:
		return "available"
	case Alive:
		return "alive"
	case Dead:
		return "dead"
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// GodState is the state of one god slot. It is a closed variant: only the
// alive variant carries health, field and the chained flag, and the
// constructors keep those zeroed for every other variant so that values can
// be compared with ==.
type GodState struct {
	status  Status
	hp      uint8
	field   Field
	chained bool
}

func ReservedGod() GodState  { return GodState{status: Reserved, field: NoField} }
func AvailableGod() GodState { return GodState{status: Available, field: NoField} }
func DeadGod() GodState      { return GodState{status: Dead, field: NoField} }

func AliveGod(hp int, field Field, chained bool) GodState {
	return GodState{status: Alive, hp: uint8(hp), field: field, chained: chained}
}

func (gs GodState) Status() Status { return gs.status }
func (gs GodState) IsAlive() bool  { return gs.status == Alive }

// HP returns the remaining health, or 0 for gods that are not alive.
func (gs GodState) HP() int { return int(gs.hp) }

// Field returns the occupied field, or NoField for gods that are not alive.
func (gs GodState) Field() Field { return gs.field }

func (gs GodState) Chained() bool { return gs.chained }

// occupant encodes a board cell: 0 is empty, otherwise 1 + player*GodCount + god.
type occupant uint8

func occupantOf(p Player, g God) occupant { return occupant(1 + int(p)*int(GodCount) + int(g)) }

func (o occupant) player() Player { return Player((int(o) - 1) / int(GodCount)) }
func (o occupant) god() God       { return God((int(o) - 1) % int(GodCount)) }

// GameState is an immutable value: every operation that changes the game
// returns a new GameState. The zero value has light to move and every god
// reserved.
type GameState struct {
	player Player
	gods   [2][GodCount]GodState
	board  [FieldCount]occupant // derived from gods
}

// InitialState returns the start position with every god available.
func InitialState() GameState {
	var roster [2][GodCount]bool
	for p := range roster {
		for g := range roster[p] {
			roster[p][g] = true
		}
	}
	return InitialStateWithRoster(roster)
}

// InitialStateWithRoster returns a start position where only the gods in
// roster are available and the rest are reserved.
func InitialStateWithRoster(roster [2][GodCount]bool) GameState {
	var s GameState
	for p := range s.gods {
		for g := range s.gods[p] {
			if roster[p][g] {
				s.gods[p][g] = AvailableGod()
			} else {
				s.gods[p][g] = ReservedGod()
			}
		}
	}
	return s
}

// Player returns the player to move.
func (s GameState) Player() Player { return s.player }

func (s GameState) God(p Player, g God) GodState { return s.gods[p][g] }

// Occupant returns the player and god on field f.
func (s GameState) Occupant(f Field) (Player, God, bool) {
	o := s.board[f]
	if o == 0 {
		return 0, GodCount, false
	}
	return o.player(), o.god(), true
}

func (s GameState) IsEmpty(f Field) bool { return s.board[f] == 0 }

// Owns reports whether field f holds one of p's gods.
func (s GameState) Owns(p Player, f Field) bool {
	o := s.board[f]
	return o != 0 && o.player() == p
}

// WithGod returns a copy of s with one god slot replaced. It panics if the
// replacement would put two gods on one field.
func (s GameState) WithGod(p Player, g God, gs GodState) GameState {
	s.setGod(p, g, gs)
	return s
}

// WithPlayer returns a copy of s with the given player to move.
func (s GameState) WithPlayer(p Player) GameState {
	s.player = p
	return s
}

func (s *GameState) setGod(p Player, g God, gs GodState) {
	if old := s.gods[p][g]; old.status == Alive {
		s.board[old.field] = 0
	}
	if gs.status == Alive {
		if s.board[gs.field] != 0 {
			panic(fmt.Sprintf("field %s is already occupied", gs.field))
		}
		s.board[gs.field] = occupantOf(p, g)
	}
	s.gods[p][g] = gs
}

// Effects returns the god's status effects: the stored chained flag plus the
// auras radiated by adjacent friendly gods.
func (s GameState) Effects(p Player, g God) Effects {
	gs := s.gods[p][g]
	if gs.status != Alive {
		return Unaffected
	}
	fx := Unaffected
	if gs.chained {
		fx |= Chained
	}
	return fx | s.auraAt(p, gs.field)
}

// auraAt returns the auras p's gods radiate onto field f.
func (s GameState) auraAt(p Player, f Field) Effects {
	fx := Unaffected
	for _, n := range f.Neighbors() {
		if o := s.board[n]; o != 0 && o.player() == p {
			fx |= pantheon[o.god()].Aura
		}
	}
	return fx
}

// Winner returns the winning player, if the game is over. A player wins by
// standing on the opponent's gate or when the opponent has no god left that
// is alive or available.
func (s GameState) Winner() (Player, bool) {
	for _, p := range []Player{Light, Dark} {
		if s.Owns(p, Gates[p.Other()]) {
			return p, true
		}
	}
	if !s.hasForces(s.player) {
		return s.player.Other(), true
	}
	if !s.hasForces(s.player.Other()) {
		return s.player, true
	}
	return 0, false
}

func (s GameState) IsOver() bool {
	_, over := s.Winner()
	return over
}

func (s GameState) hasForces(p Player) bool {
	for _, gs := range s.gods[p] {
		if gs.status == Alive || gs.status == Available {
			return true
		}
	}
	return false
}

// TotalHP sums the health of p's gods that are alive or still available.
func (s GameState) TotalHP(p Player) int {
	total := 0
	for g, gs := range s.gods[p] {
		switch gs.status {
		case Alive:
			total += int(gs.hp)
		case Available:
			total += pantheon[g].Hit
		}
	}
	return total
}

func (s GameState) String() string { return s.Encode() }
