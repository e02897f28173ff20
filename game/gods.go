package game

// God identifies one of the twelve unit types. Order matches the catalog and
// the state encoding.
type God uint8

const (
	Zeus God = iota
	Hephaestus
	Hera
	Poseidon
	Apollo
	Aphrodite
	Ares
	Hermes
	Dionysus
	Artemis
	Hades
	Athena
	GodCount
)

// Dirs is a bit set of directions plus qualifiers describing how a god moves
// or attacks.
type Dirs uint8

const (
	NoDirs     Dirs = 0
	Orthogonal Dirs = 1
	Diagonal   Dirs = 2
	All8       Dirs = Orthogonal | Diagonal
	Knight     Dirs = 4

	// Direct restricts to straight rays that stop at the first occupied field.
	Direct Dirs = 8
	// Leap lets a direct ray pass over occupied fields.
	Leap Dirs = 16
)

func (d Dirs) Has(flag Dirs) bool { return d&flag == flag }

// Steps lists the unit steps selected by d.
func (d Dirs) Steps() []Dir {
	var res []Dir
	if d.Has(Orthogonal) {
		res = append(res, orthoDirs...)
	}
	if d.Has(Diagonal) {
		res = append(res, diagDirs...)
	}
	if d.Has(Knight) {
		res = append(res, knightDirs...)
	}
	return res
}

// Effects is a bit mask of status effects. Only Chained is ever stored; the
// aura bits are derived from adjacency.
type Effects uint8

const (
	Unaffected  Effects = 0
	Chained     Effects = 1
	DamageBoost Effects = 2
	SpeedBoost  Effects = 4
	Shielded    Effects = 8
)

// Area describes the shape of an attack that has no direction set.
type Area uint8

const (
	NoArea Area = iota
	AreaFront
	AreaAround
)

// Trait is a passive combat modifier.
type Trait uint8

const (
	// FlankStrike doubles damage unless the target is strictly forward.
	FlankStrike Trait = 1 << iota
	// LineStrike adds 1 damage when the target is on a straight or diagonal line.
	LineStrike
	// Knockback pushes area targets one row further away.
	Knockback
	// MoveStrike deals 1 damage to every adjacent enemy after moving.
	MoveStrike
)

// Special is the kind of special action a god may take.
type Special uint8

const (
	NoSpecial Special = iota
	// ChainSpecial follows the god's summon, move or attack and chains an
	// adjacent enemy.
	ChainSpecial
	// SecondStrike follows the god's attack and hits a different enemy.
	SecondStrike
	// WitheringMoon replaces an attack and hits any adjacent enemy.
	WitheringMoon
)

type GodInfo struct {
	Name    string
	ID      byte
	Hit     int // maximum health
	Mov     int
	Dmg     int
	Rng     int
	MovDirs Dirs
	AtkDirs Dirs
	Area    Area
	Aura    Effects
	Traits  Trait
	Special Special
}

func (gi GodInfo) Has(t Trait) bool { return gi.Traits&t != 0 }

// pantheon is the immutable catalog; callers get copies through Info.
var pantheon = [GodCount]GodInfo{
	{Name: "Zeus", ID: 'Z', Hit: 10, Mov: 1, Dmg: 10, Rng: 3, MovDirs: All8, AtkDirs: Direct | Leap | Orthogonal},
	{Name: "Hephaestus", ID: 'H', Hit: 9, Mov: 2, Dmg: 7, Rng: 2, MovDirs: Orthogonal, AtkDirs: Direct | Orthogonal, Aura: DamageBoost},
	{Name: "Hera", ID: 'E', Hit: 8, Mov: 2, Dmg: 5, Rng: 2, MovDirs: Diagonal, AtkDirs: Diagonal, Traits: FlankStrike},
	{Name: "Poseidon", ID: 'P', Hit: 7, Mov: 3, Dmg: 4, Rng: 0, MovDirs: Orthogonal, Area: AreaFront, Traits: Knockback},
	{Name: "Apollo", ID: 'O', Hit: 6, Mov: 2, Dmg: 2, Rng: 3, MovDirs: All8, AtkDirs: All8, Traits: LineStrike},
	{Name: "Aphrodite", ID: 'A', Hit: 6, Mov: 3, Dmg: 6, Rng: 1, MovDirs: All8, AtkDirs: All8},
	{Name: "Ares", ID: 'R', Hit: 5, Mov: 3, Dmg: 5, Rng: 3, MovDirs: Direct | All8, AtkDirs: Direct | All8, Traits: MoveStrike},
	{Name: "Hermes", ID: 'M', Hit: 5, Mov: 3, Dmg: 3, Rng: 2, MovDirs: All8, AtkDirs: Direct | All8, Aura: SpeedBoost, Special: SecondStrike},
	{Name: "Dionysus", ID: 'D', Hit: 4, Mov: 1, Dmg: 4, Rng: 0, MovDirs: Knight, Area: AreaAround},
	{Name: "Artemis", ID: 'T', Hit: 4, Mov: 2, Dmg: 4, Rng: 2, MovDirs: All8, AtkDirs: Direct | Diagonal, Special: WitheringMoon},
	{Name: "Hades", ID: 'S', Hit: 3, Mov: 3, Dmg: 3, Rng: 1, MovDirs: Direct | All8, Area: AreaAround, Special: ChainSpecial},
	{Name: "Athena", ID: 'N', Hit: 3, Mov: 1, Dmg: 3, Rng: 3, MovDirs: All8, AtkDirs: Direct | All8, Aura: Shielded},
}

func (g God) Valid() bool { return g < GodCount }

func (g God) Info() GodInfo { return pantheon[g] }

func (g God) String() string {
	if !g.Valid() {
		return "?"
	}
	return pantheon[g].Name
}

// GodByID returns the god with the given one-letter id.
func GodByID(id byte) (God, bool) {
	for g := God(0); g < GodCount; g++ {
		if pantheon[g].ID == id {
			return g, true
		}
	}
	return GodCount, false
}
