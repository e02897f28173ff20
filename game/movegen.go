package game

// MaxActions bounds the number of actions in a single turn.
const MaxActions = 6

// GenerateTurns lists every legal turn for the player to move, in a stable
// order: summons first, then moves and attacks by field. The list is empty
// exactly when the game is over. The only legal turn of a player that can do
// nothing else is the pass.
func GenerateTurns(s GameState) []Turn {
	if s.IsOver() {
		return nil
	}
	g := &turnGen{player: s.player, seen: make(map[turnKey]struct{})}
	g.summons(s, budget{}, true)
	for _, god := range g.free(s) {
		g.moves(s, god, budget{}, true)
	}
	for _, god := range g.free(s) {
		g.attacks(s, god, budget{})
	}
	if len(g.turns) == 0 {
		g.turns = append(g.turns, Turn{})
	}
	return g.turns
}

type turnKey [MaxActions]int16

// budget tracks the once-per-turn bonuses already spent on the current path.
type budget struct {
	chained bool
	extra   bool
}

type turnGen struct {
	player Player
	prefix Turn
	turns  []Turn
	seen   map[turnKey]struct{}
}

func (g *turnGen) emit() {
	var key turnKey
	for i, a := range g.prefix {
		key[i] = int16(a.Int() + 1)
	}
	if _, dup := g.seen[key]; dup {
		return
	}
	g.seen[key] = struct{}{}
	g.turns = append(g.turns, append(Turn(nil), g.prefix...))
}

// push records the current prefix extended by a, then explores the
// continuations offered by next and the follow-up specials of the acting
// god. Nothing follows an action that decides the game.
func (g *turnGen) push(s GameState, a Action, b budget, next func(GameState, budget)) {
	s = s.act(a)
	g.prefix = append(g.prefix, a)
	g.emit()
	if !s.IsOver() {
		if next != nil {
			next(s, b)
		}
		for _, f := range g.followUps(s, a, b) {
			nb := b
			if pantheon[a.God].Special == ChainSpecial {
				nb.chained = true
			}
			after := s.act(f)
			g.prefix = append(g.prefix, f)
			g.emit()
			if next != nil && !after.IsOver() {
				next(after, nb)
			}
			g.prefix = g.prefix[:len(g.prefix)-1]
		}
	}
	g.prefix = g.prefix[:len(g.prefix)-1]
}

// followUps lists the specials that may directly follow a.
func (g *turnGen) followUps(s GameState, a Action, b budget) []Action {
	p := g.player
	switch pantheon[a.God].Special {
	case ChainSpecial:
		if b.chained || a.Kind == SpecialAction {
			return nil
		}
		var res []Action
		for _, n := range s.gods[p][a.God].field.Neighbors() {
			if q, e, ok := s.Occupant(n); ok && q != p && !s.gods[q][e].chained {
				res = append(res, Action{Kind: SpecialAction, God: a.God, Field: n})
			}
		}
		return res
	case SecondStrike:
		if a.Kind != Attack || !s.gods[p][a.God].IsAlive() {
			return nil
		}
		var res []Action
		for _, f := range s.attackTargets(p, a.God) {
			if f != a.Field {
				res = append(res, Action{Kind: SpecialAction, God: a.God, Field: f})
			}
		}
		return res
	}
	return nil
}

// free lists the player's alive and unchained gods in field order.
func (g *turnGen) free(s GameState) []God {
	var res []God
	for f := Field(0); f < FieldCount; f++ {
		if q, god, ok := s.Occupant(f); ok && q == g.player && !s.gods[q][god].chained {
			res = append(res, god)
		}
	}
	return res
}

// summons generates summons onto the own gate, each optionally followed by a
// move or an attack of the summoned god.
func (g *turnGen) summons(s GameState, b budget, moveAfter bool) {
	gate := Gates[g.player]
	if !s.IsEmpty(gate) {
		return
	}
	for god := God(0); god < GodCount; god++ {
		if s.gods[g.player][god].status != Available {
			continue
		}
		g.push(s, Action{Kind: Summon, God: god, Field: gate}, b, func(s GameState, b budget) {
			if moveAfter {
				g.moves(s, god, b, false)
			}
			g.attacks(s, god, b)
		})
	}
}

// moves generates the moves of one god. A god leaving the own gate may be
// followed by a summon when summonAfter is set.
func (g *turnGen) moves(s GameState, god God, b budget, summonAfter bool) {
	gs := s.gods[g.player][god]
	if !gs.IsAlive() || gs.chained {
		return
	}
	fromGate := gs.field == Gates[g.player]
	for _, to := range s.moveTargets(g.player, god) {
		g.push(s, Action{Kind: Move, God: god, Field: to}, b, func(after GameState, b budget) {
			if summonAfter && fromGate {
				g.summons(after, b, false)
			}
			g.extraMove(s, after, b)
		})
	}
}

// attacks generates the attacks of one god, including specials that take the
// place of an attack.
func (g *turnGen) attacks(s GameState, god God, b budget) {
	gs := s.gods[g.player][god]
	if !gs.IsAlive() || gs.chained {
		return
	}
	next := func(after GameState, b budget) { g.extraMove(s, after, b) }
	info := pantheon[god]
	if info.Area != NoArea {
		if s.areaHasEnemy(g.player, info.Area, gs.field) {
			g.push(s, Action{Kind: Attack, God: god, Field: gs.field}, b, next)
		}
	} else {
		for _, f := range s.attackTargets(g.player, god) {
			g.push(s, Action{Kind: Attack, God: god, Field: f}, b, next)
		}
	}
	if info.Special == WitheringMoon {
		for _, n := range gs.field.Neighbors() {
			if s.Owns(g.player.Other(), n) {
				g.push(s, Action{Kind: SpecialAction, God: god, Field: n}, b, next)
			}
		}
	}
}

// extraMove grants one move by any free god when the enemy standing on the
// enemy gate in before is dead in after. The guard's death counts even when a
// knockback pushes another enemy onto the gate.
func (g *turnGen) extraMove(before, after GameState, b budget) {
	q, guard, ok := before.Occupant(Gates[g.player.Other()])
	if b.extra || !ok || q == g.player || after.gods[q][guard].status != Dead {
		return
	}
	b.extra = true
	for _, god := range g.free(after) {
		g.moves(after, god, b, false)
	}
}

// moveTargets lists the empty fields god can move to.
func (s GameState) moveTargets(p Player, god God) []Field {
	info := pantheon[god]
	from := s.gods[p][god].field
	steps := info.Mov
	if s.auraAt(p, from)&SpeedBoost != 0 {
		steps++
	}
	if info.MovDirs.Has(Direct) {
		var res []Field
		s.rays(from, info.MovDirs, steps, func(f Field) {
			if s.IsEmpty(f) {
				res = append(res, f)
			}
		})
		return res
	}
	return s.reach(from, info.MovDirs, steps, func(f Field) bool { return s.IsEmpty(f) })
}

// attackTargets lists the enemy fields god can attack with a directed attack.
func (s GameState) attackTargets(p Player, god God) []Field {
	info := pantheon[god]
	from := s.gods[p][god].field
	enemy := func(f Field) bool { return s.Owns(p.Other(), f) }
	var res []Field
	if info.AtkDirs.Has(Direct) {
		s.rays(from, info.AtkDirs, info.Rng, func(f Field) {
			if enemy(f) {
				res = append(res, f)
			}
		})
		return res
	}
	for _, f := range s.reachAll(from, info.AtkDirs, info.Rng) {
		if enemy(f) {
			res = append(res, f)
		}
	}
	return res
}

func (s GameState) areaHasEnemy(p Player, area Area, from Field) bool {
	for _, f := range areaFields(p, area, from) {
		if s.Owns(p.Other(), f) {
			return true
		}
	}
	return false
}

// rays visits the fields on straight lines from f, up to n steps per
// direction. A ray ends at the first occupied field unless dirs has Leap.
func (s GameState) rays(f Field, dirs Dirs, n int, visit func(Field)) {
	for _, d := range dirs.Steps() {
		cur := f
		for i := 0; i < n; i++ {
			if cur = cur.Step(d); cur == NoField {
				break
			}
			visit(cur)
			if !s.IsEmpty(cur) && !dirs.Has(Leap) {
				break
			}
		}
	}
}

// reach returns the fields accepted by ok that can be reached from f in at
// most n steps, expanding only through accepted fields.
func (s GameState) reach(f Field, dirs Dirs, n int, ok func(Field) bool) []Field {
	var res []Field
	var seen [FieldCount]bool
	seen[f] = true
	frontier := []Field{f}
	for dist := 0; dist < n; dist++ {
		var nextFrontier []Field
		for _, cur := range frontier {
			for _, d := range dirs.Steps() {
				g := cur.Step(d)
				if g == NoField || seen[g] {
					continue
				}
				seen[g] = true
				if ok(g) {
					res = append(res, g)
					nextFrontier = append(nextFrontier, g)
				}
			}
		}
		frontier = nextFrontier
	}
	return res
}

// reachAll is like reach but also returns the occupied fields bordering the
// expansion, which is what an indirect attack can hit.
func (s GameState) reachAll(f Field, dirs Dirs, n int) []Field {
	var res []Field
	var seen [FieldCount]bool
	seen[f] = true
	frontier := []Field{f}
	for dist := 0; dist < n; dist++ {
		var nextFrontier []Field
		for _, cur := range frontier {
			for _, d := range dirs.Steps() {
				g := cur.Step(d)
				if g == NoField || seen[g] {
					continue
				}
				seen[g] = true
				res = append(res, g)
				if s.IsEmpty(g) {
					nextFrontier = append(nextFrontier, g)
				}
			}
		}
		frontier = nextFrontier
	}
	return res
}
