package game

// Play applies t to s without checking legality and hands the move to the
// other player. t must come from GenerateTurns(s); use ApplyTurn for turns
// from untrusted sources.
func (s GameState) Play(t Turn) GameState {
	for _, a := range t {
		s = s.act(a)
	}
	s.player = s.player.Other()
	return s
}

// ApplyTurn validates t against the legal turns of s and returns the
// resulting state. s itself is never modified.
func ApplyTurn(s GameState, t Turn) (GameState, error) {
	for _, legal := range GenerateTurns(s) {
		if legal.Equal(t) {
			return s.Play(t), nil
		}
	}
	return s, &RejectedTurnError{Turn: t, State: s}
}

// act executes a single action for the player to move.
func (s GameState) act(a Action) GameState {
	p := s.player
	info := pantheon[a.God]
	switch a.Kind {
	case Summon:
		s.setGod(p, a.God, AliveGod(info.Hit, Gates[p], false))
	case Move:
		gs := s.gods[p][a.God]
		s.setGod(p, a.God, AliveGod(int(gs.hp), a.Field, gs.chained))
		if info.Has(MoveStrike) {
			for _, n := range a.Field.Neighbors() {
				if s.Owns(p.Other(), n) {
					s.hit(n, 1)
				}
			}
		}
	case Attack:
		dmg := s.damage(p, a.God, a.Field)
		if info.Area != NoArea {
			s.hitArea(info, a.Field, dmg)
		} else {
			s.hit(a.Field, dmg)
		}
	case SpecialAction:
		switch info.Special {
		case ChainSpecial:
			q, g, _ := s.Occupant(a.Field)
			gs := s.gods[q][g]
			s.gods[q][g] = AliveGod(int(gs.hp), gs.field, true)
		case SecondStrike, WitheringMoon:
			s.hit(a.Field, s.damage(p, a.God, a.Field))
		}
	}
	s.releaseChains()
	return s
}

// damage returns the damage p's god deals when attacking target.
func (s GameState) damage(p Player, g God, target Field) int {
	info := pantheon[g]
	src := s.gods[p][g].field
	d := info.Dmg
	a, b := src.Coords(), target.Coords()
	dr, dc := b.R-a.R, b.C-a.C
	if info.Has(FlankStrike) && dr*p.Forward() <= 0 {
		d *= 2
	}
	if info.Has(LineStrike) && (dr == 0 || dc == 0 || abs(dr) == abs(dc)) {
		d++
	}
	if s.auraAt(p, src)&DamageBoost != 0 {
		d++
	}
	return d
}

// hit deals dmg to the god on field f unless it is shielded.
func (s *GameState) hit(f Field, dmg int) {
	q, g, ok := s.Occupant(f)
	if !ok || s.auraAt(q, f)&Shielded != 0 {
		return
	}
	gs := s.gods[q][g]
	if int(gs.hp) <= dmg {
		s.setGod(q, g, DeadGod())
		return
	}
	s.gods[q][g] = AliveGod(int(gs.hp)-dmg, gs.field, gs.chained)
}

// hitArea damages every enemy in the attacker's area. Gods radiating a
// shield are hit first so that a fallen shield no longer protects the rest.
func (s *GameState) hitArea(info GodInfo, from Field, dmg int) {
	p := s.player
	area := areaFields(p, info.Area, from)
	var rest []Field
	for _, f := range area {
		if q, g, ok := s.Occupant(f); ok && q != p {
			if pantheon[g].Aura&Shielded != 0 {
				s.hit(f, dmg)
			} else {
				rest = append(rest, f)
			}
		}
	}
	for _, f := range rest {
		s.hit(f, dmg)
	}
	if info.Has(Knockback) {
		s.knockBack(area)
	}
}

// knockBack pushes surviving enemies in area one row forward, far row first,
// when the field behind them is on the board and empty. area must list the
// far row last.
func (s *GameState) knockBack(area []Field) {
	p := s.player
	fwd := p.Forward()
	for i := len(area) - 1; i >= 0; i-- {
		f := area[i]
		q, g, ok := s.Occupant(f)
		if !ok || q == p {
			continue
		}
		c := f.Coords()
		behind := FieldAt(c.R+fwd, c.C)
		if behind == NoField || !s.IsEmpty(behind) {
			continue
		}
		gs := s.gods[q][g]
		s.setGod(q, g, AliveGod(int(gs.hp), behind, gs.chained))
	}
}

// areaFields lists the fields covered by an area attack from field f, near
// row first.
func areaFields(p Player, area Area, f Field) []Field {
	switch area {
	case AreaFront:
		c := f.Coords()
		fwd := p.Forward()
		var res []Field
		for dr := 1; dr <= 2; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if g := FieldAt(c.R+dr*fwd, c.C+dc); g != NoField {
					res = append(res, g)
				}
			}
		}
		return res
	case AreaAround:
		return f.Neighbors()
	}
	return nil
}

// releaseChains clears the chained flag of every god that is no longer next
// to an enemy god able to chain.
func (s *GameState) releaseChains() {
	for q := Light; q <= Dark; q++ {
		for g, gs := range s.gods[q] {
			if !gs.chained || s.nextToChainer(q.Other(), gs.field) {
				continue
			}
			s.gods[q][g] = AliveGod(int(gs.hp), gs.field, false)
		}
	}
}

func (s GameState) nextToChainer(p Player, f Field) bool {
	for _, n := range f.Neighbors() {
		if q, g, ok := s.Occupant(n); ok && q == p && pantheon[g].Special == ChainSpecial {
			return true
		}
	}
	return false
}
