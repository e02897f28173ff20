package game

import "strings"

// Digits is the symbol alphabet shared by the state and compact turn codecs.
const Digits = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

const (
	deadSymbol      = FieldCount
	availableSymbol = FieldCount + 1
	reservedSymbol  = FieldCount + 2
)

func digitValue(c byte) int {
	return strings.IndexByte(Digits, c)
}

// Encode returns the text form of the state: one symbol for the player to
// move, then one or two symbols per god, light gods first.
func (s GameState) Encode() string {
	var sb strings.Builder
	sb.Grow(1 + 2*2*int(GodCount))
	sb.WriteByte(Digits[s.player])
	for p := range s.gods {
		for _, gs := range s.gods[p] {
			switch gs.status {
			case Alive:
				hpfx := int(gs.hp) << 1
				if gs.chained {
					hpfx |= 1
				}
				sb.WriteByte(Digits[gs.field])
				sb.WriteByte(Digits[hpfx])
			case Dead:
				sb.WriteByte(Digits[deadSymbol])
			case Available:
				sb.WriteByte(Digits[availableSymbol])
			default:
				sb.WriteByte(Digits[reservedSymbol])
			}
		}
	}
	return sb.String()
}

type stateReader struct {
	input string
	pos   int
}

func (r *stateReader) fail(reason string) error {
	return &DecodeError{Input: r.input, Pos: r.pos, Reason: reason}
}

// read consumes one symbol and checks that its value is below limit.
func (r *stateReader) read(limit int) (int, error) {
	if r.pos >= len(r.input) {
		return 0, r.fail("unexpected end of input")
	}
	v := digitValue(r.input[r.pos])
	if v < 0 {
		return 0, r.fail("invalid character")
	}
	if v >= limit {
		return 0, r.fail("value out of range")
	}
	r.pos++
	return v, nil
}

// DecodeState parses the text form produced by Encode. The result is
// re-encoded and compared with the input, so every accepted string
// round-trips exactly.
func DecodeState(text string) (GameState, error) {
	r := &stateReader{input: text}
	var s GameState
	player, err := r.read(2)
	if err != nil {
		return GameState{}, err
	}
	s.player = Player(player)
	for p := Light; p <= Dark; p++ {
		for g := God(0); g < GodCount; g++ {
			gs, err := r.readGod(g)
			if err != nil {
				return GameState{}, err
			}
			if gs.status == Alive && s.board[gs.field] != 0 {
				return GameState{}, &DecodeError{Input: text, Pos: r.pos - 2, Reason: "field " + gs.field.String() + " occupied twice"}
			}
			s.setGod(p, g, gs)
		}
	}
	if r.pos != len(text) {
		return GameState{}, r.fail("trailing data")
	}
	if s.Encode() != text {
		return GameState{}, &DecodeError{Input: text, Pos: 0, Reason: "round trip mismatch"}
	}
	return s, nil
}

func (r *stateReader) readGod(g God) (GodState, error) {
	v, err := r.read(FieldCount + 3)
	if err != nil {
		return GodState{}, err
	}
	switch v {
	case deadSymbol:
		return DeadGod(), nil
	case availableSymbol:
		return AvailableGod(), nil
	case reservedSymbol:
		return ReservedGod(), nil
	}
	hpfx, err := r.read((pantheon[g].Hit + 1) * 2)
	if err != nil {
		return GodState{}, err
	}
	if hpfx>>1 == 0 {
		r.pos--
		return GodState{}, r.fail("alive god without health")
	}
	return AliveGod(hpfx>>1, Field(v), hpfx&1 == 1), nil
}

// MustDecodeState is like DecodeState but panics on error. It simplifies
// initialization of fixtures.
func MustDecodeState(text string) GameState {
	s, err := DecodeState(text)
	if err != nil {
		panic(err)
	}
	return s
}
