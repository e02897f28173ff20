package game

import "strings"

// In the compact history every action becomes one value packed into two
// symbols, least significant first. Actions that are followed by another
// action of the same turn are offset by ActionSpace; a pass is 2*ActionSpace.
const (
	moreOffset = ActionSpace
	passValue  = 2 * ActionSpace
)

// FormatCompactHistory packs turns into the compact history form.
func FormatCompactHistory(turns []Turn) string {
	var sb strings.Builder
	put := func(v int) {
		sb.WriteByte(Digits[v&63])
		sb.WriteByte(Digits[v>>6])
	}
	for _, t := range turns {
		if len(t) == 0 {
			put(passValue)
			continue
		}
		for i, a := range t {
			v := a.Int()
			if i < len(t)-1 {
				v += moreOffset
			}
			put(v)
		}
	}
	return sb.String()
}

// ParseCompactHistory is the inverse of FormatCompactHistory.
func ParseCompactHistory(s string) ([]Turn, error) {
	fail := func(pos int, reason string) error {
		return &DecodeError{Input: s, Pos: pos, Reason: reason}
	}
	if len(s)%2 != 0 {
		return nil, fail(len(s)-1, "odd length")
	}
	var turns []Turn
	var cur Turn
	for pos := 0; pos < len(s); pos += 2 {
		lo, hi := digitValue(s[pos]), digitValue(s[pos+1])
		if lo < 0 {
			return nil, fail(pos, "invalid character")
		}
		if hi < 0 {
			return nil, fail(pos+1, "invalid character")
		}
		v := lo | hi<<6
		switch {
		case v > passValue:
			return nil, fail(pos, "value out of range")
		case v == passValue:
			if len(cur) > 0 {
				return nil, fail(pos, "pass inside a turn")
			}
			turns = append(turns, Turn{})
		case v >= moreOffset:
			a, _ := ActionFromInt(v - moreOffset)
			cur = append(cur, a)
		default:
			a, _ := ActionFromInt(v)
			turns = append(turns, append(cur, a))
			cur = nil
		}
	}
	if len(cur) > 0 {
		return nil, fail(len(s), "unterminated turn")
	}
	return turns, nil
}
