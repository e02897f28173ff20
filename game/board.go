package game

import "golang.org/x/exp/constraints"

//       a  b  c  d  e  f  g  h  i
//   9              40               9
//   8           37 38 39            8
//   7        32 33 34 35 36         7
//   6     25 26 27 28 29 30 31      6
//   5  16 17 18 19 20 21 22 23 24   5
//   4      9 10 11 12 13 14 15      4
//   3         4  5  6  7  8         3
//   2            1  2  3            2
//   1               0               1
//       a  b  c  d  e  f  g  h  i

const (
	FieldCount = 41
	BoardSize  = 9
)

// Field is a board cell index in [0, FieldCount), or NoField.
type Field int8

const NoField Field = -1

type Coords struct {
	R, C int
}

type Dir struct {
	DR, DC int
}

var orthoDirs = []Dir{{-1, 0}, {0, +1}, {0, -1}, {+1, 0}}
var diagDirs = []Dir{{-1, -1}, {-1, +1}, {+1, -1}, {+1, +1}}
var allDirs = append(append([]Dir{}, orthoDirs...), diagDirs...)
var knightDirs = []Dir{
	{-2, -1}, {-2, +1}, {-1, -2}, {-1, +2},
	{+1, -2}, {+1, +2}, {+2, -1}, {+2, +1},
}

// Gates are the fields where each player summons their gods.
var Gates = [2]Field{0, FieldCount - 1}

var (
	fieldByCoords [BoardSize][BoardSize]Field
	fieldCoords   [FieldCount]Coords
	fieldNames    [FieldCount]string
	neighbors     [FieldCount][]Field
)

func init() {
	i := 0
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			fieldByCoords[r][c] = NoField
			if OnBoard(r, c) {
				fieldByCoords[r][c] = Field(i)
				fieldCoords[i] = Coords{r, c}
				fieldNames[i] = string([]byte{byte('a' + c), byte('1' + r)})
				i++
			}
		}
	}
	for f := Field(0); f < FieldCount; f++ {
		// Sorted by field index; Step visits rows bottom up.
		for _, d := range []Dir{{-1, -1}, {-1, 0}, {-1, +1}, {0, -1}, {0, +1}, {+1, -1}, {+1, 0}, {+1, +1}} {
			if g := f.Step(d); g != NoField {
				neighbors[f] = append(neighbors[f], g)
			}
		}
	}
}

// OnBoard reports whether (r, c) lies within Manhattan distance 4 of the center.
func OnBoard(r, c int) bool {
	return abs(r-4)+abs(c-4) < 5
}

// FieldAt returns the field at the given coordinates, or NoField.
func FieldAt(r, c int) Field {
	if r < 0 || r >= BoardSize || c < 0 || c >= BoardSize {
		return NoField
	}
	return fieldByCoords[r][c]
}

// ParseField returns the field with the given name (e.g. "e1").
func ParseField(name string) (Field, bool) {
	if len(name) != 2 {
		return NoField, false
	}
	f := FieldAt(int(name[1])-'1', int(name[0])-'a')
	return f, f != NoField
}

func (f Field) Valid() bool { return 0 <= f && f < FieldCount }

func (f Field) Coords() Coords { return fieldCoords[f] }

func (f Field) String() string {
	if !f.Valid() {
		return "-"
	}
	return fieldNames[f]
}

// Step returns the field reached by moving one step in direction d.
func (f Field) Step(d Dir) Field {
	c := fieldCoords[f]
	return FieldAt(c.R+d.DR, c.C+d.DC)
}

// Neighbors returns the (up to eight) adjacent fields in ascending order.
func (f Field) Neighbors() []Field { return neighbors[f] }

// Adjacent reports whether f and g touch orthogonally or diagonally.
func (f Field) Adjacent(g Field) bool {
	a, b := fieldCoords[f], fieldCoords[g]
	return f != g && abs(a.R-b.R) <= 1 && abs(a.C-b.C) <= 1
}

// Distance is the Manhattan distance between two fields.
func Distance(f, g Field) int {
	a, b := fieldCoords[f], fieldCoords[g]
	return abs(a.R-b.R) + abs(a.C-b.C)
}

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
