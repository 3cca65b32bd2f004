package core

// Shape is one canonical pipe-opening pattern. Code identifies the shape
// family ('I' straight, 'L' corner, 'T' tee, 'X' cross) in the compact
// level encoding.
type Shape struct {
	Name  string
	Code  byte
	Conns DirSet
}

// Catalog lists every pipe shape, ordered by opening count so MatchShape
// finds the smallest fitting shape first: two straights, four corners,
// four tees and the cross.
var Catalog = []Shape{
	{Name: "straight-v", Code: 'I', Conns: NewDirSet(DirUp, DirDown)},
	{Name: "straight-h", Code: 'I', Conns: NewDirSet(DirLeft, DirRight)},
	{Name: "corner-ur", Code: 'L', Conns: NewDirSet(DirUp, DirRight)},
	{Name: "corner-rd", Code: 'L', Conns: NewDirSet(DirRight, DirDown)},
	{Name: "corner-dl", Code: 'L', Conns: NewDirSet(DirDown, DirLeft)},
	{Name: "corner-lu", Code: 'L', Conns: NewDirSet(DirLeft, DirUp)},
	{Name: "tee-u", Code: 'T', Conns: NewDirSet(DirLeft, DirUp, DirRight)},
	{Name: "tee-r", Code: 'T', Conns: NewDirSet(DirUp, DirRight, DirDown)},
	{Name: "tee-d", Code: 'T', Conns: NewDirSet(DirRight, DirDown, DirLeft)},
	{Name: "tee-l", Code: 'T', Conns: NewDirSet(DirDown, DirLeft, DirUp)},
	{Name: "cross", Code: 'X', Conns: DirSetAll},
}

// cross is the universal fallback shape.
var cross = Catalog[len(Catalog)-1]

// MatchShape returns the smallest catalog shape and a 0-3 clockwise
// rotation count such that the rotated shape exposes a superset of the
// required openings. Any request a smaller shape cannot cover falls back
// to the cross, so matching never fails. Pure and stateless.
func MatchShape(required DirSet) (Shape, int) {
	for _, s := range Catalog {
		for rot := 0; rot < 4; rot++ {
			if s.Conns.Rotate(rot).Contains(required) {
				return s, rot
			}
		}
	}
	return cross, 0
}

// BaseShape returns the canonical (first) shape for a family code. The
// compact level codec reconstructs openings from "code+rotation" pairs
// against these bases.
func BaseShape(code byte) (Shape, bool) {
	for _, s := range Catalog {
		if s.Code == code {
			return s, true
		}
	}
	return Shape{}, false
}

// EncodeShape finds a family code and a rotation of that family's base
// shape that reproduce the given openings exactly. Returns false when the
// openings match no catalog shape under any rotation.
func EncodeShape(conns DirSet) (byte, int, bool) {
	seen := map[byte]bool{}
	for _, s := range Catalog {
		if seen[s.Code] {
			continue
		}
		seen[s.Code] = true
		for rot := 0; rot < 4; rot++ {
			if s.Conns.Rotate(rot) == conns {
				return s.Code, rot, true
			}
		}
	}
	return 0, 0, false
}
