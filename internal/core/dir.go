package core

import (
	"math/bits"
	"strings"
)

// Dir represents one of the four grid directions a pipe opening can face.
type Dir uint8

const (
	DirUp Dir = iota
	DirRight
	DirDown
	DirLeft
)

// AllDirs lists the four directions in clockwise order starting from up.
var AllDirs = [4]Dir{DirUp, DirRight, DirDown, DirLeft}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the opposite direction.
func (d Dir) Opposite() Dir {
	switch d {
	case DirUp:
		return DirDown
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return d
	}
}

// CW returns the direction rotated n quarter turns clockwise.
func (d Dir) CW(n int) Dir {
	return Dir((int(d) + n%4 + 4) % 4)
}

// DirSet is a bitmask of directions. Bit i corresponds to Dir(i), so the
// whole set rotates clockwise with a 4-bit circular shift.
type DirSet uint8

// NewDirSet builds a set from the given directions.
func NewDirSet(dirs ...Dir) DirSet {
	var s DirSet
	for _, d := range dirs {
		s = s.With(d)
	}
	return s
}

// DirSetAll is the full set of four openings.
const DirSetAll DirSet = 0b1111

// Has reports whether the set contains d.
func (s DirSet) Has(d Dir) bool {
	return s&(1<<d) != 0
}

// With returns the set with d added.
func (s DirSet) With(d Dir) DirSet {
	return s | (1 << d)
}

// Union returns the union of two sets.
func (s DirSet) Union(o DirSet) DirSet {
	return s | o
}

// Contains reports whether every direction in o is also in s.
func (s DirSet) Contains(o DirSet) bool {
	return s&o == o
}

// Count returns the number of directions in the set.
func (s DirSet) Count() int {
	return bits.OnesCount8(uint8(s & DirSetAll))
}

// Rotate returns the set with every direction rotated n quarter turns
// clockwise. Negative n rotates counter-clockwise.
func (s DirSet) Rotate(n int) DirSet {
	n = (n%4 + 4) % 4
	v := uint8(s & DirSetAll)
	return DirSet((v<<n | v>>(4-n)) & 0b1111)
}

// Dirs returns the directions in the set in clockwise order.
func (s DirSet) Dirs() []Dir {
	out := make([]Dir, 0, 4)
	for _, d := range AllDirs {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// String returns a compact representation such as "Up|Right".
func (s DirSet) String() string {
	if s&DirSetAll == 0 {
		return "None"
	}
	parts := make([]string, 0, 4)
	for _, d := range s.Dirs() {
		parts = append(parts, d.String())
	}
	return strings.Join(parts, "|")
}
