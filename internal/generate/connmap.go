package generate

import "github.com/vovakirdan/pipeforge/internal/core"

// ConnMap accumulates the openings each cell must expose. The controller
// keeps one map for the main solution path and one for decoy branches and
// merges them per cell when materializing tiles.
type ConnMap map[core.Coord]core.DirSet

// Link records a connection between two adjacent cells: a gains the
// opening toward b and b gains the reciprocal opening. Non-adjacent pairs
// are ignored.
func (m ConnMap) Link(a, b core.Coord) {
	for _, d := range core.AllDirs {
		if a.Step(d) == b {
			m[a] = m[a].With(d)
			m[b] = m[b].With(d.Opposite())
			return
		}
	}
}

// Merge returns a new map with the per-cell union of both maps.
func (m ConnMap) Merge(o ConnMap) ConnMap {
	out := make(ConnMap, len(m)+len(o))
	for c, s := range m {
		out[c] = s
	}
	for c, s := range o {
		out[c] = out[c].Union(s)
	}
	return out
}
