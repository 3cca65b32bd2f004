package generate

import "github.com/vovakirdan/pipeforge/internal/core"

// pathSearch carries the state of one winding-path search.
type pathSearch struct {
	w, h    int
	to      core.Coord
	blocked map[core.Coord]bool // Goals, walls and earlier path segments
	visited map[core.Coord]bool // Cells on the current path
	maxLen  int
	rng     *SimpleRNG
}

// WindingPath connects two goal cells through free interior cells using
// depth-first backtracking with randomized direction order. The result
// includes both endpoints. Returns nil when the search bound (grid area)
// is exhausted, which forces the whole generation attempt to restart.
//
// Cells farther than Manhattan distance 2 from the target are accepted
// only when at most one of their neighbors is already taken; this keeps
// the search from carving wide corridors and favors winding routes over
// block-filling ones.
func WindingPath(from, to core.Coord, w, h int, blocked map[core.Coord]bool, rng *SimpleRNG) []core.Coord {
	s := &pathSearch{
		w:       w,
		h:       h,
		to:      to,
		blocked: blocked,
		visited: map[core.Coord]bool{from: true},
		maxLen:  w * h,
		rng:     rng,
	}
	path := s.extend(from, []core.Coord{from})
	if path == nil {
		return nil
	}
	return path
}

func (s *pathSearch) extend(cur core.Coord, path []core.Coord) []core.Coord {
	if cur == s.to {
		return path
	}
	if len(path) >= s.maxLen {
		return nil
	}

	for _, i := range s.rng.Perm(4) {
		next := cur.Step(core.AllDirs[i])
		if !s.admissible(next) {
			continue
		}
		s.visited[next] = true
		if found := s.extend(next, append(path, next)); found != nil {
			return found
		}
		delete(s.visited, next)
	}
	return nil
}

// admissible reports whether the search may step onto the cell.
func (s *pathSearch) admissible(c core.Coord) bool {
	if c == s.to {
		return true
	}
	if c.X < 1 || c.X > s.w-2 || c.Y < 1 || c.Y > s.h-2 {
		return false
	}
	if s.visited[c] || s.blocked[c] {
		return false
	}
	if c.Manhattan(s.to) > 2 && s.takenNeighbors(c) > 1 {
		return false
	}
	return true
}

// takenNeighbors counts adjacent cells already claimed by this path or by
// earlier segments.
func (s *pathSearch) takenNeighbors(c core.Coord) int {
	n := 0
	for _, d := range core.AllDirs {
		adj := c.Step(d)
		if s.visited[adj] || s.blocked[adj] {
			n++
		}
	}
	return n
}
