package generate

import "github.com/vovakirdan/pipeforge/internal/core"

// Connected reports whether all goal positions are mutually reachable
// through path and node tiles whose adjacent openings reciprocate: a step
// from A to B is taken only when A exposes the direction toward B and B
// exposes the opposite direction back. Walls and empty cells block
// traversal. With fewer than two goals the check trivially succeeds.
//
// The check is pure: it never mutates the board, so it is reused both to
// reject accidentally pre-solved scrambles and to confirm an embedded
// solution.
func Connected(b *core.Board, goals []core.Coord) bool {
	if len(goals) < 2 {
		return true
	}

	visited := make(map[core.Coord]bool)
	queue := []core.Coord{goals[0]}
	visited[goals[0]] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		tile := b.At(cur)
		if tile == nil || tile.Kind == core.KindWall {
			continue
		}

		for _, d := range tile.Conns.Dirs() {
			next := cur.Step(d)
			if visited[next] {
				continue
			}
			nt := b.At(next)
			if nt == nil || nt.Kind == core.KindWall {
				continue
			}
			if !nt.Conns.Has(d.Opposite()) {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}

	for _, g := range goals {
		if !visited[g] {
			return false
		}
	}
	return true
}
