package generate

import (
	"sort"

	"github.com/vovakirdan/pipeforge/internal/core"
	"github.com/vovakirdan/pipeforge/internal/levels"
)

// BuildTiles turns the accumulated connection maps into the final tile set
// and the embedded solution. Every non-goal cell with required openings is
// materialized via the shape catalog in solved orientation, then scrambled
// by 1-3 clockwise quarter turns so no tile starts solved. Moves recording
// the inverse rotation are emitted only for unlocked main-path cells;
// branch decoys are scrambled for visual consistency but never appear in
// the solution.
//
// lockedFraction of the main-path cells (rounded down) are kept in solved
// orientation with rotation disabled, acting as free hints.
func BuildTiles(w, h int, main, branch ConnMap, goals, walls []core.Coord, lockedFraction float64, rng *SimpleRNG) ([]core.Tile, []levels.Move) {
	goalSet := make(map[core.Coord]bool, len(goals))
	for _, g := range goals {
		goalSet[g] = true
	}

	tiles := make([]core.Tile, 0, len(walls)+len(goals)+len(main)+len(branch))
	for _, c := range walls {
		tiles = append(tiles, core.WallTile(c))
	}
	for _, g := range goals {
		tiles = append(tiles, core.GoalTile(g))
	}

	merged := main.Merge(branch)
	cells := sortedCells(merged)

	locked := pickLocked(main, goalSet, lockedFraction, rng)

	var moves []levels.Move
	for _, c := range cells {
		if goalSet[c] {
			continue
		}
		shape, rot := core.MatchShape(merged[c])
		solved := shape.Conns.Rotate(rot)

		if locked[c] {
			tiles = append(tiles, core.PathTile(c, solved, false))
			continue
		}

		offset := 1 + rng.Intn(3) // Never 0: the tile must not start solved
		tiles = append(tiles, core.PathTile(c, solved.Rotate(offset), true))

		if _, onMain := main[c]; onMain {
			moves = append(moves, levels.Move{Pos: c, Rotations: 4 - offset})
		}
	}

	return tiles, moves
}

// pickLocked selects the main-path cells to materialize as fixed hints.
func pickLocked(main ConnMap, goalSet map[core.Coord]bool, fraction float64, rng *SimpleRNG) map[core.Coord]bool {
	locked := make(map[core.Coord]bool)
	if fraction <= 0 {
		return locked
	}
	if fraction > 1 {
		fraction = 1
	}

	candidates := make([]core.Coord, 0, len(main))
	for _, c := range sortedCells(main) {
		if !goalSet[c] {
			candidates = append(candidates, c)
		}
	}
	n := int(fraction * float64(len(candidates)))
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	for _, c := range candidates[:n] {
		locked[c] = true
	}
	return locked
}

// sortedCells returns the map's keys in row-major order so tile and move
// emission is deterministic for a given seed.
func sortedCells(m ConnMap) []core.Coord {
	cells := make([]core.Coord, 0, len(m))
	for c := range m {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
	return cells
}
