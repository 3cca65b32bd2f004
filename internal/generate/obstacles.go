package generate

import "github.com/vovakirdan/pipeforge/internal/core"

// clusterShapes are the small room-wall footprints sampled during obstacle
// placement: horizontal pair, horizontal triple, vertical pair, L-shape.
var clusterShapes = [][]core.Coord{
	{{X: 0, Y: 0}, {X: 1, Y: 0}},
	{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}},
	{{X: 0, Y: 0}, {X: 0, Y: 1}},
	{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}},
}

// PlaceWallClusters scatters up to count room-shaped wall clusters across
// the grid. A cluster is accepted only when every cell is interior and not
// yet taken by a goal, path segment or earlier wall. Placement is best
// effort: after count*12 failed samples the clusters placed so far are
// returned.
func PlaceWallClusters(w, h, count int, taken map[core.Coord]bool, walls map[core.Coord]bool, rng *SimpleRNG) []core.Coord {
	placed := make([]core.Coord, 0, count*3)
	remaining := count

	for attempt := 0; attempt < count*12 && remaining > 0; attempt++ {
		anchor := core.C(1+rng.Intn(maxInt(w-2, 1)), 1+rng.Intn(maxInt(h-2, 1)))
		shape := clusterShapes[rng.Intn(len(clusterShapes))]

		cells := make([]core.Coord, len(shape))
		ok := true
		for i, off := range shape {
			c := anchor.Add(off.X, off.Y)
			if c.X < 1 || c.X > w-2 || c.Y < 1 || c.Y > h-2 || taken[c] || walls[c] {
				ok = false
				break
			}
			cells[i] = c
		}
		if !ok {
			continue
		}

		for _, c := range cells {
			walls[c] = true
			placed = append(placed, c)
		}
		remaining--
	}
	return placed
}

// PlaceBranches grows up to count dead-end stubs off random main-path
// cells. Each stub walks 2-3 steps into free interior cells, taking the
// first admissible direction in randomized order at every step. Stubs are
// recorded in the branch map only: they connect to the solution path but
// never contribute solution moves. Best effort; a stub that cannot take a
// single step is simply skipped.
func PlaceBranches(mainCells []core.Coord, count, w, h int, taken, walls map[core.Coord]bool, branch ConnMap, rng *SimpleRNG) int {
	if len(mainCells) == 0 || count <= 0 {
		return 0
	}

	grown := 0
	for i := 0; i < count; i++ {
		root := mainCells[rng.Intn(len(mainCells))]
		steps := 2 + rng.Intn(2)
		cur := root
		walked := 0

		for s := 0; s < steps; s++ {
			var next core.Coord
			found := false
			for _, di := range rng.Perm(4) {
				cand := cur.Step(core.AllDirs[di])
				if cand.X < 1 || cand.X > w-2 || cand.Y < 1 || cand.Y > h-2 {
					continue
				}
				if taken[cand] || walls[cand] {
					continue
				}
				next = cand
				found = true
				break
			}
			if !found {
				break
			}
			branch.Link(cur, next)
			taken[next] = true
			cur = next
			walked++
		}
		if walked > 0 {
			grown++
		}
	}
	return grown
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
