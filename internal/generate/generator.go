// Package generate implements the procedural pipe-puzzle generator: it
// manufactures solvable connectivity levels from random seeds, embeds a
// verifiable solution and rejects any output that is trivially solved or
// unsolvable.
package generate

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/pipeforge/internal/config"
	"github.com/vovakirdan/pipeforge/internal/core"
	"github.com/vovakirdan/pipeforge/internal/levels"
)

// ErrNotGenerated is returned when every attempt was abandoned. Callers
// are expected to retry with different parameters or accept a smaller
// batch; a partial or inconsistent level is never returned.
var ErrNotGenerated = errors.New("generate: no level produced")

// maxAttempts bounds the retry loop of one Generate call.
const maxAttempts = 40

// GenParams configures one level generation.
type GenParams struct {
	Cols  int
	Rows  int
	Goals int

	Difficulty  config.DifficultyProfile
	Compression string // Profile name; empty picks one at random per attempt

	WallClusters   int     // Interior wall clusters; -1 draws from the difficulty range
	Branches       int     // Dead-end decoys; -1 draws from the difficulty range
	LockedFraction float64 // Fraction of main-path tiles materialized as fixed hints

	Seed        uint64
	MaxAttempts int // 0 means the default of 40

	// Identity of the produced level
	ID    string
	Name  string
	World int
}

// DefaultGenParams returns sensible defaults for a medium 11x9 puzzle.
func DefaultGenParams() GenParams {
	profile, _ := config.DefaultDifficultyConfig().ProfileFor(config.TierMedium)
	return GenParams{
		Cols:         11,
		Rows:         9,
		Goals:        2,
		Difficulty:   profile,
		WallClusters: -1,
		Branches:     -1,
		Seed:         0,
		MaxAttempts:  maxAttempts,
	}
}

// Generate is the public entry point. It runs up to MaxAttempts
// self-contained attempts and returns the first level that survives all
// consistency checks, or ErrNotGenerated once the attempts are exhausted.
// The same params and seed always produce the same level.
func Generate(p GenParams) (*levels.Level, error) {
	if p.Cols < 5 || p.Rows < 5 {
		return nil, fmt.Errorf("generate: grid %dx%d too small, need at least 5x5", p.Cols, p.Rows)
	}
	if p.Goals < 2 {
		return nil, fmt.Errorf("generate: need at least 2 goals, got %d", p.Goals)
	}
	if p.Compression != "" {
		if _, ok := ProfileByName(p.Compression); !ok {
			return nil, fmt.Errorf("generate: unknown compression profile %q", p.Compression)
		}
	}

	attempts := p.MaxAttempts
	if attempts <= 0 {
		attempts = maxAttempts
	}

	rng := NewRNG(p.Seed)
	for a := 0; a < attempts; a++ {
		if lvl := attempt(p, rng); lvl != nil {
			return lvl, nil
		}
	}
	return nil, ErrNotGenerated
}

// attempt runs one full generation pass. Any phase failure abandons the
// attempt by returning nil; the caller simply tries again with the
// advanced RNG state.
func attempt(p GenParams, rng *SimpleRNG) *levels.Level {
	profile, ok := ProfileByName(p.Compression)
	if !ok {
		profile = RandomProfile(rng)
	}

	// 1. Border walls
	wallCells := borderWalls(p.Cols, p.Rows)
	walls := make(map[core.Coord]bool, len(wallCells))
	for _, c := range wallCells {
		walls[c] = true
	}

	// 2. Goal placement inside the compression zone
	goals, ok := PlaceGoals(p.Cols, p.Rows, p.Goals, profile, rng)
	if !ok {
		return nil
	}
	taken := make(map[core.Coord]bool, len(goals))
	for _, g := range goals {
		taken[g] = true
	}

	// 3. Winding paths between consecutive goal pairs
	main := make(ConnMap)
	var mainCells []core.Coord
	for i := 0; i+1 < len(goals); i++ {
		path := WindingPath(goals[i], goals[i+1], p.Cols, p.Rows, taken, rng)
		if path == nil {
			return nil
		}
		for j := 1; j < len(path); j++ {
			main.Link(path[j-1], path[j])
		}
		for _, c := range path[1 : len(path)-1] {
			taken[c] = true
			mainCells = append(mainCells, c)
		}
	}

	// 4. Interior wall obstacles
	wallCount := p.WallClusters
	if wallCount < 0 {
		wallCount = rangeDraw(p.Difficulty.MinWalls, p.Difficulty.MaxWalls, rng)
	}
	wallCells = append(wallCells, PlaceWallClusters(p.Cols, p.Rows, wallCount, taken, walls, rng)...)

	// 5. Dead-end decoy branches off the main path
	branchCount := p.Branches
	if branchCount < 0 {
		branchCount = rangeDraw(p.Difficulty.MinBranches, p.Difficulty.MaxBranches, rng)
	}
	branch := make(ConnMap)
	PlaceBranches(mainCells, branchCount, p.Cols, p.Rows, taken, walls, branch, rng)

	// 6. Materialize and scramble
	tiles, moves := BuildTiles(p.Cols, p.Rows, main, branch, goals, wallCells, p.LockedFraction, rng)

	// 7. The scrambled board must not already be solved
	board := core.BoardFromTiles(p.Cols, p.Rows, tiles)
	if Connected(board, goals) {
		return nil
	}

	// 8. Applying the solution must connect all goals. A failure here
	// signals a materializer defect, not a normal runtime path.
	solved := board.Clone()
	totalRotations := 0
	for _, m := range moves {
		if t := solved.At(m.Pos); t != nil {
			t.RotateCW(m.Rotations)
		}
		totalRotations += m.Rotations
	}
	if !Connected(solved, goals) {
		return nil
	}

	// 9. A zero-move puzzle is degenerate
	if totalRotations == 0 {
		return nil
	}

	// 10. Assemble the immutable level
	return &levels.Level{
		ID:            p.ID,
		Name:          p.Name,
		World:         p.World,
		Cols:          p.Cols,
		Rows:          p.Rows,
		Tiles:         tiles,
		Goals:         goals,
		MaxMoves:      totalRotations + p.Difficulty.MovePadding,
		PressureDelay: p.Difficulty.PressureDelay,
		Compression:   profile.Name,
		Solution:      moves,
	}
}

// borderWalls returns the outer ring of wall cells in deterministic order.
func borderWalls(w, h int) []core.Coord {
	cells := make([]core.Coord, 0, 2*w+2*h-4)
	for x := 0; x < w; x++ {
		cells = append(cells, core.C(x, 0), core.C(x, h-1))
	}
	for y := 1; y < h-1; y++ {
		cells = append(cells, core.C(0, y), core.C(w-1, y))
	}
	return cells
}

// rangeDraw picks a value uniformly from [lo, hi].
func rangeDraw(lo, hi int, rng *SimpleRNG) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
