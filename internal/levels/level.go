// Package levels defines the level data model, its compact YAML encoding
// and a directory loader. This package depends on core but not on the
// generator, so consumers can load and render levels without pulling in
// generation logic.
package levels

import "github.com/vovakirdan/pipeforge/internal/core"

// Move is one step of the embedded solution: the number of clockwise
// quarter turns that restore the tile at Pos to its solved orientation.
type Move struct {
	Pos       core.Coord
	Rotations int
}

// Level is one generated puzzle. It is immutable after generation; playing
// engines clone the board and mutate the clone.
type Level struct {
	ID    string
	Name  string
	World int

	Cols  int
	Rows  int
	Tiles []core.Tile
	Goals []core.Coord

	MaxMoves      int
	PressureDelay int
	Compression   string

	Solution []Move
}

// Board builds a fresh board from the level's tiles.
func (l *Level) Board() *core.Board {
	return core.BoardFromTiles(l.Cols, l.Rows, l.Tiles)
}

// SolvedBoard builds a board and applies every solution move to it.
func (l *Level) SolvedBoard() *core.Board {
	b := l.Board()
	for _, m := range l.Solution {
		if t := b.At(m.Pos); t != nil {
			t.RotateCW(m.Rotations)
		}
	}
	return b
}

// SolutionRotations returns the total number of quarter turns in the
// solution. The move budget is this total plus the difficulty padding.
func (l *Level) SolutionRotations() int {
	total := 0
	for _, m := range l.Solution {
		total += m.Rotations
	}
	return total
}

// GoalTiles returns the goal-node tiles in goal-list order.
func (l *Level) GoalTiles() []core.Tile {
	out := make([]core.Tile, 0, len(l.Goals))
	for _, g := range l.Goals {
		for _, t := range l.Tiles {
			if t.Pos == g {
				out = append(out, t)
				break
			}
		}
	}
	return out
}
