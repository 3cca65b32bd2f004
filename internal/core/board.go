package core

// Board holds the tiles of one puzzle as a rectangular grid.
// Tiles are stored in row-major order: index = y*W + x. A nil entry means
// the cell is empty (no tile).
type Board struct {
	W     int
	H     int
	tiles []*Tile
}

// NewBoard creates an empty board with the given dimensions.
func NewBoard(w, h int) *Board {
	return &Board{
		W:     w,
		H:     h,
		tiles: make([]*Tile, w*h),
	}
}

// BoardFromTiles creates a board and places every tile at its position.
// Tiles outside the bounds are ignored.
func BoardFromTiles(w, h int, tiles []Tile) *Board {
	b := NewBoard(w, h)
	for i := range tiles {
		t := tiles[i]
		b.Place(t)
	}
	return b
}

// index converts a coordinate to a flat array index.
func (b *Board) index(c Coord) int {
	return c.Y*b.W + c.X
}

// InBounds returns true if the coordinate is within the board boundaries.
func (b *Board) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < b.W && c.Y >= 0 && c.Y < b.H
}

// Interior returns true if the coordinate lies strictly inside the border,
// i.e. within [1, dim-2] on both axes.
func (b *Board) Interior(c Coord) bool {
	return c.X >= 1 && c.X <= b.W-2 && c.Y >= 1 && c.Y <= b.H-2
}

// At returns the tile at the given coordinate, or nil if the cell is empty
// or out of bounds.
func (b *Board) At(c Coord) *Tile {
	if !b.InBounds(c) {
		return nil
	}
	return b.tiles[b.index(c)]
}

// Place puts a copy of the tile onto the board at the tile's own position.
func (b *Board) Place(t Tile) {
	if !b.InBounds(t.Pos) {
		return
	}
	cp := t
	b.tiles[b.index(t.Pos)] = &cp
}

// Remove clears the cell at the given coordinate.
func (b *Board) Remove(c Coord) {
	if b.InBounds(c) {
		b.tiles[b.index(c)] = nil
	}
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cp := NewBoard(b.W, b.H)
	for i, t := range b.tiles {
		if t != nil {
			tc := *t
			cp.tiles[i] = &tc
		}
	}
	return cp
}

// Tiles returns all placed tiles in row-major order.
func (b *Board) Tiles() []Tile {
	out := make([]Tile, 0, len(b.tiles))
	for _, t := range b.tiles {
		if t != nil {
			out = append(out, *t)
		}
	}
	return out
}

// TileCount returns the number of placed tiles.
func (b *Board) TileCount() int {
	n := 0
	for _, t := range b.tiles {
		if t != nil {
			n++
		}
	}
	return n
}
