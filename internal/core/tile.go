package core

// TileKind distinguishes the three tile categories on a board.
type TileKind uint8

const (
	KindWall TileKind = iota
	KindNode
	KindPath
)

// String returns the string representation of a tile kind.
func (k TileKind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindNode:
		return "node"
	case KindPath:
		return "path"
	default:
		return "unknown"
	}
}

// Tile is a single cell of a puzzle board. Walls have no openings and goal
// nodes expose all four; only path tiles with CanRotate set may be turned
// by the player.
type Tile struct {
	Pos       Coord
	Kind      TileKind
	Conns     DirSet
	CanRotate bool
	Goal      bool
}

// WallTile returns a fixed wall tile at the given position.
func WallTile(pos Coord) Tile {
	return Tile{Pos: pos, Kind: KindWall}
}

// GoalTile returns a fixed goal node exposing all four openings.
func GoalTile(pos Coord) Tile {
	return Tile{Pos: pos, Kind: KindNode, Conns: DirSetAll, Goal: true}
}

// PathTile returns a pipe tile with the given openings.
func PathTile(pos Coord, conns DirSet, rotatable bool) Tile {
	return Tile{Pos: pos, Kind: KindPath, Conns: conns, CanRotate: rotatable}
}

// RotateCW turns the tile n quarter turns clockwise. Fixed tiles are left
// untouched.
func (t *Tile) RotateCW(n int) {
	if !t.CanRotate {
		return
	}
	t.Conns = t.Conns.Rotate(n)
}
