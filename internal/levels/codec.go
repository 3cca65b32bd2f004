package levels

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/pipeforge/internal/core"
)

// yamlLevel is the compact on-disk representation. Border walls are
// implicit from the grid size; pipe tiles are encoded as a shape family
// code plus rotation instead of an explicit direction list.
type yamlLevel struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name,omitempty"`
	World         int      `yaml:"world,omitempty"`
	Size          yamlSize `yaml:"size"`
	Compression   string   `yaml:"compression,omitempty"`
	PressureDelay int      `yaml:"pressure_delay,omitempty"`
	MaxMoves      int      `yaml:"max_moves"`
	Goals         []string `yaml:"goals"`
	Walls         []string `yaml:"walls,omitempty"`
	Pipes         []string `yaml:"pipes"`
	Solution      []string `yaml:"solution,omitempty"`
}

type yamlSize struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// EncodeYAML serializes a level into the compact YAML form.
// Pipe records look like "4,2:L1" (corner rotated once) with a trailing
// "!" for locked tiles; wall and goal records are bare coordinates.
func EncodeYAML(l *Level) ([]byte, error) {
	yl := yamlLevel{
		ID:            l.ID,
		Name:          l.Name,
		World:         l.World,
		Size:          yamlSize{Cols: l.Cols, Rows: l.Rows},
		Compression:   l.Compression,
		PressureDelay: l.PressureDelay,
		MaxMoves:      l.MaxMoves,
	}

	for _, g := range l.Goals {
		yl.Goals = append(yl.Goals, encodeCoord(g))
	}

	for _, t := range l.Tiles {
		switch t.Kind {
		case core.KindWall:
			// Border walls are implicit in the size
			if t.Pos.X == 0 || t.Pos.X == l.Cols-1 || t.Pos.Y == 0 || t.Pos.Y == l.Rows-1 {
				continue
			}
			yl.Walls = append(yl.Walls, encodeCoord(t.Pos))
		case core.KindNode:
			// Goal nodes are carried by the goals list
		case core.KindPath:
			code, rot, ok := core.EncodeShape(t.Conns)
			if !ok {
				return nil, fmt.Errorf("levels: tile at %s has non-catalog openings %s", t.Pos, t.Conns)
			}
			rec := fmt.Sprintf("%s:%c%d", encodeCoord(t.Pos), code, rot)
			if !t.CanRotate {
				rec += "!"
			}
			yl.Pipes = append(yl.Pipes, rec)
		}
	}

	for _, m := range l.Solution {
		yl.Solution = append(yl.Solution, fmt.Sprintf("%s:%d", encodeCoord(m.Pos), m.Rotations))
	}

	return yaml.Marshal(yl)
}

// DecodeYAML parses the compact YAML form back into a level, rebuilding
// the implicit border walls.
func DecodeYAML(data []byte) (*Level, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return nil, fmt.Errorf("levels: yaml unmarshal: %w", err)
	}
	if yl.Size.Cols < 3 || yl.Size.Rows < 3 {
		return nil, fmt.Errorf("levels: invalid size %dx%d", yl.Size.Cols, yl.Size.Rows)
	}

	l := &Level{
		ID:            yl.ID,
		Name:          yl.Name,
		World:         yl.World,
		Cols:          yl.Size.Cols,
		Rows:          yl.Size.Rows,
		Compression:   yl.Compression,
		PressureDelay: yl.PressureDelay,
		MaxMoves:      yl.MaxMoves,
	}

	// Implicit border walls
	for x := 0; x < l.Cols; x++ {
		l.Tiles = append(l.Tiles, core.WallTile(core.C(x, 0)), core.WallTile(core.C(x, l.Rows-1)))
	}
	for y := 1; y < l.Rows-1; y++ {
		l.Tiles = append(l.Tiles, core.WallTile(core.C(0, y)), core.WallTile(core.C(l.Cols-1, y)))
	}

	for _, rec := range yl.Goals {
		c, err := parseCoord(rec)
		if err != nil {
			return nil, err
		}
		l.Goals = append(l.Goals, c)
		l.Tiles = append(l.Tiles, core.GoalTile(c))
	}

	for _, rec := range yl.Walls {
		c, err := parseCoord(rec)
		if err != nil {
			return nil, err
		}
		l.Tiles = append(l.Tiles, core.WallTile(c))
	}

	for _, rec := range yl.Pipes {
		tile, err := parsePipe(rec)
		if err != nil {
			return nil, err
		}
		l.Tiles = append(l.Tiles, tile)
	}

	for _, rec := range yl.Solution {
		pos, rest, ok := strings.Cut(rec, ":")
		if !ok {
			return nil, fmt.Errorf("levels: malformed solution record %q", rec)
		}
		c, err := parseCoord(pos)
		if err != nil {
			return nil, err
		}
		var n int
		if _, err := fmt.Sscanf(rest, "%d", &n); err != nil || n < 1 || n > 3 {
			return nil, fmt.Errorf("levels: malformed solution record %q", rec)
		}
		l.Solution = append(l.Solution, Move{Pos: c, Rotations: n})
	}

	return l, nil
}

func encodeCoord(c core.Coord) string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

func parseCoord(s string) (core.Coord, error) {
	var x, y int
	if _, err := fmt.Sscanf(s, "%d,%d", &x, &y); err != nil {
		return core.Coord{}, fmt.Errorf("levels: malformed coordinate %q", s)
	}
	return core.C(x, y), nil
}

// parsePipe decodes a record like "4,2:L1" or "5,2:I3!".
func parsePipe(rec string) (core.Tile, error) {
	pos, rest, ok := strings.Cut(rec, ":")
	if !ok || len(rest) < 2 {
		return core.Tile{}, fmt.Errorf("levels: malformed pipe record %q", rec)
	}
	c, err := parseCoord(pos)
	if err != nil {
		return core.Tile{}, err
	}

	locked := strings.HasSuffix(rest, "!")
	rest = strings.TrimSuffix(rest, "!")
	if len(rest) != 2 {
		return core.Tile{}, fmt.Errorf("levels: malformed pipe record %q", rec)
	}

	base, found := core.BaseShape(rest[0])
	if !found {
		return core.Tile{}, fmt.Errorf("levels: unknown shape code %q in %q", rest[0], rec)
	}
	rot := int(rest[1] - '0')
	if rot < 0 || rot > 3 {
		return core.Tile{}, fmt.Errorf("levels: invalid rotation in %q", rec)
	}

	return core.PathTile(c, base.Conns.Rotate(rot), !locked), nil
}
