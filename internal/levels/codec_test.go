package levels

import (
	"strings"
	"testing"

	"github.com/vovakirdan/pipeforge/internal/core"
)

// sampleLevel hand-builds a tiny 5x4 level: two goals joined by a corner
// and a straight, one interior wall, one locked tile.
func sampleLevel() *Level {
	l := &Level{
		ID:            "test-001",
		Name:          "Sample",
		World:         1,
		Cols:          5,
		Rows:          4,
		Goals:         []core.Coord{core.C(1, 1), core.C(3, 2)},
		MaxMoves:      7,
		PressureDelay: 15,
		Compression:   "all",
		Solution: []Move{
			{Pos: core.C(2, 1), Rotations: 2},
		},
	}

	for x := 0; x < l.Cols; x++ {
		l.Tiles = append(l.Tiles, core.WallTile(core.C(x, 0)), core.WallTile(core.C(x, l.Rows-1)))
	}
	for y := 1; y < l.Rows-1; y++ {
		l.Tiles = append(l.Tiles, core.WallTile(core.C(0, y)), core.WallTile(core.C(l.Cols-1, y)))
	}
	l.Tiles = append(l.Tiles,
		core.GoalTile(core.C(1, 1)),
		core.GoalTile(core.C(3, 2)),
		// Scrambled corner: solved form is right+down, shown rotated twice.
		core.PathTile(core.C(2, 1), core.NewDirSet(core.DirLeft, core.DirUp), true),
		// Locked straight already in its solved orientation.
		core.PathTile(core.C(3, 1), core.NewDirSet(core.DirUp, core.DirDown), false),
		core.WallTile(core.C(1, 2)),
	)
	return l
}

func TestCodecRoundTrip(t *testing.T) {
	orig := sampleLevel()
	data, err := EncodeYAML(orig)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	got, err := DecodeYAML(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if got.ID != orig.ID || got.Name != orig.Name || got.World != orig.World {
		t.Errorf("identity mismatch: %q/%q/%d", got.ID, got.Name, got.World)
	}
	if got.Cols != orig.Cols || got.Rows != orig.Rows {
		t.Errorf("size mismatch: %dx%d", got.Cols, got.Rows)
	}
	if got.MaxMoves != orig.MaxMoves || got.PressureDelay != orig.PressureDelay {
		t.Errorf("budget mismatch: %d/%d", got.MaxMoves, got.PressureDelay)
	}
	if len(got.Goals) != 2 || got.Goals[0] != orig.Goals[0] || got.Goals[1] != orig.Goals[1] {
		t.Errorf("goals mismatch: %v", got.Goals)
	}
	if len(got.Solution) != 1 || got.Solution[0] != orig.Solution[0] {
		t.Errorf("solution mismatch: %v", got.Solution)
	}

	// Tile-for-tile comparison via boards; insertion order may differ.
	ob, gb := orig.Board(), got.Board()
	for y := 0; y < orig.Rows; y++ {
		for x := 0; x < orig.Cols; x++ {
			c := core.C(x, y)
			ot, gt := ob.At(c), gb.At(c)
			if (ot == nil) != (gt == nil) {
				t.Fatalf("tile presence mismatch at %v", c)
			}
			if ot == nil {
				continue
			}
			if ot.Kind != gt.Kind || ot.Conns != gt.Conns || ot.CanRotate != gt.CanRotate || ot.Goal != gt.Goal {
				t.Errorf("tile mismatch at %v: %+v vs %+v", c, ot, gt)
			}
		}
	}
}

func TestEncodeCompactRecords(t *testing.T) {
	data, err := EncodeYAML(sampleLevel())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	text := string(data)

	// The corner at (2,1) shows left+up, which is the up+right base shape
	// rotated three times.
	if !strings.Contains(text, "2,1:L3") {
		t.Errorf("missing corner record, got:\n%s", text)
	}
	// The locked vertical straight carries the lock marker.
	if !strings.Contains(text, "3,1:I0!") {
		t.Errorf("missing locked straight record, got:\n%s", text)
	}
	// Border walls must not be listed explicitly.
	if strings.Contains(text, "0,0") {
		t.Errorf("border wall leaked into the encoding:\n%s", text)
	}
}

func TestEncodeRejectsNonCatalogTile(t *testing.T) {
	l := sampleLevel()
	l.Tiles = append(l.Tiles, core.PathTile(core.C(2, 2), core.NewDirSet(core.DirUp), true))
	if _, err := EncodeYAML(l); err == nil {
		t.Error("single-opening tile must not encode")
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"not yaml", ":\n  - ["},
		{"tiny size", "id: x\nsize: {cols: 2, rows: 2}\n"},
		{"bad goal", "id: x\nsize: {cols: 5, rows: 5}\ngoals: [\"a,b\"]\n"},
		{"bad pipe shape", "id: x\nsize: {cols: 5, rows: 5}\npipes: [\"2,2:Q1\"]\n"},
		{"bad pipe rotation", "id: x\nsize: {cols: 5, rows: 5}\npipes: [\"2,2:L9\"]\n"},
		{"bad solution", "id: x\nsize: {cols: 5, rows: 5}\nsolution: [\"2,2:0\"]\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeYAML([]byte(tc.data)); err == nil {
				t.Error("expected a decode error")
			}
		})
	}
}
