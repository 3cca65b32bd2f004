package levels

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/pipeforge/internal/core"
)

// pipeRunes maps a DirSet bitmask (up=1, right=2, down=4, left=8) to a
// box-drawing rune. Used for debugging, golden test output and the show
// command.
var pipeRunes = [16]rune{
	'·', // none
	'╵', // up
	'╶', // right
	'└', // up|right
	'╷', // down
	'│', // up|down
	'┌', // right|down
	'├', // up|right|down
	'╴', // left
	'┘', // up|left
	'─', // right|left
	'┴', // up|right|left
	'┐', // down|left
	'┤', // up|down|left
	'┬', // right|down|left
	'┼', // all
}

// TileRune returns the display rune for a tile.
func TileRune(t *core.Tile) rune {
	if t == nil {
		return ' '
	}
	switch t.Kind {
	case core.KindWall:
		return '█'
	case core.KindNode:
		if t.Goal {
			return '◎'
		}
		return '●'
	default:
		return pipeRunes[t.Conns&core.DirSetAll]
	}
}

// RenderBoard draws the board with box-drawing characters, one rune per
// cell.
func RenderBoard(b *core.Board) string {
	var sb strings.Builder
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			sb.WriteRune(TileRune(b.At(core.C(x, y))))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Render draws the level's initial (scrambled) board with a small header.
func (l *Level) Render() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s | %dx%d | goals: %d | budget: %d | pressure: %s (+%d)\n",
		l.ID, l.Cols, l.Rows, len(l.Goals), l.MaxMoves, l.Compression, l.PressureDelay))
	sb.WriteString(RenderBoard(l.Board()))
	return sb.String()
}
