// Package world builds batches of generated levels for one game world.
package world

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/pipeforge/internal/generate"
	"github.com/vovakirdan/pipeforge/internal/levels"
)

// seedStride separates the per-level seeds of one world so consecutive
// levels do not share RNG streams.
const seedStride = 0x9E3779B97F4A7C15

// Builder repeatedly calls the generator with incrementing identity fields
// and collects the successes into one world's level list.
type Builder struct {
	Params generate.GenParams // Template; ID, Name, World and Seed are set per level
}

// Report summarizes one build run.
type Report struct {
	Levels  []*levels.Level
	Skipped []string // IDs of slots the generator exhausted
}

// Build generates count levels for the given world number. Slots whose
// generation exhausts every attempt are skipped rather than aborting the
// whole batch; callers decide whether a short world is acceptable.
func (b *Builder) Build(worldNum, count int) (Report, error) {
	var rep Report
	for i := 0; i < count; i++ {
		p := b.Params
		p.World = worldNum
		p.ID = fmt.Sprintf("w%d-%03d", worldNum, i+1)
		p.Name = fmt.Sprintf("World %d, Level %d", worldNum, i+1)
		p.Seed = b.Params.Seed + uint64(worldNum)*seedStride + uint64(i+1)

		lvl, err := generate.Generate(p)
		if errors.Is(err, generate.ErrNotGenerated) {
			rep.Skipped = append(rep.Skipped, p.ID)
			continue
		}
		if err != nil {
			return rep, fmt.Errorf("world %d slot %d: %w", worldNum, i+1, err)
		}
		rep.Levels = append(rep.Levels, lvl)
	}
	return rep, nil
}
