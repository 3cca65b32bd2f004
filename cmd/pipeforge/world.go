package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pipeforge/internal/config"
	"github.com/vovakirdan/pipeforge/internal/generate"
	"github.com/vovakirdan/pipeforge/internal/levels"
	"github.com/vovakirdan/pipeforge/internal/storage"
	"github.com/vovakirdan/pipeforge/internal/world"
)

var (
	worldCount       int
	worldCols        int
	worldRows        int
	worldGoals       int
	worldDifficulty  string
	worldCompression string
	worldOutDir      string
	worldSave        bool
)

var worldCmd = &cobra.Command{
	Use:   "world <number>",
	Short: "Generate a batch of levels for one world",
	Long: `Generates count levels with incrementing IDs (w<n>-001, w<n>-002, ...)
for the given world number. Slots the generator cannot fill are skipped, so
a world may come out shorter than requested.`,
	Args: cobra.ExactArgs(1),
	RunE: runWorld,
}

func init() {
	worldCmd.Flags().IntVar(&worldCount, "count", 10, "Levels to generate")
	worldCmd.Flags().IntVar(&worldCols, "cols", 11, "Grid columns")
	worldCmd.Flags().IntVar(&worldRows, "rows", 9, "Grid rows")
	worldCmd.Flags().IntVar(&worldGoals, "goals", 2, "Goal node count")
	worldCmd.Flags().StringVar(&worldDifficulty, "difficulty", "medium", "Difficulty tier (easy|medium|hard|expert)")
	worldCmd.Flags().StringVar(&worldCompression, "compression", "", "Compression profile name (default: random)")
	worldCmd.Flags().StringVar(&worldOutDir, "out-dir", "", "Write each level to a YAML file in this directory")
	worldCmd.Flags().BoolVar(&worldSave, "save", false, "Store the levels in the library")
}

func runWorld(cmd *cobra.Command, args []string) error {
	worldNum, err := strconv.Atoi(args[0])
	if err != nil || worldNum < 1 {
		return fmt.Errorf("invalid world number %q", args[0])
	}

	tier, err := config.ParseTier(worldDifficulty)
	if err != nil {
		return err
	}
	cfg, err := config.LoadDifficulty(flagConfig)
	if err != nil {
		return err
	}
	profile, err := cfg.ProfileFor(tier)
	if err != nil {
		return err
	}

	builder := &world.Builder{
		Params: generate.GenParams{
			Cols:         worldCols,
			Rows:         worldRows,
			Goals:        worldGoals,
			Difficulty:   profile,
			Compression:  worldCompression,
			WallClusters: -1,
			Branches:     -1,
			Seed:         flagSeed,
		},
	}

	log.Info("building world", "world", worldNum, "count", worldCount, "tier", tier)
	rep, err := builder.Build(worldNum, worldCount)
	if err != nil {
		return err
	}
	for _, id := range rep.Skipped {
		log.Warn("slot skipped, generation exhausted", "id", id)
	}
	log.Info("world built", "levels", len(rep.Levels), "skipped", len(rep.Skipped))

	if worldSave {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()
		for _, lvl := range rep.Levels {
			if err := store.SaveLevel(lvl); err != nil {
				return err
			}
		}
		log.Info("world saved", "db", flagDBPath)
	}

	if worldOutDir != "" {
		if err := os.MkdirAll(worldOutDir, 0o755); err != nil {
			return err
		}
		for _, lvl := range rep.Levels {
			data, err := levels.EncodeYAML(lvl)
			if err != nil {
				return err
			}
			path := filepath.Join(worldOutDir, lvl.ID+".yaml")
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
		}
		log.Info("world written", "dir", worldOutDir)
	}

	if !worldSave && worldOutDir == "" {
		for _, lvl := range rep.Levels {
			fmt.Printf("%s  %dx%d  moves=%d  budget=%d  %s\n",
				lvl.ID, lvl.Cols, lvl.Rows, len(lvl.Solution), lvl.MaxMoves, lvl.Compression)
		}
	}
	return nil
}
