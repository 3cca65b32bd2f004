package config

import (
	_ "embed"
)

//go:embed defaults/difficulty.yaml
var defaultDifficultyYAML []byte

// DefaultDifficultyConfig returns the built-in difficulty profiles.
func DefaultDifficultyConfig() DifficultyConfig {
	return DifficultyConfig{
		Profiles: []DifficultyProfile{
			{Tier: TierEasy, PressureDelay: 20, MovePadding: 6, MinWalls: 1, MaxWalls: 2, MinBranches: 0, MaxBranches: 1},
			{Tier: TierMedium, PressureDelay: 15, MovePadding: 4, MinWalls: 2, MaxWalls: 4, MinBranches: 1, MaxBranches: 2},
			{Tier: TierHard, PressureDelay: 10, MovePadding: 3, MinWalls: 3, MaxWalls: 5, MinBranches: 2, MaxBranches: 3},
			{Tier: TierExpert, PressureDelay: 6, MovePadding: 2, MinWalls: 4, MaxWalls: 6, MinBranches: 3, MaxBranches: 4},
		},
	}
}
