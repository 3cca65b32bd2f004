// Package config provides YAML-based difficulty configuration for the
// level generator.
package config

import "fmt"

// Tier is a named difficulty level.
type Tier string

const (
	TierEasy   Tier = "easy"
	TierMedium Tier = "medium"
	TierHard   Tier = "hard"
	TierExpert Tier = "expert"
)

// Tiers lists all known tiers from easiest to hardest.
var Tiers = []Tier{TierEasy, TierMedium, TierHard, TierExpert}

// DifficultyProfile holds the generator knobs for one tier.
type DifficultyProfile struct {
	Tier          Tier `yaml:"tier"`
	PressureDelay int  `yaml:"pressure_delay"` // Ticks before the hazard starts advancing
	MovePadding   int  `yaml:"move_padding"`   // Extra moves on top of the solution length
	MinWalls      int  `yaml:"min_walls"`      // Interior wall cluster range
	MaxWalls      int  `yaml:"max_walls"`
	MinBranches   int  `yaml:"min_branches"` // Dead-end decoy range
	MaxBranches   int  `yaml:"max_branches"`
}

// DifficultyConfig maps each tier to its profile.
type DifficultyConfig struct {
	Profiles []DifficultyProfile `yaml:"profiles"`
}

// ProfileFor returns the profile for the given tier.
func (c DifficultyConfig) ProfileFor(tier Tier) (DifficultyProfile, error) {
	for _, p := range c.Profiles {
		if p.Tier == tier {
			return p, nil
		}
	}
	return DifficultyProfile{}, fmt.Errorf("config: unknown difficulty tier %q", tier)
}

// ParseTier validates a tier name.
func ParseTier(s string) (Tier, error) {
	for _, t := range Tiers {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty tier %q", s)
}
