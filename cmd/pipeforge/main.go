// pipeforge generates solvable pipe-connectivity puzzle levels and manages
// a level library.
//
// Usage:
//
//	pipeforge gen                - Generate a single level
//	pipeforge world <n>          - Generate a whole world's level list
//	pipeforge show <id|file>     - Render a level as ASCII
//	pipeforge check <id|file>    - Verify a level's embedded solution
//	pipeforge list               - List stored levels
//
// Global flags:
//
//	--seed <value>    - RNG seed for reproducible generation (0 = default)
//	--db <path>       - Level library path (default: ~/.pipeforge/levels.db)
//	--config <path>   - Difficulty configuration file
//	--verbose         - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed    uint64
	flagDBPath  string
	flagConfig  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pipeforge",
	Short: "Pipeforge - Procedural pipe puzzle level generator",
	Long: `Pipeforge manufactures solvable pipe-connectivity puzzle levels from
random seeds. Every level embeds a verified solution and is guaranteed not
to start in a solved state.

Available commands:
  gen      - Generate a single level
  world    - Generate a batch of levels for one world
  show     - Render a level as ASCII pipes
  check    - Verify a level's embedded solution
  list     - List levels stored in the library

Examples:
  pipeforge gen --cols 11 --rows 9 --difficulty medium
  pipeforge gen --seed 42 --out level.yaml
  pipeforge world 1 --count 12 --difficulty easy --save
  pipeforge show w1-001
  pipeforge check level.yaml`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = fixed default)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pipeforge/levels.db", "Path to the level library")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Difficulty configuration file")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(worldCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(listCmd)
}
