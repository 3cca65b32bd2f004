package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pipeforge/internal/generate"
)

var checkCmd = &cobra.Command{
	Use:   "check <id|file>",
	Short: "Verify a level's embedded solution",
	Long: `Runs the connectivity verifier against a level: the initial scramble
must leave the goals disconnected, applying the embedded solution must
connect them, and the move budget must cover the solution.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	lvl, err := loadLevelArg(args[0])
	if err != nil {
		return err
	}

	failures := 0
	report := func(name string, ok bool) {
		status := "ok"
		if !ok {
			status = "FAIL"
			failures++
		}
		fmt.Printf("  %-28s %s\n", name, status)
	}

	fmt.Printf("%s (%dx%d, %d goals, %d moves)\n", lvl.ID, lvl.Cols, lvl.Rows, len(lvl.Goals), len(lvl.Solution))
	report("initial state unsolved", !generate.Connected(lvl.Board(), lvl.Goals))
	report("solution connects goals", generate.Connected(lvl.SolvedBoard(), lvl.Goals))
	report("budget covers solution", lvl.MaxMoves >= lvl.SolutionRotations())
	report("solution non-empty", len(lvl.Solution) > 0)

	if failures > 0 {
		return fmt.Errorf("%d check(s) failed", failures)
	}
	fmt.Println("all checks passed")
	return nil
}
