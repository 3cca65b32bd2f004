package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pipeforge/internal/levels"
	"github.com/vovakirdan/pipeforge/internal/storage"
)

var showSolved bool

var showCmd = &cobra.Command{
	Use:   "show <id|file>",
	Short: "Render a level as ASCII pipes",
	Long: `Renders a level with box-drawing characters. The argument is either a
level ID from the library or a path to a compact YAML level file.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showSolved, "solved", false, "Render the solved orientation instead of the scramble")
}

func runShow(cmd *cobra.Command, args []string) error {
	lvl, err := loadLevelArg(args[0])
	if err != nil {
		return err
	}

	out := lvl.Render()
	if showSolved {
		out = fmt.Sprintf("%s (solved)\n%s", lvl.ID, levels.RenderBoard(lvl.SolvedBoard()))
	}

	// Warn when the grid will not fit the terminal
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && lvl.Cols > width {
			fmt.Fprintf(os.Stderr, "warning: level is %d columns wide, terminal is %d\n", lvl.Cols, width)
		}
	}

	fmt.Print(out)
	return nil
}

// loadLevelArg resolves a CLI argument to a level: file paths are decoded
// directly, anything else is looked up in the library.
func loadLevelArg(arg string) (*levels.Level, error) {
	if strings.HasSuffix(arg, ".yaml") || strings.HasSuffix(arg, ".yml") {
		data, err := os.ReadFile(arg)
		if err != nil {
			return nil, err
		}
		return levels.DecodeYAML(data)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	lvl, err := store.LevelByID(arg)
	if err != nil {
		return nil, err
	}
	if lvl == nil {
		return nil, fmt.Errorf("level %q not found in %s", arg, flagDBPath)
	}
	return lvl, nil
}
