package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pipeforge/internal/storage"
)

var listWorld int

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List levels stored in the library",
	RunE:  runList,
}

func init() {
	listCmd.Flags().IntVar(&listWorld, "world", 0, "Only list levels of this world (0 = all)")
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	var infos []storage.LevelInfo
	if listWorld > 0 {
		infos, err = store.LevelsByWorld(listWorld)
	} else {
		infos, err = store.ListLevels()
	}
	if err != nil {
		return err
	}

	if len(infos) == 0 {
		fmt.Println("No levels stored.")
		return nil
	}

	// Calculate column width
	maxIDLen := 2 // "ID" header
	for _, info := range infos {
		if len(info.ID) > maxIDLen {
			maxIDLen = len(info.ID)
		}
	}

	fmt.Printf("  %-*s  %5s  %7s  %5s  %6s  %6s  %s\n", maxIDLen, "ID", "World", "Size", "Goals", "Moves", "Budget", "Pressure")
	for _, info := range infos {
		fmt.Printf("  %-*s  %5d  %3dx%-3d  %5d  %6d  %6d  %s\n",
			maxIDLen, info.ID, info.World, info.Cols, info.Rows,
			info.Goals, info.SolutionMoves, info.MaxMoves, info.Compression)
	}
	fmt.Printf("\n%d level(s).\n", len(infos))
	return nil
}
